/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import (
	"fmt"

	"github.com/pkg/errors"
)

// PrecisionStyle selects how a Precision counts digits.
type PrecisionStyle int

const (
	// DecimalPlaces counts digits to the right of the decimal point.
	DecimalPlaces PrecisionStyle = iota
	// SignificantFigures counts digits from the first nonzero digit.
	SignificantFigures
)

// Bounds of Precision.Digits per style.
const (
	MaxPrecisionDigits    = 15
	MinDecimalPlaces      = 0
	MinSignificantFigures = 1
)

// String returns the style name.
func (s PrecisionStyle) String() string {
	switch s {
	case DecimalPlaces:
		return "decimal-places"
	case SignificantFigures:
		return "significant-figures"
	default:
		return fmt.Sprintf("PrecisionStyle(%d)", int(s))
	}
}

// Precision bounds the comparison of floating-point fields: values are
// rounded to Digits in the given Style before they are compared or hashed.
type Precision struct {
	Digits int
	Style  PrecisionStyle
}

// NewPrecision validates and returns a Precision.
// Digits must be in [0,15] for DecimalPlaces and [1,15] for SignificantFigures.
func NewPrecision(digits int, style PrecisionStyle) (Precision, error) {
	p := Precision{Digits: digits, Style: style}
	if err := p.Validate(); err != nil {
		return Precision{}, err
	}
	return p, nil
}

// MustPrecision is like NewPrecision but panics on invalid input.
func MustPrecision(digits int, style PrecisionStyle) Precision {
	p, err := NewPrecision(digits, style)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate reports ErrOutOfRange when Digits is outside the style's bounds.
func (p Precision) Validate() error {
	lo := MinDecimalPlaces
	switch p.Style {
	case DecimalPlaces:
	case SignificantFigures:
		lo = MinSignificantFigures
	default:
		return errors.Wrapf(ErrOutOfRange, "precision style %d", int(p.Style))
	}
	if p.Digits < lo || p.Digits > MaxPrecisionDigits {
		return errors.Wrapf(ErrOutOfRange, "%s precision %d not in [%d,%d]",
			p.Style, p.Digits, lo, MaxPrecisionDigits)
	}
	return nil
}

// String renders the precision as "<digits> <style>".
func (p Precision) String() string {
	return fmt.Sprintf("%d %s", p.Digits, p.Style)
}
