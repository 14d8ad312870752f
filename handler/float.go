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

package handler

import (
	"math"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"

	"dirpx.dev/vo/apis"
)

// Float compares floating-point fields after rounding both operands to a
// Precision. T selects the single- or double-width variant.
type Float[T constraints.Float] struct {
	Base
	precision apis.Precision
	bits      int
}

// Float32 and Float64 are the single- and double-width variants.
type (
	Float32 = Float[float32]
	Float64 = Float[float64]
)

// NewFloat binds a precision-bounded handler to f, whose kind must match T.
func NewFloat[T constraints.Float](f apis.Field, p apis.Precision) (*Float[T], error) {
	h := &Float[T]{precision: p}
	if err := h.bind(f, h); err != nil {
		return nil, err
	}
	want := reflect.TypeFor[T]()
	if f.Type.Kind() != want.Kind() {
		return nil, mismatch(f, want.String())
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	h.bits = want.Bits()
	return h, nil
}

// Precision returns the precision values are rounded to.
func (h *Float[T]) Precision() apis.Precision {
	return h.precision
}

// Round rounds x to the handler's precision at T's width.
func (h *Float[T]) Round(x T) T {
	return T(Round(float64(x), h.precision))
}

// Equal implements Semantics.
func (h *Float[T]) Equal(a, b reflect.Value) bool {
	return floatEqual(float64(h.Round(T(a.Float()))), float64(h.Round(T(b.Float()))))
}

// Hash implements Semantics. The rounded value is hashed, so values that are
// equal after rounding always hash equal.
func (h *Float[T]) Hash(v reflect.Value) int {
	return hashFloat(float64(h.Round(T(v.Float()))))
}

// Display implements Semantics. The unrounded value is rendered.
func (h *Float[T]) Display(v reflect.Value) string {
	return strconv.FormatFloat(v.Float(), 'g', -1, h.bits)
}

// Round rounds x to p. Midpoints round to even.
//
// DecimalPlaces rounds to p.Digits digits right of the decimal point.
// SignificantFigures rescales x so its most significant digit is the first
// digit right of the decimal point, rounds to p.Digits places and scales back.
// NaN, infinities and zero are returned unchanged.
func Round(x float64, p apis.Precision) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	if p.Style == apis.SignificantFigures {
		scale := math.Pow(10, math.Floor(math.Log10(math.Abs(x)))+1)
		return roundPlaces(x/scale, p.Digits) * scale
	}
	return roundPlaces(x, p.Digits)
}

func roundPlaces(x float64, digits int) float64 {
	pow := math.Pow10(digits)
	scaled := x * pow
	if math.IsInf(scaled, 0) {
		// Too large to carry that many fractional digits.
		return x
	}
	return math.RoundToEven(scaled) / pow
}
