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
	"strings"

	"github.com/pkg/errors"
)

// StringComparer compares and hashes text. Equal strings must hash equal.
type StringComparer interface {
	Equal(a, b string) bool
	Hash(s string) int
}

// StringComparison names a standard text comparison mode.
type StringComparison int

const (
	// Ordinal compares bytes exactly. It is the default.
	Ordinal StringComparison = iota
	// OrdinalIgnoreCase compares case-folded text exactly.
	OrdinalIgnoreCase
	// CurrentCulture collates with the process-wide current language.
	CurrentCulture
	// CurrentCultureIgnoreCase collates with the current language, ignoring case.
	CurrentCultureIgnoreCase
	// InvariantCulture collates with the root (language-neutral) collation.
	InvariantCulture
	// InvariantCultureIgnoreCase collates with the root collation, ignoring case.
	InvariantCultureIgnoreCase
)

var comparisonNames = [...]string{
	Ordinal:                    "ordinal",
	OrdinalIgnoreCase:          "ordinal-ignore-case",
	CurrentCulture:             "culture",
	CurrentCultureIgnoreCase:   "culture-ignore-case",
	InvariantCulture:           "invariant",
	InvariantCultureIgnoreCase: "invariant-ignore-case",
}

// String returns the tag name of the mode, as accepted by ParseStringComparison.
func (c StringComparison) String() string {
	if c < 0 || int(c) >= len(comparisonNames) {
		return fmt.Sprintf("StringComparison(%d)", int(c))
	}
	return comparisonNames[c]
}

// Valid reports whether c is a known mode.
func (c StringComparison) Valid() bool {
	return c >= 0 && int(c) < len(comparisonNames)
}

// ParseStringComparison parses a mode name, ignoring case.
func ParseStringComparison(s string) (StringComparison, error) {
	for i, name := range comparisonNames {
		if strings.EqualFold(s, name) {
			return StringComparison(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidConfig, "unknown string comparison %q", s)
}
