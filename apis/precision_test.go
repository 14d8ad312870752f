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

package apis_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/vo/apis"
)

func TestNewPrecision_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		digits int
		style  apis.PrecisionStyle
		ok     bool
	}{
		{"zero decimal places", 0, apis.DecimalPlaces, true},
		{"max decimal places", 15, apis.DecimalPlaces, true},
		{"negative decimal places", -1, apis.DecimalPlaces, false},
		{"too many decimal places", 16, apis.DecimalPlaces, false},
		{"one significant figure", 1, apis.SignificantFigures, true},
		{"zero significant figures", 0, apis.SignificantFigures, false},
		{"max significant figures", 15, apis.SignificantFigures, true},
		{"too many significant figures", 16, apis.SignificantFigures, false},
		{"unknown style", 2, apis.PrecisionStyle(7), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := apis.NewPrecision(tt.digits, tt.style)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, apis.Precision{Digits: tt.digits, Style: tt.style}, p)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, apis.ErrOutOfRange), "got %v", err)
		})
	}
}

func TestMustPrecision_Panics(t *testing.T) {
	assert.Panics(t, func() { apis.MustPrecision(16, apis.DecimalPlaces) })
	assert.NotPanics(t, func() { apis.MustPrecision(4, apis.SignificantFigures) })
}

func TestPrecision_String(t *testing.T) {
	assert.Equal(t, "2 decimal-places", apis.MustPrecision(2, apis.DecimalPlaces).String())
	assert.Equal(t, "4 significant-figures", apis.MustPrecision(4, apis.SignificantFigures).String())
	assert.Equal(t, "PrecisionStyle(9)", apis.PrecisionStyle(9).String())
}

func TestParseStringComparison(t *testing.T) {
	for _, mode := range []apis.StringComparison{
		apis.Ordinal,
		apis.OrdinalIgnoreCase,
		apis.CurrentCulture,
		apis.CurrentCultureIgnoreCase,
		apis.InvariantCulture,
		apis.InvariantCultureIgnoreCase,
	} {
		got, err := apis.ParseStringComparison(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
		assert.True(t, mode.Valid())
	}

	got, err := apis.ParseStringComparison("Ordinal-Ignore-Case")
	require.NoError(t, err)
	assert.Equal(t, apis.OrdinalIgnoreCase, got)

	_, err = apis.ParseStringComparison("binary")
	assert.ErrorIs(t, err, apis.ErrInvalidConfig)
	assert.False(t, apis.StringComparison(42).Valid())
}
