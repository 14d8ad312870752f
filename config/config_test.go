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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/vo/apis"
	"dirpx.dev/vo/config"
	"dirpx.dev/vo/provider"
	uref "dirpx.dev/vo/utils/reflect"
)

type Money struct {
	Amount   float64
	Currency string
}

func NewMoney(amount float64, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Empty(t, cfg.Constructors)
	assert.Empty(t, cfg.Fields)
	assert.Empty(t, cfg.Providers)
	assert.Nil(t, cfg.Type.Precision)
	assert.Nil(t, cfg.Type.StringComparison)
}

func TestNewConfig_Options(t *testing.T) {
	p := apis.MustPrecision(2, apis.DecimalPlaces)
	cfg := config.NewConfig(
		config.WithConstructor(NewMoney, "amount", "currency"),
		config.WithPreferredConstructor(NewMoney, "amount", "currency"),
		config.WithPrecision(p),
		config.WithStringComparison(apis.InvariantCulture),
		config.WithFieldPrecision("Amount", apis.MustPrecision(3, apis.SignificantFigures)),
		config.WithFieldStringComparison("CURRENCY", apis.OrdinalIgnoreCase),
		config.WithUnordered("tags"),
		config.WithProviders(provider.NewDefault()),
	)

	require.Len(t, cfg.Constructors, 2)
	assert.False(t, cfg.Constructors[0].Preferred)
	assert.True(t, cfg.Constructors[1].Preferred)
	assert.Equal(t, []string{"amount", "currency"}, cfg.Constructors[0].Params)

	require.NotNil(t, cfg.Type.Precision)
	assert.Equal(t, p, *cfg.Type.Precision)
	require.NotNil(t, cfg.Type.StringComparison)
	assert.Equal(t, apis.InvariantCulture, *cfg.Type.StringComparison)

	amount := cfg.Fields[uref.FoldName("amount")]
	require.NotNil(t, amount.Precision)
	assert.Equal(t, apis.MustPrecision(3, apis.SignificantFigures), *amount.Precision)

	currency := cfg.Fields[uref.FoldName("currency")]
	require.NotNil(t, currency.StringComparison)
	assert.Equal(t, apis.OrdinalIgnoreCase, *currency.StringComparison)

	assert.True(t, cfg.Fields[uref.FoldName("Tags")].Unordered)
	assert.Len(t, cfg.Providers, 1)
}

func TestFieldOptions_Merge(t *testing.T) {
	cfg := config.NewConfig(
		config.WithFieldPrecision("amount", apis.MustPrecision(1, apis.DecimalPlaces)),
		config.WithUnordered("Amount"),
	)
	require.Len(t, cfg.Fields, 1)
	a := cfg.Fields[uref.FoldName("amount")]
	assert.NotNil(t, a.Precision)
	assert.True(t, a.Unordered)
}

func TestFieldOptions_DoNotShareState(t *testing.T) {
	base := config.NewConfig(config.WithUnordered("a"))
	opt := config.WithUnordered("b")

	derived := base
	opt(&derived)

	assert.Len(t, base.Fields, 1)
	assert.Len(t, derived.Fields, 2)
}
