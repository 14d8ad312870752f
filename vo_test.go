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

package vo_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"dirpx.dev/vo"
	"dirpx.dev/vo/apis"
	"dirpx.dev/vo/config"
	"dirpx.dev/vo/provider"
)

type Customer struct {
	ID      uuid.UUID
	Email   string `vo:"compare=ordinal-ignore-case"`
	Balance float64
	Joined  time.Time
	Tags    []string `vo:"unordered"`
}

type Money struct {
	Amount   float64
	Currency string
}

func NewMoney(amount float64, currency string) (Money, error) {
	return Money{Amount: amount, Currency: currency}, nil
}

type Broken struct {
	Value float64 `vo:"precision=99"`
}

func reset(t *testing.T) {
	t.Helper()
	vo.Reset()
	t.Cleanup(vo.Reset)
}

func TestEqualHashString(t *testing.T) {
	reset(t)

	id := uuid.New()
	joined := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	a := Customer{ID: id, Email: "ada@example.com", Balance: 10, Joined: joined, Tags: []string{"x", "y"}}
	b := Customer{ID: id, Email: "ADA@example.com", Balance: 10, Joined: joined.In(time.FixedZone("", 3600)), Tags: []string{"y", "x"}}

	assert.True(t, vo.Equal(a, b))
	assert.Equal(t, vo.Hash(a), vo.Hash(b))
	assert.False(t, vo.Equal(a, Customer{ID: id}))
	assert.False(t, vo.Equal(a, nil))
	assert.False(t, vo.Equal(a, &a))

	assert.Equal(t,
		`{ ID: `+id.String()+`, Email: "ada@example.com", Balance: 10, Joined: 2020-01-02T03:04:05.0000000Z, Tags: ["x", "y"] }`,
		vo.String(a))
}

func TestRegister(t *testing.T) {
	reset(t)

	require.NoError(t, vo.Register[Money](
		config.WithConstructor(NewMoney, "amount", "currency"),
		config.WithPrecision(apis.MustPrecision(2, apis.DecimalPlaces)),
		config.WithFieldStringComparison("currency", apis.OrdinalIgnoreCase),
	))
	assert.True(t, vo.Equal(Money{1.001, "eur"}, Money{1.004, "EUR"}))

	d, err := vo.Describe[Money]()
	require.NoError(t, err)
	assert.Equal(t, "vo_test.NewMoney", d.Constructor().Name())

	assert.ErrorIs(t, vo.Register[Money](), apis.ErrAlreadyRegistered)
	assert.Equal(t, 1, vo.Registry().Count())
}

func TestConfigErrorsPanic(t *testing.T) {
	reset(t)

	_, err := vo.Describe[Broken]()
	assert.ErrorIs(t, err, apis.ErrOutOfRange)

	assert.Panics(t, func() { vo.Equal(Broken{}, Broken{}) })
	assert.Panics(t, func() { vo.Hash(Broken{}) })
	assert.Panics(t, func() { vo.String(Broken{}) })
	assert.Panics(t, func() { vo.Hash(nil) })
}

func TestGetWith(t *testing.T) {
	reset(t)

	m := Money{Amount: 5, Currency: "EUR"}
	got, err := vo.Get(m, "currency")
	require.NoError(t, err)
	assert.Equal(t, "EUR", got)

	out, err := vo.With(m, "amount", 7.0)
	require.NoError(t, err)
	if diff := cmp.Diff(Money{Amount: 7, Currency: "EUR"}, out); diff != "" {
		t.Fatalf("With mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 5.0, m.Amount)

	ptr, err := vo.With(&m, "currency", "USD")
	require.NoError(t, err)
	assert.Equal(t, &Money{Amount: 5, Currency: "USD"}, ptr)

	out, err = vo.WithValues(m, map[string]any{"Amount": 1.0, "Currency": "GBP"})
	require.NoError(t, err)
	assert.Equal(t, Money{Amount: 1, Currency: "GBP"}, out)

	_, err = vo.WithValues(m, map[string]any{"Amount": "one"})
	assert.ErrorIs(t, err, apis.ErrAssignment)

	_, err = vo.With[any](nil, "amount", 1.0)
	assert.ErrorIs(t, err, apis.ErrMissingArgument)
}

func TestSetLogger(t *testing.T) {
	reset(t)
	t.Cleanup(func() { vo.SetLogger(nil) })

	core, logs := observer.New(zapcore.DebugLevel)
	vo.SetLogger(zap.New(core))

	_, err := vo.Describe[Customer]()
	require.NoError(t, err)
	entries := logs.FilterMessage("value object described").AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "vo_test.Customer", entries[0].ContextMap()["type"])
}

func TestSetBuilder(t *testing.T) {
	reset(t)

	_, err := vo.Describe[Money]()
	require.NoError(t, err)
	require.Equal(t, 1, vo.Registry().Count())

	vo.SetBuilder(ignoreCase{})
	assert.IsType(t, ignoreCase{}, vo.Builder())
	assert.Equal(t, 0, vo.Registry().Count(), "cached descriptors are dropped")
	assert.True(t, vo.Equal(Money{1, "eur"}, Money{1, "EUR"}))

	vo.SetBuilder(nil)
	assert.IsType(t, ignoreCase{}, vo.Builder())
}

// ignoreCase compares every string field ignoring case.
type ignoreCase struct{}

func (ignoreCase) BuildProvider(apis.Config) (apis.Provider, error) {
	return ignoreCaseProvider{apis.OrdinalIgnoreCase}, nil
}

// ignoreCaseProvider forces a comparison mode onto string fields and
// defers to the defaults for everything else.
type ignoreCaseProvider struct {
	mode apis.StringComparison
}

func (p ignoreCaseProvider) IsSupported(f apis.Field) bool {
	return provider.NewDefault().IsSupported(f)
}

func (p ignoreCaseProvider) Create(f apis.Field) (apis.Handler, error) {
	if provider.NewString().IsSupported(f) {
		f.Annotations.StringComparison = &p.mode
		return provider.NewString().Create(f)
	}
	return provider.NewDefault().Create(f)
}
