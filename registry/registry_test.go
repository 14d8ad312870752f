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

package registry_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"dirpx.dev/vo/apis"
	"dirpx.dev/vo/builder"
	"dirpx.dev/vo/config"
	"dirpx.dev/vo/registry"
)

type Point struct {
	X, Y float64
}

type Name struct {
	First, Last string
}

// failing is a builder whose provider chain cannot be built.
type failing struct{ calls int }

func (f *failing) BuildProvider(apis.Config) (apis.Provider, error) {
	f.calls++
	return nil, apis.ErrInvalidConfig
}

func TestDescribe_BuildsOnce(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	reg := registry.New(builder.New(), zap.New(core))

	d1, err := reg.Describe(reflect.TypeFor[Point]())
	require.NoError(t, err)
	d2, err := reg.Describe(reflect.TypeFor[Point]())
	require.NoError(t, err)
	assert.Same(t, d1, d2)
	assert.Equal(t, 1, reg.Count())

	entries := logs.FilterMessage("value object described").AllUntimed()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "registry_test.Point", fields["type"])
	assert.Equal(t, []interface{}{"X", "Y"}, fields["fields"])
	assert.Equal(t, "composite literal(X float64, Y float64)", fields["constructor"])
}

func TestDescribe_CachesErrors(t *testing.T) {
	bld := &failing{}
	reg := registry.New(bld, nil)

	_, err := reg.Describe(reflect.TypeFor[Point]())
	assert.ErrorIs(t, err, apis.ErrInvalidConfig)
	_, err = reg.Describe(reflect.TypeFor[Point]())
	assert.ErrorIs(t, err, apis.ErrInvalidConfig)
	assert.Equal(t, 1, bld.calls)

	_, err = reg.Describe(nil)
	assert.ErrorIs(t, err, apis.ErrMissingArgument)

	_, err = registry.New(nil, nil).Describe(reflect.TypeFor[Point]())
	assert.ErrorIs(t, err, apis.ErrMissingArgument)
}

func TestRegister(t *testing.T) {
	reg := registry.New(builder.New(), zap.NewNop())

	err := reg.Register(reflect.TypeFor[Name](), config.NewConfig(
		config.WithStringComparison(apis.OrdinalIgnoreCase),
	))
	require.NoError(t, err)

	d, err := reg.Describe(reflect.TypeFor[Name]())
	require.NoError(t, err)
	assert.True(t, d.Equal(Name{"Ada", "Lovelace"}, Name{"ADA", "LOVELACE"}))

	err = reg.Register(reflect.TypeFor[Name](), config.NewConfig())
	assert.ErrorIs(t, err, apis.ErrAlreadyRegistered)

	_, err = reg.Describe(reflect.TypeFor[Point]())
	require.NoError(t, err)
	err = reg.Register(reflect.TypeFor[Point](), config.NewConfig())
	assert.ErrorIs(t, err, apis.ErrAlreadyRegistered, "registration after first use")

	err = reg.Register(reflect.TypeFor[int](), config.NewConfig())
	assert.ErrorIs(t, err, apis.ErrInvalidConfig)

	assert.ErrorIs(t, reg.Register(nil, config.NewConfig()), apis.ErrMissingArgument)
}

func TestEntriesAndReset(t *testing.T) {
	reg := registry.New(builder.New(), nil)
	_, _ = reg.Describe(reflect.TypeFor[Point]())
	_, _ = reg.Describe(reflect.TypeFor[int]())

	entries := reg.Entries()
	require.Len(t, entries, 2)
	for _, e := range entries {
		switch e.Type {
		case reflect.TypeFor[Point]():
			assert.NoError(t, e.Err)
			assert.NotNil(t, e.Descriptor)
		case reflect.TypeFor[int]():
			assert.ErrorIs(t, e.Err, apis.ErrInvalidConfig)
			assert.Nil(t, e.Descriptor)
		default:
			t.Fatalf("unexpected entry %v", e.Type)
		}
	}

	reg.Reset()
	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.Entries())
	require.NoError(t, reg.Register(reflect.TypeFor[Point](), config.NewConfig()))
}

func TestSetLogger(t *testing.T) {
	reg := registry.New(builder.New(), nil)
	core, logs := observer.New(zapcore.DebugLevel)
	reg.SetLogger(zap.New(core))

	_, err := reg.Describe(reflect.TypeFor[Name]())
	require.NoError(t, err)
	assert.Equal(t, 1, logs.Len())
}
