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

package vo

import (
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/vo/apis"
	"dirpx.dev/vo/builder"
	"dirpx.dev/vo/config"
	"dirpx.dev/vo/descriptor"
	"dirpx.dev/vo/registry"
)

// init initializes the global vo state.
func init() {
	s := &state{bld: builder.New(), log: zap.NewNop()}
	s.reg = registry.New(s.bld, s.log)
	st.Store(s)
}

// Register declares the configuration of the value-object type T and builds
// its descriptor. It must run before T is first used; configuration errors
// of T are returned here.
func Register[T any](opts ...config.Option) error {
	return st.Load().reg.Register(reflect.TypeFor[T](), config.NewConfig(opts...))
}

// Describe returns the descriptor of T.
func Describe[T any]() (*descriptor.Descriptor, error) {
	return DescribeType(reflect.TypeFor[T]())
}

// DescribeType returns the descriptor of t.
func DescribeType(t reflect.Type) (*descriptor.Descriptor, error) {
	return st.Load().reg.Describe(t)
}

// Equal reports whether a and b are structurally equal value objects.
// Values of different types, and nil, are never equal. It panics if the
// type of a cannot be described.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return false
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) {
		return false
	}
	return mustDescribe(t).Equal(a, b)
}

// Hash returns the structural hash of the value object v. Equal values hash
// equal. It panics if v is nil or its type cannot be described.
func Hash(v any) int {
	h, err := mustDescribe(reflect.TypeOf(v)).Hash(v)
	if err != nil {
		panic(err)
	}
	return h
}

// String renders the value object v as { Name: value, ... }. It panics if v
// is nil or its type cannot be described.
func String(v any) string {
	s, err := mustDescribe(reflect.TypeOf(v)).String(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Get returns the named field of v, ignoring case.
func Get(v any, name string) (any, error) {
	d, err := DescribeType(reflect.TypeOf(v))
	if err != nil {
		return nil, err
	}
	return d.Get(v, name)
}

// With returns a copy of v whose named field holds value. v is unchanged.
func With[T any](v T, name string, value any) (T, error) {
	var zero T
	d, err := DescribeType(reflect.TypeOf(any(v)))
	if err != nil {
		return zero, err
	}
	out, err := d.With(v, name, value)
	if err != nil {
		return zero, err
	}
	return out.(T), nil
}

// WithValues returns a copy of v with every named field replaced. Either all
// values are applied or an error is returned.
func WithValues[T any](v T, values map[string]any) (T, error) {
	var zero T
	d, err := DescribeType(reflect.TypeOf(any(v)))
	if err != nil {
		return zero, err
	}
	out, err := d.WithValues(v, values)
	if err != nil {
		return zero, err
	}
	return out.(T), nil
}

// Registry returns the global registry.
func Registry() *registry.Registry {
	return st.Load().reg
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the global builder. Cached descriptors and
// registrations are dropped; types are described again on next use.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(
		&state{
			bld: b,
			log: old.log,
			reg: registry.New(b, old.log),
		},
	)
}

// Logger returns the global logger.
func Logger() *zap.Logger {
	return st.Load().log
}

// SetLogger replaces the global logger. A nil logger disables logging.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	old.reg.SetLogger(logger)
	st.Store(
		&state{
			bld: old.bld,
			log: logger,
			reg: old.reg,
		},
	)
}

// Reset restores the default builder and an empty registry, keeping the logger.
// It is mainly used by tests to get a clean state.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	b := builder.New()
	st.Store(
		&state{
			bld: b,
			log: old.log,
			reg: registry.New(b, old.log),
		},
	)
}

func mustDescribe(t reflect.Type) *descriptor.Descriptor {
	d, err := DescribeType(t)
	if err != nil {
		panic(err)
	}
	return d
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global vo state.
var st atomic.Pointer[state]

// state is the global vo state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// bld is the global builder.
	bld apis.Builder
	// log is the global logger.
	log *zap.Logger
	// reg is the global registry.
	reg *registry.Registry
}
