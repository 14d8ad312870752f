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

// Package provider holds the Providers that pick a handler for a field.
//
// Each provider answers IsSupported for a field and, when supported, builds
// exactly one kind of handler. Providers that serve a type T also serve *T
// by wrapping their handler in handler.Nullable.
package provider

import (
	"reflect"

	"github.com/pkg/errors"

	"dirpx.dev/vo/apis"
	"dirpx.dev/vo/handler"
)

// Defaults returns the default chain, in resolution order: string, time,
// float32 and float64 with precision, iterable, and the catch-all default.
func Defaults() []apis.Provider {
	return []apis.Provider{
		NewString(),
		NewTime(),
		NewFloat32(),
		NewFloat64(),
		NewIterable(),
		NewDefault(),
	}
}

// base returns the type a provider inspects: the element of a pointer field,
// or the field type itself.
func base(f apis.Field) reflect.Type {
	if f.Type != nil && f.Type.Kind() == reflect.Pointer {
		return f.Type.Elem()
	}
	return f.Type
}

// nullable builds the handler for f with create, wrapping it when f is a pointer.
func nullable(f apis.Field, create func(apis.Field) (apis.Handler, error)) (apis.Handler, error) {
	if f.Type.Kind() != reflect.Pointer {
		return create(f)
	}
	inner, err := create(f.Elem())
	if err != nil {
		return nil, err
	}
	return handler.NewNullable(f, inner)
}

// unsupported reports a Create call for a field the provider does not serve.
func unsupported(p apis.Provider, f apis.Field) error {
	return errors.Wrapf(apis.ErrUnsupportedField, "%T cannot handle field %s", p, f)
}
