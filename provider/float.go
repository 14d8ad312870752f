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

package provider

import (
	"reflect"

	"golang.org/x/exp/constraints"

	"dirpx.dev/vo/apis"
	"dirpx.dev/vo/handler"
)

// NewFloat32 creates an apis.Provider for float32 and *float32 fields that
// carry a precision on the field or on the owning type.
func NewFloat32() apis.Provider {
	return &floatProvider[float32]{kind: reflect.Float32}
}

// NewFloat64 creates an apis.Provider for float64 and *float64 fields that
// carry a precision on the field or on the owning type.
func NewFloat64() apis.Provider {
	return &floatProvider[float64]{kind: reflect.Float64}
}

type floatProvider[T constraints.Float] struct {
	kind reflect.Kind
}

// Ensure floatProvider implements apis.Provider.
var _ apis.Provider = (*floatProvider[float64])(nil)

// IsSupported is false for floats without a precision; they fall through to
// the default provider.
func (p *floatProvider[T]) IsSupported(f apis.Field) bool {
	t := base(f)
	if t == nil || t.Kind() != p.kind {
		return false
	}
	_, ok := f.Precision()
	return ok
}

func (p *floatProvider[T]) Create(f apis.Field) (apis.Handler, error) {
	if !p.IsSupported(f) {
		return nil, unsupported(p, f)
	}
	prec, _ := f.Precision()
	return nullable(f, func(f apis.Field) (apis.Handler, error) {
		return handler.NewFloat[T](f, prec)
	})
}
