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
	"reflect"

	"github.com/pkg/errors"

	"dirpx.dev/vo/apis"
)

// Nullable adapts a handler bound to a type T so it serves a field of type *T.
// Absent pointers are settled before the wrapped handler sees a value.
type Nullable struct {
	Base
	inner apis.Handler
}

// NewNullable binds a Nullable handler to f, a pointer field. inner must be
// bound to f's element type, typically through f.Elem().
func NewNullable(f apis.Field, inner apis.Handler) (*Nullable, error) {
	if inner == nil {
		return nil, errors.Wrapf(apis.ErrMissingArgument, "wrapped handler for field %q", f.Name)
	}
	h := &Nullable{inner: inner}
	if err := h.bind(f, h); err != nil {
		return nil, err
	}
	if f.Type.Kind() != reflect.Pointer {
		return nil, mismatch(f, "a pointer type")
	}
	if it := inner.Field().Type; it != f.Type.Elem() {
		return nil, errors.Wrapf(apis.ErrTypeMismatch,
			"wrapped handler of field %q serves %v, expected %v", f.Name, it, f.Type.Elem())
	}
	return h, nil
}

// Inner returns the wrapped handler.
func (h *Nullable) Inner() apis.Handler {
	return h.inner
}

// Equal implements Semantics.
func (h *Nullable) Equal(a, b reflect.Value) bool {
	return h.inner.EqualValues(a.Elem().Interface(), b.Elem().Interface())
}

// Hash implements Semantics.
func (h *Nullable) Hash(v reflect.Value) int {
	return h.inner.HashValue(v.Elem().Interface())
}

// Display implements Semantics.
func (h *Nullable) Display(v reflect.Value) string {
	return h.inner.DisplayValue(v.Elem().Interface())
}
