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

// Package handler implements the equality, hashing and display of one field.
package handler

import (
	"reflect"

	"github.com/pkg/errors"

	"dirpx.dev/vo/apis"
	uref "dirpx.dev/vo/utils/reflect"
)

// Semantics implements the type-specific part of a Handler. Every method
// receives present values only: absent values are settled by the Handler
// before Semantics is consulted.
type Semantics interface {
	Equal(a, b reflect.Value) bool
	Hash(v reflect.Value) int
	Display(v reflect.Value) string
}

// NullDisplay is the rendering of an absent value.
const NullDisplay = "null"

// New binds custom semantics to a field and returns a Handler that applies
// the null contract and reads owners through the field's accessor.
func New(f apis.Field, sem Semantics) (apis.Handler, error) {
	if sem == nil {
		return nil, errors.Wrapf(apis.ErrMissingArgument, "semantics for field %q", f.Name)
	}
	b := &Base{}
	if err := b.bind(f, sem); err != nil {
		return nil, err
	}
	return b, nil
}

// Base carries the field binding and the null contract shared by all
// handlers. Concrete handlers embed it and bind themselves as Semantics.
type Base struct {
	field apis.Field
	sem   Semantics
}

// Ensure Base implements apis.Handler.
var _ apis.Handler = (*Base)(nil)

// bind validates f and attaches sem.
func (b *Base) bind(f apis.Field, sem Semantics) error {
	if f.Type == nil {
		return errors.Wrapf(apis.ErrMissingArgument, "type of field %q", f.Name)
	}
	if f.Accessor == nil {
		return errors.Wrapf(apis.ErrMissingArgument, "accessor of field %q", f.Name)
	}
	b.field = f
	b.sem = sem
	return nil
}

// Field returns the bound field descriptor.
func (b *Base) Field() apis.Field {
	return b.field
}

// AreEqual reports whether the bound field of left and right holds equal values.
func (b *Base) AreEqual(left, right any) (bool, error) {
	lv, err := b.value(left)
	if err != nil {
		return false, err
	}
	rv, err := b.value(right)
	if err != nil {
		return false, err
	}
	return b.equal(lv, rv), nil
}

// HashCode returns the hash contribution of owner's field value.
func (b *Base) HashCode(owner any) (int, error) {
	v, err := b.value(owner)
	if err != nil {
		return 0, err
	}
	return b.hash(v), nil
}

// DisplayString renders owner's field value.
func (b *Base) DisplayString(owner any) (string, error) {
	v, err := b.value(owner)
	if err != nil {
		return "", err
	}
	return b.display(v), nil
}

// EqualValues reports whether two field values are equal.
func (b *Base) EqualValues(x, y any) bool {
	return b.equal(reflect.ValueOf(x), reflect.ValueOf(y))
}

// HashValue returns the hash contribution of a field value.
func (b *Base) HashValue(v any) int {
	return b.hash(reflect.ValueOf(v))
}

// DisplayValue renders a field value.
func (b *Base) DisplayValue(v any) string {
	return b.display(reflect.ValueOf(v))
}

func (b *Base) equal(x, y reflect.Value) bool {
	x, y = uref.Concrete(x), uref.Concrete(y)
	xn, yn := uref.IsNull(x), uref.IsNull(y)
	if xn || yn {
		return xn && yn
	}
	return b.sem.Equal(x, y)
}

func (b *Base) hash(v reflect.Value) int {
	v = uref.Concrete(v)
	if uref.IsNull(v) {
		return NullHash
	}
	return b.sem.Hash(v)
}

func (b *Base) display(v reflect.Value) string {
	v = uref.Concrete(v)
	if uref.IsNull(v) {
		return NullDisplay
	}
	return b.sem.Display(v)
}

// value reads the bound field from owner.
func (b *Base) value(owner any) (reflect.Value, error) {
	ov := reflect.ValueOf(owner)
	if uref.IsNull(ov) {
		return reflect.Value{}, errors.Wrapf(apis.ErrMissingArgument, "owner of field %q", b.field.Name)
	}
	v, err := b.field.Accessor.Value(ov)
	if err != nil {
		return reflect.Value{}, err
	}
	return v, nil
}

// mismatch reports a field whose declared type the handler cannot serve.
func mismatch(f apis.Field, expected string) error {
	return errors.Wrapf(apis.ErrTypeMismatch, "field %q is %v, expected %s", f.Name, f.Type, expected)
}
