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

package reflect

import (
	"reflect"
)

// IsNilable reports whether values of t can be nil.
func IsNilable(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// IsNull reports whether v is absent: invalid, or a nil value of a nilable kind.
func IsNull(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	if IsNilable(v.Type()) {
		return v.IsNil()
	}
	return false
}

// Concrete unwraps interface values down to the dynamic value they hold.
func Concrete(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// Indirect returns the element type of a pointer type, or t itself.
func Indirect(t reflect.Type) reflect.Type {
	if t != nil && t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// Assign converts value into a reflect.Value assignable to a field of type t.
// nil is accepted only when t is nilable and yields t's zero value.
// No conversion is attempted: the dynamic type of value must be assignable to t.
func Assign(value any, t reflect.Type) (reflect.Value, bool) {
	if t == nil {
		return reflect.Value{}, false
	}
	if value == nil {
		if IsNilable(t) {
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}
	if v.Type() != t {
		out := reflect.New(t).Elem()
		out.Set(v)
		return out, true
	}
	return v, true
}

// Clone returns a shallow copy of slice and map values so the copy does not
// share backing storage with v. Other kinds are returned unchanged.
func Clone(v reflect.Value) reflect.Value {
	if IsNull(v) {
		return v
	}
	switch v.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(out, v)
		return out
	case reflect.Map:
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		it := v.MapRange()
		for it.Next() {
			out.SetMapIndex(it.Key(), it.Value())
		}
		return out
	default:
		return v
	}
}
