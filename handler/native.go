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
	"fmt"
	"reflect"
	"strconv"

	uref "dirpx.dev/vo/utils/reflect"
)

// maxDepth bounds how many pointer and container levels native comparison
// and hashing descend into before falling back to identity.
const maxDepth = 8

const (
	equalMethod = "Equal"
	hashMethod  = "HashCode"
)

var boolType = reflect.TypeFor[bool]()

// nativeEqual compares two values by their own semantics: an Equal(T) bool
// method, == for comparable values, or reflect.DeepEqual. Pointers are
// compared by what they point to.
func nativeEqual(a, b reflect.Value) bool {
	return deepEqual(a, b, 0)
}

func deepEqual(a, b reflect.Value, depth int) bool {
	a, b = uref.Concrete(a), uref.Concrete(b)
	an, bn := uref.IsNull(a), uref.IsNull(b)
	if an || bn {
		return an && bn
	}
	if a.Type() != b.Type() {
		return false
	}
	if m, ok := equalFunc(a); ok {
		return m.Call([]reflect.Value{b})[0].Bool()
	}
	switch a.Kind() {
	case reflect.Float32, reflect.Float64:
		return floatEqual(a.Float(), b.Float())
	case reflect.Pointer:
		if a.Pointer() == b.Pointer() {
			return true
		}
		if depth < maxDepth {
			return deepEqual(a.Elem(), b.Elem(), depth+1)
		}
		return false
	case reflect.Array:
		if depth < maxDepth && (a.Comparable() || a.CanInterface()) {
			for i := 0; i < a.Len(); i++ {
				if !deepEqual(a.Index(i), b.Index(i), depth+1) {
					return false
				}
			}
			return true
		}
	case reflect.Slice:
		if depth < maxDepth && a.CanInterface() && b.CanInterface() {
			if a.Len() != b.Len() {
				return false
			}
			for i := 0; i < a.Len(); i++ {
				if !deepEqual(a.Index(i), b.Index(i), depth+1) {
					return false
				}
			}
			return true
		}
	case reflect.Struct:
		// Walked field by field so nested floats compare like scalar ones.
		if depth < maxDepth && (a.Comparable() || (a.CanInterface() && exportedOnly(a.Type()))) {
			for i := 0; i < a.NumField(); i++ {
				if !deepEqual(a.Field(i), b.Field(i), depth+1) {
					return false
				}
			}
			return true
		}
	}
	if a.Comparable() {
		return a.Equal(b)
	}
	if a.CanInterface() && b.CanInterface() {
		return reflect.DeepEqual(a.Interface(), b.Interface())
	}
	return false
}

// exportedOnly reports whether every field of the struct type t is exported.
func exportedOnly(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			return false
		}
	}
	return true
}

// nativeHash hashes a value consistently with nativeEqual.
func nativeHash(v reflect.Value) int {
	return deepHash(v, 0)
}

func deepHash(v reflect.Value, depth int) int {
	v = uref.Concrete(v)
	if uref.IsNull(v) {
		return NullHash
	}
	if m, ok := hashFunc(v); ok {
		return int(m.Call(nil)[0].Int())
	}
	if _, ok := equalFunc(v); ok {
		// Equality is user-defined but hashing is not: only a per-type
		// constant is guaranteed to agree with it.
		return hashType(v.Type())
	}
	if depth >= maxDepth {
		return hashType(v.Type())
	}
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return hashUint64(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return hashUint64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return hashFloat(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return Combine(hashFloat(real(c)), hashFloat(imag(c)))
	case reflect.String:
		return hashString(v.String())
	case reflect.Pointer:
		return deepHash(v.Elem(), depth+1)
	case reflect.Slice, reflect.Array:
		h := 1
		for i := 0; i < v.Len(); i++ {
			h = Combine(h, deepHash(v.Index(i), depth+1))
		}
		return h
	case reflect.Map:
		h := 0
		it := v.MapRange()
		for it.Next() {
			h = CombineUnordered(h, Combine(deepHash(it.Key(), depth+1), deepHash(it.Value(), depth+1)))
		}
		return h
	case reflect.Struct:
		h := 1
		for i := 0; i < v.NumField(); i++ {
			h = Combine(h, deepHash(v.Field(i), depth+1))
		}
		return h
	default:
		// Funcs, channels and unsafe pointers compare by identity at best.
		return hashType(v.Type())
	}
}

// nativeDisplay renders a value: Stringer output, a quoted string, or fmt's %v.
func nativeDisplay(v reflect.Value) string {
	return deepDisplay(v, 0)
}

func deepDisplay(v reflect.Value, depth int) string {
	v = uref.Concrete(v)
	if uref.IsNull(v) {
		return NullDisplay
	}
	if v.CanInterface() {
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String()
		}
	}
	switch v.Kind() {
	case reflect.String:
		return strconv.Quote(v.String())
	case reflect.Pointer:
		if depth < maxDepth {
			return deepDisplay(v.Elem(), depth+1)
		}
	}
	if v.CanInterface() {
		return fmt.Sprint(v.Interface())
	}
	return v.String()
}

// equalFunc returns v's Equal method when it has the shape Equal(T) bool
// for v's own type T.
func equalFunc(v reflect.Value) (reflect.Value, bool) {
	if !v.CanInterface() {
		return reflect.Value{}, false
	}
	m := v.MethodByName(equalMethod)
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0) != boolType || !v.Type().AssignableTo(mt.In(0)) {
		return reflect.Value{}, false
	}
	return m, true
}

// hashFunc returns v's HashCode method when it has the shape HashCode() int.
func hashFunc(v reflect.Value) (reflect.Value, bool) {
	if !v.CanInterface() {
		return reflect.Value{}, false
	}
	m := v.MethodByName(hashMethod)
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Int {
		return reflect.Value{}, false
	}
	return m, true
}
