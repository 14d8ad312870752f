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
	"fmt"
	"iter"
	"reflect"
)

// Method names of the iteration and set contracts.
const (
	// AllMethod returns an iter.Seq over the elements of a collection.
	AllMethod = "All"
	// LenMethod returns the number of elements of a set.
	LenMethod = "Len"
	// ContainsMethod reports set membership of one element.
	ContainsMethod = "Contains"
)

var (
	intType      = reflect.TypeFor[int]()
	stringerType = reflect.TypeFor[fmt.Stringer]()
)

// IsIterable reports whether values of t can be walked element by element:
// slices, arrays, map[K]struct{} sets, and types with an All() method
// returning a single-value iterator.
//
// Named slice, array and map types that define their own Equal or String
// method (uuid.UUID, net.IP) are values, not collections.
func IsIterable(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		if !ownsValue(t) {
			return true
		}
	case reflect.Map:
		if isKeySet(t) && !ownsValue(t) {
			return true
		}
	}
	_, ok := allMethod(t)
	return ok
}

// IsSet reports whether t implements a set contract: either map[K]struct{},
// or a type with All(), Len() int and Contains(E) bool where E is the
// iterator's element type.
func IsSet(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Map && isKeySet(t) && !ownsValue(t) {
		return true
	}
	all, ok := allMethod(t)
	if !ok {
		return false
	}
	recv := receivers(t)
	elem := all.Type.Out(0).In(0).In(0)
	l, ok := t.MethodByName(LenMethod)
	if !ok || l.Type.NumIn() != recv || l.Type.NumOut() != 1 || l.Type.Out(0) != intType {
		return false
	}
	c, ok := t.MethodByName(ContainsMethod)
	if !ok || c.Type.NumIn() != recv+1 || c.Type.NumOut() != 1 || c.Type.Out(0).Kind() != reflect.Bool {
		return false
	}
	return elem.AssignableTo(c.Type.In(recv))
}

// Elements returns an iterator over the elements of an iterable value.
// For map sets it yields the keys.
func Elements(v reflect.Value) iter.Seq[reflect.Value] {
	v = Concrete(v)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(reflect.Value) bool) {
			for i := 0; i < v.Len(); i++ {
				if !yield(v.Index(i)) {
					return
				}
			}
		}
	case reflect.Map:
		return v.Seq()
	}
	if m := v.MethodByName(AllMethod); m.IsValid() {
		return m.Call(nil)[0].Seq()
	}
	return func(func(reflect.Value) bool) {}
}

// SetLen returns the number of elements of a set value.
func SetLen(v reflect.Value) int {
	v = Concrete(v)
	if v.Kind() == reflect.Map {
		return v.Len()
	}
	return int(v.MethodByName(LenMethod).Call(nil)[0].Int())
}

// SetContains reports whether the set value contains e.
func SetContains(set, e reflect.Value) bool {
	set = Concrete(set)
	if set.Kind() == reflect.Map {
		if !e.IsValid() {
			return false
		}
		if e.Type() != set.Type().Key() {
			if !e.Type().AssignableTo(set.Type().Key()) {
				return false
			}
			k := reflect.New(set.Type().Key()).Elem()
			k.Set(e)
			e = k
		}
		return set.MapIndex(e).IsValid()
	}
	m := set.MethodByName(ContainsMethod)
	in := m.Type().In(0)
	if !e.IsValid() {
		if !IsNilable(in) {
			return false
		}
		e = reflect.Zero(in)
	}
	if !e.Type().AssignableTo(in) {
		return false
	}
	return m.Call([]reflect.Value{e})[0].Bool()
}

// isKeySet reports whether t is map[K]struct{}.
func isKeySet(t reflect.Type) bool {
	e := t.Elem()
	return e.Kind() == reflect.Struct && e.NumField() == 0
}

// ownsValue reports whether t declares its own equality or rendering.
func ownsValue(t reflect.Type) bool {
	if t.Implements(stringerType) {
		return true
	}
	_, ok := t.MethodByName("Equal")
	return ok
}

// allMethod finds an All() method returning a func(yield func(E) bool).
func allMethod(t reflect.Type) (reflect.Method, bool) {
	m, ok := t.MethodByName(AllMethod)
	if !ok {
		return reflect.Method{}, false
	}
	if m.Type.NumIn() != receivers(t) || m.Type.NumOut() != 1 {
		return reflect.Method{}, false
	}
	out := m.Type.Out(0)
	if out.Kind() != reflect.Func || !out.CanSeq() || out.NumIn() != 1 || out.In(0).NumIn() != 1 {
		return reflect.Method{}, false
	}
	return m, true
}

// receivers returns the number of receiver parameters in the method types
// reported by t.MethodByName: one for concrete types, none for interfaces.
func receivers(t reflect.Type) int {
	if t.Kind() == reflect.Interface {
		return 0
	}
	return 1
}
