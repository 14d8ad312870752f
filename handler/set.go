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
	"sort"
	"strings"

	"dirpx.dev/vo/apis"
	uref "dirpx.dev/vo/utils/reflect"
)

// Set compares iterable fields ignoring element order.
//
// Fields whose type implements a set contract use the set's own membership:
// equal size and every element of one side contained in the other. Other
// iterables are compared as multisets, so duplicate counts matter.
type Set struct {
	Base
	unique bool
}

// NewSet binds a Set handler to f, an iterable field.
func NewSet(f apis.Field) (*Set, error) {
	h := &Set{}
	if err := h.bind(f, h); err != nil {
		return nil, err
	}
	if !uref.IsIterable(f.Type) {
		return nil, mismatch(f, "an iterable type")
	}
	h.unique = uref.IsSet(f.Type)
	return h, nil
}

// Unique reports whether the field type is a true set.
func (h *Set) Unique() bool {
	return h.unique
}

// Equal implements Semantics.
func (h *Set) Equal(a, b reflect.Value) bool {
	if h.unique {
		return setEqual(a, b)
	}
	return countElements(a).equal(countElements(b))
}

// Hash implements Semantics. Element hashes are combined commutatively.
// Types with their own membership only hash their size, since Contains may
// match elements that hash differently.
func (h *Set) Hash(v reflect.Value) int {
	if h.unique && uref.Concrete(v).Kind() != reflect.Map {
		return Combine(0, uref.SetLen(v))
	}
	return elementsHash(v)
}

func elementsHash(v reflect.Value) int {
	h, n := 0, 0
	for e := range uref.Elements(v) {
		h = CombineUnordered(h, nativeHash(e))
		n++
	}
	return Combine(h, n)
}

// Display implements Semantics. Elements are sorted by their rendering.
func (*Set) Display(v reflect.Value) string {
	var parts []string
	for e := range uref.Elements(v) {
		parts = append(parts, nativeDisplay(e))
	}
	sort.Strings(parts)
	return "[" + strings.Join(parts, ", ") + "]"
}

func setEqual(a, b reflect.Value) bool {
	if uref.SetLen(a) != uref.SetLen(b) {
		return false
	}
	for e := range uref.Elements(a) {
		if !uref.SetContains(b, e) {
			return false
		}
	}
	return true
}

// multiset counts elements by value. Absent elements are counted apart.
type multiset struct {
	buckets  map[int][]*counted
	nulls    int
	distinct int
}

type counted struct {
	v reflect.Value
	n int
}

func countElements(v reflect.Value) *multiset {
	m := &multiset{buckets: make(map[int][]*counted)}
	for e := range uref.Elements(v) {
		m.add(e)
	}
	return m
}

func (m *multiset) add(e reflect.Value) {
	e = uref.Concrete(e)
	if uref.IsNull(e) {
		m.nulls++
		return
	}
	h := nativeHash(e)
	for _, c := range m.buckets[h] {
		if nativeEqual(c.v, e) {
			c.n++
			return
		}
	}
	m.buckets[h] = append(m.buckets[h], &counted{v: e, n: 1})
	m.distinct++
}

func (m *multiset) count(e reflect.Value) int {
	for _, c := range m.buckets[nativeHash(e)] {
		if nativeEqual(c.v, e) {
			return c.n
		}
	}
	return 0
}

func (m *multiset) equal(o *multiset) bool {
	if m.nulls != o.nulls || m.distinct != o.distinct {
		return false
	}
	for _, cs := range m.buckets {
		for _, c := range cs {
			if o.count(c.v) != c.n {
				return false
			}
		}
	}
	return true
}
