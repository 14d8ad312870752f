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
	"iter"
	"reflect"
	"strings"

	"dirpx.dev/vo/apis"
	uref "dirpx.dev/vo/utils/reflect"
)

// Sequence compares iterable fields position by position.
type Sequence struct {
	Base
}

// NewSequence binds a Sequence handler to f, an iterable field.
func NewSequence(f apis.Field) (*Sequence, error) {
	h := &Sequence{}
	if err := h.bind(f, h); err != nil {
		return nil, err
	}
	if !uref.IsIterable(f.Type) {
		return nil, mismatch(f, "an iterable type")
	}
	return h, nil
}

// Equal implements Semantics. Both sequences are walked in lock-step and the
// walk stops at the first positional mismatch or when one side runs out.
func (*Sequence) Equal(a, b reflect.Value) bool {
	if hasLen(a) && hasLen(b) && a.Len() != b.Len() {
		return false
	}
	nextA, stopA := iter.Pull(uref.Elements(a))
	defer stopA()
	nextB, stopB := iter.Pull(uref.Elements(b))
	defer stopB()
	for {
		x, okA := nextA()
		y, okB := nextB()
		if okA != okB {
			return false
		}
		if !okA {
			return true
		}
		if !nativeEqual(x, y) {
			return false
		}
	}
}

// Hash implements Semantics. Each element's hash is combined with its position.
func (*Sequence) Hash(v reflect.Value) int {
	h, i := 1, 0
	for e := range uref.Elements(v) {
		h = Combine(h, Combine(i, nativeHash(e)))
		i++
	}
	return h
}

// Display implements Semantics.
func (*Sequence) Display(v reflect.Value) string {
	var parts []string
	for e := range uref.Elements(v) {
		parts = append(parts, nativeDisplay(e))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func hasLen(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}
