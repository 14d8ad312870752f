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

	"dirpx.dev/vo/apis"
)

// Default delegates to the field value's own equality, hashing and
// rendering. It accepts fields of any type and is the fallback when no
// more specific handler claims a field.
type Default struct {
	Base
}

// NewDefault binds a Default handler to f.
func NewDefault(f apis.Field) (*Default, error) {
	h := &Default{}
	if err := h.bind(f, h); err != nil {
		return nil, err
	}
	return h, nil
}

// Equal implements Semantics.
func (*Default) Equal(a, b reflect.Value) bool { return nativeEqual(a, b) }

// Hash implements Semantics.
func (*Default) Hash(v reflect.Value) int { return nativeHash(v) }

// Display implements Semantics.
func (*Default) Display(v reflect.Value) string { return nativeDisplay(v) }
