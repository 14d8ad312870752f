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
	"strconv"

	"github.com/pkg/errors"

	"dirpx.dev/vo/apis"
)

// String compares and hashes a string field with an injected comparer.
type String struct {
	Base
	comparer apis.StringComparer
}

// NewString binds a String handler to f, a field of a string kind.
func NewString(f apis.Field, comparer apis.StringComparer) (*String, error) {
	if comparer == nil {
		return nil, errors.Wrapf(apis.ErrMissingArgument, "string comparer for field %q", f.Name)
	}
	h := &String{comparer: comparer}
	if err := h.bind(f, h); err != nil {
		return nil, err
	}
	if f.Type.Kind() != reflect.String {
		return nil, mismatch(f, "string")
	}
	return h, nil
}

// Comparer returns the comparer the handler uses.
func (h *String) Comparer() apis.StringComparer {
	return h.comparer
}

// Equal implements Semantics.
func (h *String) Equal(a, b reflect.Value) bool {
	return h.comparer.Equal(a.String(), b.String())
}

// Hash implements Semantics.
func (h *String) Hash(v reflect.Value) int {
	return h.comparer.Hash(v.String())
}

// Display implements Semantics.
func (*String) Display(v reflect.Value) string {
	return strconv.Quote(v.String())
}
