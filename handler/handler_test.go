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

package handler_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/vo/apis"
)

// fieldOf describes the field name of the struct type of owner.
func fieldOf(t *testing.T, owner any, name string) apis.Field {
	t.Helper()
	st := reflect.TypeOf(owner)
	sf, ok := st.FieldByName(name)
	require.True(t, ok, "no field %s on %v", name, st)
	return apis.Field{
		Name:  name,
		Type:  sf.Type,
		Owner: st,
		Index: sf.Index,
		Accessor: apis.AccessorFunc(func(o reflect.Value) (reflect.Value, error) {
			if o.Type() != st {
				return reflect.Value{}, apis.ErrFieldNotFound
			}
			return o.FieldByIndex(sf.Index), nil
		}),
	}
}
