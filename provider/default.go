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

package provider

import (
	"reflect"

	"dirpx.dev/vo/apis"
	"dirpx.dev/vo/handler"
)

// NewDefault creates an apis.Provider that supports every field. It belongs
// at the end of any chain. Pointer fields are compared by what they point to.
func NewDefault() apis.Provider {
	return &defaultProvider{}
}

type defaultProvider struct{}

// Ensure defaultProvider implements apis.Provider.
var _ apis.Provider = (*defaultProvider)(nil)

func (*defaultProvider) IsSupported(f apis.Field) bool {
	return f.Type != nil
}

func (p *defaultProvider) Create(f apis.Field) (apis.Handler, error) {
	if !p.IsSupported(f) {
		return nil, unsupported(p, f)
	}
	if f.Type.Kind() == reflect.Pointer {
		inner, err := p.Create(f.Elem())
		if err != nil {
			return nil, err
		}
		return handler.NewNullable(f, inner)
	}
	return handler.NewDefault(f)
}
