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
	"dirpx.dev/vo/comparer"
	"dirpx.dev/vo/handler"
)

// NewString creates an apis.Provider for string and *string fields. The
// comparer follows the field's string comparison, then the type's, then Ordinal.
func NewString() apis.Provider {
	return &stringProvider{}
}

type stringProvider struct{}

// Ensure stringProvider implements apis.Provider.
var _ apis.Provider = (*stringProvider)(nil)

func (*stringProvider) IsSupported(f apis.Field) bool {
	t := base(f)
	return t != nil && t.Kind() == reflect.String
}

func (p *stringProvider) Create(f apis.Field) (apis.Handler, error) {
	if !p.IsSupported(f) {
		return nil, unsupported(p, f)
	}
	cmp, err := comparer.For(f.StringComparison())
	if err != nil {
		return nil, err
	}
	return nullable(f, func(f apis.Field) (apis.Handler, error) {
		return handler.NewString(f, cmp)
	})
}
