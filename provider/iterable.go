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
	"dirpx.dev/vo/apis"
	"dirpx.dev/vo/handler"
	uref "dirpx.dev/vo/utils/reflect"
)

// NewIterable creates an apis.Provider for iterable fields. Set-typed fields
// and fields annotated as unordered get a handler.Set; every other iterable
// gets a handler.Sequence.
func NewIterable() apis.Provider {
	return &iterableProvider{}
}

type iterableProvider struct{}

// Ensure iterableProvider implements apis.Provider.
var _ apis.Provider = (*iterableProvider)(nil)

func (*iterableProvider) IsSupported(f apis.Field) bool {
	return uref.IsIterable(f.Type)
}

func (p *iterableProvider) Create(f apis.Field) (apis.Handler, error) {
	if !p.IsSupported(f) {
		return nil, unsupported(p, f)
	}
	if f.Annotations.Unordered || uref.IsSet(f.Type) {
		return handler.NewSet(f)
	}
	return handler.NewSequence(f)
}
