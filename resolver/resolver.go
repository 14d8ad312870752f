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

// Package resolver composes providers and resolves the handlers of a type.
package resolver

import (
	"github.com/pkg/errors"

	"dirpx.dev/vo/apis"
)

// New constructs the Aggregate Resolver: an apis.Provider that tries the
// given providers in order and delegates to the first one supporting a
// field. It fails when no provider is given or any entry is nil. The
// returned provider is safe for concurrent use provided its members are.
func New(providers ...apis.Provider) (apis.Provider, error) {
	if len(providers) == 0 {
		return nil, errors.Wrap(apis.ErrMissingArgument, "resolver: no providers")
	}
	out := make([]apis.Provider, len(providers))
	for i, p := range providers {
		if p == nil {
			return nil, errors.Wrapf(apis.ErrMissingArgument, "resolver: provider %d is nil", i)
		}
		out[i] = p
	}
	return chain{providers: out}, nil
}

// chain is an immutable, order-preserving composition of providers.
type chain struct {
	providers []apis.Provider
}

// IsSupported reports whether any member supports f.
func (c chain) IsSupported(f apis.Field) bool {
	_, ok := c.find(f)
	return ok
}

// Create delegates to the first member supporting f.
func (c chain) Create(f apis.Field) (apis.Handler, error) {
	p, ok := c.find(f)
	if !ok {
		return nil, errors.Wrapf(apis.ErrUnsupportedField, "resolver: no provider supports field %s", f)
	}
	return p.Create(f)
}

// Providers returns a copy of the members, in resolution order.
func (c chain) Providers() []apis.Provider {
	return append([]apis.Provider(nil), c.providers...)
}

func (c chain) find(f apis.Field) (apis.Provider, bool) {
	for _, p := range c.providers {
		if p.IsSupported(f) {
			return p, true
		}
	}
	return nil, false
}

// Resolve builds one handler per field, in field order, using p.
func Resolve(p apis.Provider, fields []apis.Field) ([]apis.Handler, error) {
	if p == nil {
		return nil, errors.Wrap(apis.ErrMissingArgument, "resolver: nil provider")
	}
	handlers := make([]apis.Handler, len(fields))
	for i, f := range fields {
		if !p.IsSupported(f) {
			return nil, errors.Wrapf(apis.ErrUnsupportedField, "resolver: no provider supports field %s of %v", f, f.Owner)
		}
		h, err := p.Create(f)
		if err != nil {
			return nil, err
		}
		handlers[i] = h
	}
	return handlers, nil
}
