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

package config

import (
	"dirpx.dev/vo/apis"
	uref "dirpx.dev/vo/utils/reflect"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig is the configuration of a type that was never registered:
// default provider chain, composite-literal constructor, ordinal strings and
// no precision.
func DefaultConfig() apis.Config {
	return apis.Config{}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithConstructor adds a candidate constructor. params name the parameters
// of fn in order; they are matched to fields ignoring case.
func WithConstructor(fn any, params ...string) Option {
	return func(c *apis.Config) {
		c.Constructors = append(c.Constructors, apis.ConstructorSpec{Func: fn, Params: params})
	}
}

// WithPreferredConstructor adds a candidate constructor marked as the one to
// use. Declaring more than one preferred constructor is a resolution error.
func WithPreferredConstructor(fn any, params ...string) Option {
	return func(c *apis.Config) {
		c.Constructors = append(c.Constructors, apis.ConstructorSpec{Func: fn, Params: params, Preferred: true})
	}
}

// WithPrecision sets the type-level precision of floating-point fields.
func WithPrecision(p apis.Precision) Option {
	return func(c *apis.Config) {
		c.Type.Precision = &p
	}
}

// WithStringComparison sets the type-level comparison mode of string fields.
func WithStringComparison(mode apis.StringComparison) Option {
	return func(c *apis.Config) {
		c.Type.StringComparison = &mode
	}
}

// WithFieldPrecision sets the precision of one field.
func WithFieldPrecision(field string, p apis.Precision) Option {
	return fieldOption(field, func(a *apis.Annotations) {
		a.Precision = &p
	})
}

// WithFieldStringComparison sets the comparison mode of one string field.
func WithFieldStringComparison(field string, mode apis.StringComparison) Option {
	return fieldOption(field, func(a *apis.Annotations) {
		a.StringComparison = &mode
	})
}

// WithUnordered compares one iterable field as a multiset.
func WithUnordered(field string) Option {
	return fieldOption(field, func(a *apis.Annotations) {
		a.Unordered = true
	})
}

// WithProviders replaces the default provider chain. The first provider
// supporting a field wins; a chain without a catch-all provider leaves some
// fields unsupported.
func WithProviders(providers ...apis.Provider) Option {
	return func(c *apis.Config) {
		c.Providers = append([]apis.Provider(nil), providers...)
	}
}

// fieldOption edits the annotations of one field, keyed by folded name.
func fieldOption(field string, edit func(*apis.Annotations)) Option {
	return func(c *apis.Config) {
		key := uref.FoldName(field)
		fields := make(map[string]apis.Annotations, len(c.Fields)+1)
		for k, v := range c.Fields {
			fields[k] = v
		}
		a := fields[key]
		edit(&a)
		fields[key] = a
		c.Fields = fields
	}
}
