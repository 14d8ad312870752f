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

package constructor

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"dirpx.dev/vo/apis"
	uref "dirpx.dev/vo/utils/reflect"
)

// Binding is a constructor matched to the fields of a type.
type Binding struct {
	ctor *Constructor
	// order[i] is the field position passed as parameter i.
	order []int
}

// Constructor returns the bound constructor.
func (b *Binding) Constructor() *Constructor { return b.ctor }

// Build calls the constructor with one value per field, in field order.
func (b *Binding) Build(values []reflect.Value) (reflect.Value, error) {
	return b.BuildFrom(reflect.Value{}, values)
}

// BuildFrom is like Build, but a composite literal starts from a copy of
// base, so unexported and excluded fields of base carry over.
func (b *Binding) BuildFrom(base reflect.Value, values []reflect.Value) (reflect.Value, error) {
	if len(values) != len(b.order) {
		return reflect.Value{}, errors.Wrapf(apis.ErrMissingArgument,
			"constructor %s: %d values for %d fields", b.ctor.name, len(values), len(b.order))
	}
	args := make([]reflect.Value, len(b.order))
	for i, j := range b.order {
		args[i] = values[j]
	}
	return b.ctor.call(base, args)
}

// Resolve picks the one constructor of t whose parameters match fields
// one to one, by case-insensitive name and identical type, in any order.
//
//   - A single preferred constructor is used if it matches, and is an error otherwise.
//   - More than one preferred constructor is an error.
//   - Otherwise the first matching candidate wins, exported ones before
//     unexported ones, each group in the given order.
//   - With no candidates at all, the composite literal of t is the only one.
func Resolve(t reflect.Type, fields []apis.Field, candidates []*Constructor) (*Binding, error) {
	if t == nil {
		return nil, errors.Wrap(apis.ErrMissingArgument, "constructor: nil type")
	}
	var preferred []*Constructor
	for i, c := range candidates {
		if c == nil {
			return nil, errors.Wrapf(apis.ErrMissingArgument, "constructor: candidate %d of %v is nil", i, t)
		}
		if c.preferred {
			preferred = append(preferred, c)
		}
	}

	switch len(preferred) {
	case 0:
	case 1:
		if b, ok := bind(t, fields, preferred[0]); ok {
			return b, nil
		}
		return nil, errors.Wrapf(apis.ErrConstructorResolution,
			"preferred constructor %v is not compatible with %v fields %s", preferred[0], t, Signature(fields))
	default:
		names := make([]string, len(preferred))
		for i, c := range preferred {
			names[i] = c.name
		}
		return nil, errors.Wrapf(apis.ErrConstructorResolution,
			"%v has %d preferred constructors (%s), only one is allowed", t, len(preferred), strings.Join(names, ", "))
	}

	if len(candidates) == 0 {
		lit, err := Literal(t, fields)
		if err != nil {
			return nil, errors.Wrapf(apis.ErrConstructorResolution, "%v: %v", t, err)
		}
		candidates = []*Constructor{lit}
	}

	ordered := make([]*Constructor, 0, len(candidates))
	for _, c := range candidates {
		if c.exported {
			ordered = append(ordered, c)
		}
	}
	for _, c := range candidates {
		if !c.exported {
			ordered = append(ordered, c)
		}
	}
	for _, c := range ordered {
		if b, ok := bind(t, fields, c); ok {
			return b, nil
		}
	}
	return nil, errors.Wrapf(apis.ErrConstructorResolution,
		"no constructor of %v matches fields %s", t, Signature(fields))
}

// Signature renders fields as {Name Type, ...}.
func Signature(fields []apis.Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// bind matches c's parameters to fields.
func bind(t reflect.Type, fields []apis.Field, c *Constructor) (*Binding, bool) {
	if c.out != t || len(c.params) != len(fields) {
		return nil, false
	}
	used := make([]bool, len(fields))
	order := make([]int, len(c.params))
	for i, p := range c.params {
		j := -1
		for k, f := range fields {
			if !used[k] && f.Type == p.Type && uref.FoldName(f.Name) == p.key {
				j = k
				break
			}
		}
		if j < 0 {
			return nil, false
		}
		used[j] = true
		order[i] = j
	}
	return &Binding{ctor: c, order: order}, true
}
