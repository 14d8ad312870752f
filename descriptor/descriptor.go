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

// Package descriptor builds and uses the per-type metadata of a value object:
// its fields, one handler per field, and the constructor that rebuilds it.
package descriptor

import (
	"reflect"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"dirpx.dev/vo/apis"
	"dirpx.dev/vo/constructor"
	"dirpx.dev/vo/handler"
	"dirpx.dev/vo/resolver"
	uref "dirpx.dev/vo/utils/reflect"
)

// hashSeed starts the composite hash of an instance.
const hashSeed = 17

// Descriptor is the immutable metadata of one value-object type. It is safe
// for concurrent use.
type Descriptor struct {
	t        reflect.Type
	fields   []apis.Field
	handlers []apis.Handler
	binding  *constructor.Binding
	byName   map[string]int
}

// Build enumerates the fields of t, resolves one handler per field with p,
// and resolves the constructor among the ones declared in cfg.
func Build(t reflect.Type, cfg apis.Config, p apis.Provider) (*Descriptor, error) {
	fields, err := Fields(t, cfg)
	if err != nil {
		return nil, err
	}
	handlers, err := resolver.Resolve(p, fields)
	if err != nil {
		return nil, err
	}
	ctors := make([]*constructor.Constructor, 0, len(cfg.Constructors))
	for _, spec := range cfg.Constructors {
		c, err := constructor.FromSpec(spec)
		if err != nil {
			return nil, errors.Wrapf(err, "descriptor: %v", t)
		}
		ctors = append(ctors, c)
	}
	binding, err := constructor.Resolve(t, fields, ctors)
	if err != nil {
		return nil, err
	}

	d := &Descriptor{
		t:        t,
		fields:   fields,
		handlers: handlers,
		binding:  binding,
		byName:   make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		d.byName[uref.FoldName(f.Name)] = i
	}
	return d, nil
}

// Type returns the value-object type.
func (d *Descriptor) Type() reflect.Type { return d.t }

// Fields returns the fields in declaration order.
func (d *Descriptor) Fields() []apis.Field { return append([]apis.Field(nil), d.fields...) }

// Handlers returns the handlers, parallel to Fields.
func (d *Descriptor) Handlers() []apis.Handler { return append([]apis.Handler(nil), d.handlers...) }

// Constructor returns the constructor used to rebuild instances.
func (d *Descriptor) Constructor() *constructor.Constructor { return d.binding.Constructor() }

// Field looks up a field by name, ignoring case.
func (d *Descriptor) Field(name string) (apis.Field, bool) {
	i, ok := d.byName[uref.FoldName(name)]
	if !ok {
		return apis.Field{}, false
	}
	return d.fields[i], true
}

// Equal reports whether a and b are structurally equal instances of the
// type. Instances of any other type, and nil, are never equal. Identical
// pointers are equal without comparing fields.
func (d *Descriptor) Equal(a, b any) bool {
	av, err := d.instance(a)
	if err != nil {
		return false
	}
	bv, err := d.instance(b)
	if err != nil {
		return false
	}
	if av.Kind() == reflect.Pointer && av.Pointer() == bv.Pointer() {
		return true
	}
	for _, h := range d.handlers {
		eq, err := h.AreEqual(a, b)
		if err != nil || !eq {
			return false
		}
	}
	return true
}

// Hash combines the hash contribution of every field, in field order.
func (d *Descriptor) Hash(v any) (int, error) {
	if _, err := d.instance(v); err != nil {
		return 0, err
	}
	h := hashSeed
	for _, fh := range d.handlers {
		c, err := fh.HashCode(v)
		if err != nil {
			return 0, err
		}
		h = handler.Combine(h, c)
	}
	return h, nil
}

// String renders v as { Name: value, ... } in field order, or {} for a type
// without fields.
func (d *Descriptor) String(v any) (string, error) {
	if _, err := d.instance(v); err != nil {
		return "", err
	}
	if len(d.handlers) == 0 {
		return "{}", nil
	}
	parts := make([]string, len(d.handlers))
	for i, h := range d.handlers {
		s, err := h.DisplayString(v)
		if err != nil {
			return "", err
		}
		parts[i] = d.fields[i].Name + ": " + s
	}
	return "{ " + strings.Join(parts, ", ") + " }", nil
}

// Get returns the value of the named field, ignoring case.
func (d *Descriptor) Get(v any, name string) (any, error) {
	ov, err := d.instance(v)
	if err != nil {
		return nil, err
	}
	i, err := d.lookup(name)
	if err != nil {
		return nil, err
	}
	fv, err := d.fields[i].Accessor.Value(ov)
	if err != nil {
		return nil, err
	}
	if !fv.IsValid() {
		return nil, nil
	}
	return fv.Interface(), nil
}

// With returns a new instance equal to v except that the named field holds
// value. v is left unchanged.
func (d *Descriptor) With(v any, name string, value any) (any, error) {
	ov, err := d.instance(v)
	if err != nil {
		return nil, err
	}
	i, rv, err := d.assign(name, value)
	if err != nil {
		return nil, err
	}
	return d.rebuild(ov, map[int]reflect.Value{i: rv})
}

// WithValues returns a new instance equal to v except for the fields named
// in values. Every entry is validated before the constructor runs, so
// either all of them are applied or none is. Names must be unique ignoring
// case.
func (d *Descriptor) WithValues(v any, values map[string]any) (any, error) {
	ov, err := d.instance(v)
	if err != nil {
		return nil, err
	}
	if values == nil {
		return nil, errors.Wrapf(apis.ErrMissingArgument, "%v: nil field values", d.t)
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var result *multierror.Error
	replace := make(map[int]reflect.Value, len(values))
	named := make(map[int]string, len(values))
	for _, name := range names {
		i, rv, err := d.assign(name, values[name])
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if prev, dup := named[i]; dup {
			result = multierror.Append(result, errors.Wrapf(apis.ErrDuplicateField,
				"%v: field %q named as both %q and %q", d.t, d.fields[i].Name, prev, name))
			continue
		}
		named[i] = name
		replace[i] = rv
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return d.rebuild(ov, replace)
}

// instance validates that v is a non-nil instance of the type.
func (d *Descriptor) instance(v any) (reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, errors.Wrapf(apis.ErrMissingArgument, "%v: nil instance", d.t)
	}
	rv := reflect.ValueOf(v)
	if rv.Type() != d.t {
		return reflect.Value{}, errors.Wrapf(apis.ErrTypeMismatch, "%v is not %v", rv.Type(), d.t)
	}
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return reflect.Value{}, errors.Wrapf(apis.ErrMissingArgument, "%v: nil instance", d.t)
	}
	return rv, nil
}

func (d *Descriptor) lookup(name string) (int, error) {
	if name == "" {
		return 0, errors.Wrapf(apis.ErrMissingArgument, "%v: empty field name", d.t)
	}
	i, ok := d.byName[uref.FoldName(name)]
	if !ok {
		return 0, errors.Wrapf(apis.ErrFieldNotFound, "%v has no field %q", d.t, name)
	}
	return i, nil
}

// assign resolves name and checks that value can be stored in that field.
func (d *Descriptor) assign(name string, value any) (int, reflect.Value, error) {
	i, err := d.lookup(name)
	if err != nil {
		return 0, reflect.Value{}, err
	}
	f := d.fields[i]
	rv, ok := uref.Assign(value, f.Type)
	if !ok {
		return 0, reflect.Value{}, errors.Wrapf(apis.ErrAssignment,
			"%v: cannot assign %#v (%T) to field %q of type %v", d.t, value, value, f.Name, f.Type)
	}
	return i, rv, nil
}

// rebuild calls the constructor with the current field values of ov,
// substituting replace. Unchanged slices and maps are copied so the new
// instance shares no collection storage with ov. A composite literal keeps
// the fields of ov that are not value-object fields.
func (d *Descriptor) rebuild(ov reflect.Value, replace map[int]reflect.Value) (any, error) {
	values := make([]reflect.Value, len(d.fields))
	for i, f := range d.fields {
		if rv, ok := replace[i]; ok {
			values[i] = rv
			continue
		}
		fv, err := f.Accessor.Value(ov)
		if err != nil {
			return nil, err
		}
		values[i] = uref.Clone(fv)
	}
	out, err := d.binding.BuildFrom(ov, values)
	if err != nil {
		return nil, err
	}
	return out.Interface(), nil
}
