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

// Package constructor describes the functions that build value objects and
// picks the one a type rebuilds its instances with.
package constructor

import (
	"reflect"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"dirpx.dev/vo/apis"
	uref "dirpx.dev/vo/utils/reflect"
)

// LiteralName names the composite-literal constructor.
const LiteralName = "composite literal"

var errorType = reflect.TypeFor[error]()

// Param is one named constructor parameter.
type Param struct {
	Name string
	Type reflect.Type
	key  string
}

// Constructor is a function, or the composite literal of a struct, that
// builds a value object from one argument per field.
type Constructor struct {
	name      string
	fn        reflect.Value
	params    []Param
	out       reflect.Type
	withErr   bool
	exported  bool
	preferred bool
	// index holds the struct index path per parameter for composite literals.
	index [][]int
}

// New describes fn, a function returning the value-object type optionally
// followed by an error, whose parameters are named by params in order.
func New(fn any, params ...string) (*Constructor, error) {
	if fn == nil {
		return nil, errors.Wrap(apis.ErrMissingArgument, "constructor: nil function")
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, errors.Wrapf(apis.ErrInvalidConfig, "constructor: %T is not a function", fn)
	}
	name, exported := uref.FuncName(v)
	t := v.Type()

	var result *multierror.Error
	if t.IsVariadic() {
		result = multierror.Append(result, errors.New("variadic functions are not supported"))
	}
	if t.NumIn() != len(params) {
		result = multierror.Append(result, errors.Errorf("takes %d parameters, %d names given", t.NumIn(), len(params)))
	}
	switch {
	case t.NumOut() == 1:
	case t.NumOut() == 2 && t.Out(1) == errorType:
	default:
		result = multierror.Append(result, errors.New("must return the value object, optionally followed by an error"))
	}
	seen := make(map[string]bool, len(params))
	for _, p := range params {
		key := uref.FoldName(p)
		switch {
		case p == "":
			result = multierror.Append(result, errors.New("empty parameter name"))
		case seen[key]:
			result = multierror.Append(result, errors.Errorf("parameter %q named twice, ignoring case", p))
		}
		seen[key] = true
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, errors.Wrapf(apis.ErrInvalidConfig, "constructor %s: %v", name, err)
	}

	c := &Constructor{
		name:     name,
		fn:       v,
		out:      t.Out(0),
		withErr:  t.NumOut() == 2,
		exported: exported,
		params:   make([]Param, len(params)),
	}
	for i, p := range params {
		c.params[i] = Param{Name: p, Type: t.In(i), key: uref.FoldName(p)}
	}
	return c, nil
}

// Preferred is like New but marks the constructor as the one to use.
// At most one constructor of a type may be preferred.
func Preferred(fn any, params ...string) (*Constructor, error) {
	c, err := New(fn, params...)
	if err != nil {
		return nil, err
	}
	c.preferred = true
	return c, nil
}

// FromSpec describes the constructor declared by s.
func FromSpec(s apis.ConstructorSpec) (*Constructor, error) {
	if s.Preferred {
		return Preferred(s.Func, s.Params...)
	}
	return New(s.Func, s.Params...)
}

// Literal describes the composite literal of t, a struct or pointer-to-struct
// type, taking one argument per field. Every field must carry an index path.
func Literal(t reflect.Type, fields []apis.Field) (*Constructor, error) {
	if t == nil {
		return nil, errors.Wrap(apis.ErrMissingArgument, "constructor: nil type")
	}
	if uref.Indirect(t).Kind() != reflect.Struct {
		return nil, errors.Wrapf(apis.ErrInvalidConfig, "constructor: %v is not a struct", t)
	}
	c := &Constructor{
		name:     LiteralName,
		out:      t,
		exported: true,
		params:   make([]Param, len(fields)),
		index:    make([][]int, len(fields)),
	}
	for i, f := range fields {
		if f.Index == nil {
			return nil, errors.Wrapf(apis.ErrInvalidConfig, "constructor: field %q of %v cannot be set by a composite literal", f.Name, t)
		}
		c.params[i] = Param{Name: f.Name, Type: f.Type, key: uref.FoldName(f.Name)}
		c.index[i] = f.Index
	}
	return c, nil
}

// Name returns the function's package-qualified name, or LiteralName.
func (c *Constructor) Name() string { return c.name }

// Params returns the parameters in call order.
func (c *Constructor) Params() []Param { return append([]Param(nil), c.params...) }

// Result returns the type the constructor builds.
func (c *Constructor) Result() reflect.Type { return c.out }

// Exported reports whether the constructor is public.
func (c *Constructor) Exported() bool { return c.exported }

// IsPreferred reports whether the constructor carries the preference marker.
func (c *Constructor) IsPreferred() bool { return c.preferred }

// String renders the constructor as name(param type, ...).
func (c *Constructor) String() string {
	parts := make([]string, len(c.params))
	for i, p := range c.params {
		parts[i] = p.Name + " " + p.Type.String()
	}
	return c.name + "(" + strings.Join(parts, ", ") + ")"
}

// Call invokes the constructor with args in parameter order.
func (c *Constructor) Call(args []reflect.Value) (reflect.Value, error) {
	return c.call(reflect.Value{}, args)
}

// call invokes the constructor. A composite literal starts from a copy of
// base when base is an instance of the result type, so fields without a
// parameter keep their values.
func (c *Constructor) call(base reflect.Value, args []reflect.Value) (reflect.Value, error) {
	if len(args) != len(c.params) {
		return reflect.Value{}, errors.Wrapf(apis.ErrMissingArgument,
			"constructor %s: %d arguments for %d parameters", c.name, len(args), len(c.params))
	}
	if c.index != nil || !c.fn.IsValid() {
		return c.literal(base, args), nil
	}
	out := c.fn.Call(args)
	if c.withErr && !out[1].IsNil() {
		return reflect.Value{}, errors.Wrapf(out[1].Interface().(error), "constructor %s", c.name)
	}
	return out[0], nil
}

func (c *Constructor) literal(base reflect.Value, args []reflect.Value) reflect.Value {
	st := uref.Indirect(c.out)
	p := reflect.New(st)
	v := p.Elem()
	if base = uref.Concrete(base); base.IsValid() && base.Type() == c.out {
		if base.Kind() == reflect.Pointer {
			if !base.IsNil() {
				v.Set(base.Elem())
			}
		} else {
			v.Set(base)
		}
	}
	for i, idx := range c.index {
		v.FieldByIndex(idx).Set(args[i])
	}
	if c.out.Kind() == reflect.Pointer {
		return p
	}
	return v
}
