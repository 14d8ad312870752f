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

package apis

import (
	"reflect"
)

// Accessor reads the current value of one field from an owning instance.
//
// owner is the value-object instance as passed by the caller (a struct value
// or a pointer to it). Implementations return ErrFieldNotFound when owner does
// not declare the field, and an invalid reflect.Value when the field is
// reachable but absent (for example, through a nil pointer).
type Accessor interface {
	Value(owner reflect.Value) (reflect.Value, error)
}

// AccessorFunc adapts an ordinary function to the Accessor interface.
type AccessorFunc func(owner reflect.Value) (reflect.Value, error)

// Value calls f(owner).
func (f AccessorFunc) Value(owner reflect.Value) (reflect.Value, error) {
	return f(owner)
}

// Annotations carries declarative, non-default behavior for a field or a type.
// A nil pointer means "not declared at this level".
type Annotations struct {
	// Precision enables precision-bounded comparison of floating-point fields.
	Precision *Precision
	// StringComparison selects the text comparison mode of string fields.
	StringComparison *StringComparison
	// Unordered compares an iterable field as a multiset. Field level only.
	Unordered bool
}

// Field describes one declared field of a value-object type.
type Field struct {
	// Name is unique within the owning type, ignoring case.
	Name string
	// Type is the declared type of the field.
	Type reflect.Type
	// Owner is the value-object type the field belongs to (a struct or a pointer to one).
	Owner reflect.Type
	// Index is the index path of the field within the owner struct.
	// It is nil for synthetic fields that cannot be assigned directly.
	Index []int
	// Accessor reads the field from an owner instance.
	Accessor Accessor
	// Annotations declared on the field itself.
	Annotations Annotations
	// TypeAnnotations declared on the owning type; field annotations take precedence.
	TypeAnnotations Annotations
}

// Precision returns the precision that applies to the field: the field's own
// annotation if present, otherwise the owning type's.
func (f Field) Precision() (Precision, bool) {
	if p := f.Annotations.Precision; p != nil {
		return *p, true
	}
	if p := f.TypeAnnotations.Precision; p != nil {
		return *p, true
	}
	return Precision{}, false
}

// StringComparison returns the comparison mode that applies to the field,
// falling back to the type-level mode and finally to Ordinal.
func (f Field) StringComparison() StringComparison {
	if c := f.Annotations.StringComparison; c != nil {
		return *c
	}
	if c := f.TypeAnnotations.StringComparison; c != nil {
		return *c
	}
	return Ordinal
}

// Elem returns a descriptor for the value a pointer-typed field points to.
// The returned accessor yields an invalid reflect.Value when the pointer is nil.
// Elem panics if the field is not a pointer.
func (f Field) Elem() Field {
	if f.Type == nil || f.Type.Kind() != reflect.Pointer {
		panic("apis: Field.Elem of non-pointer field " + f.Name)
	}
	outer := f.Accessor
	ef := f
	ef.Type = f.Type.Elem()
	ef.Index = nil
	ef.Accessor = AccessorFunc(func(owner reflect.Value) (reflect.Value, error) {
		if outer == nil {
			return reflect.Value{}, ErrMissingArgument
		}
		v, err := outer.Value(owner)
		if err != nil {
			return reflect.Value{}, err
		}
		if !v.IsValid() || v.IsNil() {
			return reflect.Value{}, nil
		}
		return v.Elem(), nil
	})
	return ef
}

// String renders the field as "Name Type".
func (f Field) String() string {
	if f.Type == nil {
		return f.Name
	}
	return f.Name + " " + f.Type.String()
}
