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

// Config carries the declarative configuration of one value-object type.
// It is passed by value and must be treated as immutable once a type is
// registered.
type Config struct {
	// Constructors lists the candidate constructors of the type, in
	// registration order. When empty, the composite literal is used.
	Constructors []ConstructorSpec

	// Type holds type-level annotations. They apply to every field that
	// does not declare its own.
	Type Annotations

	// Fields holds field-level annotations keyed by case-folded field name.
	// They take precedence over struct tags.
	Fields map[string]Annotations

	// Providers replaces the default provider chain when non-empty.
	// Order matters: the first supporting provider wins.
	Providers []Provider
}

// ConstructorSpec declares one constructor function and its parameter names.
type ConstructorSpec struct {
	// Func is a function returning the value-object type, optionally with
	// a trailing error.
	Func any
	// Params names each parameter of Func, in order.
	Params []string
	// Preferred marks the constructor to use when several would match.
	// At most one constructor of a type may be preferred.
	Preferred bool
}
