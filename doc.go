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

// Package vo provides structural equality, hashing, display and immutable
// updates for value objects.
//
// A value object is a plain Go struct whose identity is the set of values of
// its exported fields. vo inspects such a type once, builds a descriptor for
// it and uses that descriptor to answer every later question about values of
// that type:
//
//	type Money struct {
//		Amount   float64 `vo:"precision=2"`
//		Currency string  `vo:"compare=ordinal-ignore-case"`
//	}
//
//	vo.Equal(Money{1.001, "usd"}, Money{1.004, "USD"}) // true
//	vo.String(Money{1.5, "EUR"})                       // { Amount: 1.5, Currency: "EUR" }
//	m, err := vo.With(Money{1.5, "EUR"}, "amount", 2.0)
//
// # Design
//
// The core of vo is a read-mostly global snapshot (state). The snapshot
// holds three things:
//
//   - Builder: a pluggable factory that turns a type configuration into the
//     provider chain used to create field handlers.
//
//   - Registry: a process-wide cache from Go types to descriptors. Each
//     descriptor is built at most once, even under concurrent first use, and
//     a build failure is cached and returned on every later lookup.
//
//   - Logger: a zap logger receiving one debug record per built descriptor.
//     It defaults to zap.NewNop.
//
// All of these live inside a single immutable struct called state. The
// package holds an atomic pointer to the current state. Readers load that
// pointer and never mutate it. Writers build a new state and swap it in.
//
// # Descriptors
//
// A descriptor lists the fields of a type in declaration order. Fields are
// the exported fields of the struct, including fields promoted from embedded
// structs. Each field gets a handler from the first provider in the chain
// that supports it:
//
//  1. string fields compare with the field's string comparison mode.
//  2. time.Time fields compare by instant and display with a fixed layout.
//  3. float32 and float64 fields with a declared precision compare rounded.
//  4. iterable fields compare element-wise, or as sets when unordered.
//  5. everything else uses the type's own Equal and HashCode methods or
//     Go equality.
//
// The descriptor also resolves the constructor used by With and WithValues.
// Constructors are registered with config.WithConstructor together with
// their parameter names; with none registered a composite literal is used.
//
// # Configuration
//
// Per-type configuration is declared with Register before the type is first
// used, with struct tags on fields, or with the VOPrecision and
// VOStringComparison methods on the type itself. Configuration errors
// surface from Register and Describe. Equal, Hash and String panic on them.
//
// # Concurrency
//
// All exported functions are safe for concurrent use. SetBuilder, SetLogger
// and Reset publish a new snapshot; callers already holding a descriptor keep
// using it.
package vo
