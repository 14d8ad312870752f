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

// Handler implements equality, hashing and display for one field.
//
// A Handler is bound to exactly one Field at construction time and is
// immutable afterwards, so it is safe for concurrent use.
//
// Owner-level methods take the owning value-object instances and read the
// field through its Accessor. They fail with ErrMissingArgument for a nil
// owner and ErrFieldNotFound for an owner that does not declare the field.
//
// Value-level methods take field values directly. Two absent values are
// equal, one absent value is unequal to any present value, an absent value
// hashes to the null sentinel and displays as "null".
type Handler interface {
	// Field returns the descriptor the handler is bound to.
	Field() Field

	// AreEqual reports whether the field values of two owners are equal.
	AreEqual(left, right any) (bool, error)
	// HashCode returns the hash contribution of the owner's field value.
	HashCode(owner any) (int, error)
	// DisplayString renders the owner's field value.
	DisplayString(owner any) (string, error)

	// EqualValues reports whether two field values are equal.
	EqualValues(a, b any) bool
	// HashValue returns the hash contribution of a field value.
	HashValue(v any) int
	// DisplayValue renders a field value.
	DisplayValue(v any) string
}
