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

package handler

import (
	"hash/maphash"
	"math"
	"reflect"
)

// NullHash is the hash contribution of an absent value.
const NullHash = 37

// seed is shared by every hash computed in the process. Hashes are stable
// for the process lifetime only.
var seed = maphash.MakeSeed()

// Combine folds v into the running order-sensitive hash h.
func Combine(h, v int) int {
	return h*31 + v
}

// CombineUnordered folds v into the running hash h so that the result does
// not depend on the order values are folded in.
func CombineUnordered(h, v int) int {
	return h + v
}

// hashString hashes s with the process seed.
func hashString(s string) int {
	return int(maphash.String(seed, s))
}

// hashUint64 hashes an integer bit pattern with the process seed.
func hashUint64(u uint64) int {
	return int(maphash.Comparable(seed, u))
}

// hashFloat hashes f so that values equal under == (and NaN with NaN) hash equal.
func hashFloat(f float64) int {
	switch {
	case f == 0:
		// +0 and -0 compare equal.
		return hashUint64(0)
	case math.IsNaN(f):
		return hashUint64(0x7FF8000000000001)
	default:
		return hashUint64(math.Float64bits(f))
	}
}

// floatEqual compares like ==, except that NaN equals NaN.
func floatEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// hashType returns a constant per type.
func hashType(t reflect.Type) int {
	return hashString(t.String())
}
