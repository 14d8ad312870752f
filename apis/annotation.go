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

// PrecisionDeclarer is implemented by value-object types that declare a
// type-level precision for their floating-point fields. A method promoted
// from an embedded struct applies too; one declared on the outer type
// shadows it.
type PrecisionDeclarer interface {
	VOPrecision() Precision
}

// StringComparisonDeclarer is implemented by value-object types that declare
// a type-level comparison mode for their string fields. Promotion rules are
// the same as for PrecisionDeclarer.
type StringComparisonDeclarer interface {
	VOStringComparison() StringComparison
}
