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

// Provider decides whether it can build a Handler for a field, and builds it.
// Providers are stateless or parameterized at construction, and safe for
// concurrent use.
type Provider interface {
	// IsSupported reports whether Create can build a handler for f.
	IsSupported(f Field) bool
	// Create builds the handler for f. It fails with ErrUnsupportedField
	// when IsSupported(f) is false.
	Create(f Field) (Handler, error)
}
