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

// Builder composes the provider chain used to resolve field handlers for a
// value-object type. Implementations must return a fresh or immutable
// Provider; the result is shared by every goroutine that uses the type.
type Builder interface {
	// BuildProvider constructs the Aggregate Resolver for a type registered with cfg.
	BuildProvider(cfg Config) (Provider, error)
}
