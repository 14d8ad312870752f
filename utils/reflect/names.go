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

package reflect

import (
	"reflect"
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// FoldName returns the case-folded form of a field or parameter name.
// Two names are the same, ignoring case, iff their folded forms are equal.
func FoldName(name string) string {
	// A Caser keeps state between calls and must not be shared.
	return cases.Fold().String(name)
}

// FuncName returns the package-qualified name of the function held by fn
// ("money.New") and whether its own identifier is exported. Closures are
// named "func1", "func2", ... by the runtime and are therefore unexported.
func FuncName(fn reflect.Value) (name string, exported bool) {
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return "", false
	}
	rf := runtime.FuncForPC(fn.Pointer())
	if rf == nil {
		return "", false
	}
	full := rf.Name()
	if i := strings.LastIndexByte(full, '/'); i >= 0 {
		full = full[i+1:]
	}
	name = full
	if i := strings.LastIndexByte(full, '.'); i >= 0 {
		name = full[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	r, _ := utf8.DecodeRuneInString(name)
	return full, unicode.IsUpper(r)
}
