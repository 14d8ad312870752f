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

package registry_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"dirpx.dev/vo/builder"
	"dirpx.dev/vo/descriptor"
	"dirpx.dev/vo/registry"
)

// A few named types to avoid anonymous/unnamed pitfalls.
type T0 struct{ A int }
type T1 struct{ A string }
type T2 struct{ A []int }
type T3 struct{ A float64 }
type T4 struct{ A *string }

// TestConcurrentDescribe verifies that concurrent first uses of a type all
// observe the same descriptor.
func TestConcurrentDescribe(t *testing.T) {
	reg := registry.New(builder.New(), zaptest.NewLogger(t))

	types := []reflect.Type{
		reflect.TypeOf(T0{}), reflect.TypeOf(T1{}), reflect.TypeOf(T2{}),
		reflect.TypeOf(T3{}), reflect.TypeOf(T4{}),
	}

	workers := runtime.GOMAXPROCS(0) * 4
	seen := make([][]*descriptor.Descriptor, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			out := make([]*descriptor.Descriptor, len(types))
			for i := range types {
				tt := types[(i+id)%len(types)]
				d, err := reg.Describe(tt)
				if err != nil {
					t.Errorf("describe %v: %v", tt, err)
					return
				}
				out[(i+id)%len(types)] = d
			}
			seen[id] = out
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		for i := range types {
			require.Same(t, seen[0][i], seen[w][i], "worker %d type %v", w, types[i])
		}
	}
	require.Equal(t, len(types), reg.Count())
}
