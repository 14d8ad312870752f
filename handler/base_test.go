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

package handler_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/vo/apis"
	"dirpx.dev/vo/handler"
)

type tagged struct {
	Count int
	Tags  []string
	Code  code
	Ref   *int
}

// code compares by length through its own Equal method.
type code struct{ v string }

func (c code) Equal(o code) bool { return len(c.v) == len(o.v) }

type other struct{ Count int }

func TestDefault_NullContract(t *testing.T) {
	h, err := handler.NewDefault(fieldOf(t, tagged{}, "Tags"))
	require.NoError(t, err)

	assert.True(t, h.EqualValues(nil, nil))
	assert.True(t, h.EqualValues([]string(nil), nil))
	assert.False(t, h.EqualValues([]string(nil), []string{}))
	assert.False(t, h.EqualValues(nil, []string{"a"}))
	assert.True(t, h.EqualValues([]string{"a"}, []string{"a"}))

	assert.Equal(t, handler.NullHash, h.HashValue(nil))
	assert.Equal(t, handler.NullHash, h.HashValue([]string(nil)))
	assert.Equal(t, handler.NullDisplay, h.DisplayValue(nil))
}

func TestDefault_OwnerAccess(t *testing.T) {
	h, err := handler.NewDefault(fieldOf(t, tagged{}, "Count"))
	require.NoError(t, err)

	eq, err := h.AreEqual(tagged{Count: 1}, tagged{Count: 1})
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = h.AreEqual(tagged{Count: 1}, tagged{Count: 2})
	require.NoError(t, err)
	assert.False(t, eq)

	a, err := h.HashCode(tagged{Count: 3})
	require.NoError(t, err)
	b, err := h.HashCode(tagged{Count: 3})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	s, err := h.DisplayString(tagged{Count: 3})
	require.NoError(t, err)
	assert.Equal(t, "3", s)

	_, err = h.AreEqual(nil, tagged{})
	assert.ErrorIs(t, err, apis.ErrMissingArgument)
	_, err = h.HashCode(nil)
	assert.ErrorIs(t, err, apis.ErrMissingArgument)
	_, err = h.DisplayString(other{})
	assert.ErrorIs(t, err, apis.ErrFieldNotFound)
}

func TestDefault_OwnSemantics(t *testing.T) {
	h, err := handler.NewDefault(fieldOf(t, tagged{}, "Code"))
	require.NoError(t, err)

	assert.True(t, h.EqualValues(code{"abc"}, code{"xyz"}))
	assert.False(t, h.EqualValues(code{"abc"}, code{"ab"}))
	assert.Equal(t, h.HashValue(code{"abc"}), h.HashValue(code{"xyz"}))
}

func TestDefault_PointerComparesPointee(t *testing.T) {
	h, err := handler.NewDefault(fieldOf(t, tagged{}, "Ref"))
	require.NoError(t, err)

	x, y, z := 5, 5, 6
	assert.True(t, h.EqualValues(&x, &y))
	assert.False(t, h.EqualValues(&x, &z))
	assert.Equal(t, h.HashValue(&x), h.HashValue(&y))
	assert.Equal(t, "5", h.DisplayValue(&x))
	assert.False(t, h.EqualValues(&x, (*int)(nil)))
}

type point struct{ X, Y float64 }

type shape struct {
	Origin  point
	Corners [2]point
	Samples []float64
	hidden  point
}

func TestDefault_NestedNaN(t *testing.T) {
	nan := math.NaN()

	h, err := handler.NewDefault(fieldOf(t, shape{}, "Origin"))
	require.NoError(t, err)
	assert.True(t, h.EqualValues(point{X: nan}, point{X: nan}))
	assert.False(t, h.EqualValues(point{X: nan}, point{X: 1}))
	assert.Equal(t, h.HashValue(point{X: nan}), h.HashValue(point{X: nan}))

	h, err = handler.NewDefault(fieldOf(t, shape{}, "Corners"))
	require.NoError(t, err)
	corners := [2]point{{X: 1}, {Y: nan}}
	assert.True(t, h.EqualValues(corners, [2]point{{X: 1}, {Y: nan}}))
	assert.False(t, h.EqualValues(corners, [2]point{{X: 1}, {Y: 2}}))

	h, err = handler.NewDefault(fieldOf(t, shape{}, "Samples"))
	require.NoError(t, err)
	assert.True(t, h.EqualValues([]float64{1, nan}, []float64{1, nan}))
	assert.False(t, h.EqualValues([]float64{1, nan}, []float64{1, nan, 2}))
}

func TestDefault_NestedNaNReflexive(t *testing.T) {
	nan := math.NaN()
	h, err := handler.NewDefault(fieldOf(t, tagged{}, "Code"))
	require.NoError(t, err)

	s := shape{Origin: point{X: nan}, hidden: point{Y: nan}}
	v := reflect.ValueOf(s)
	assert.True(t, h.Equal(v, v))
	assert.Equal(t, h.Hash(v), h.Hash(v))
}

func TestNew_BindsCustomSemantics(t *testing.T) {
	f := fieldOf(t, tagged{}, "Count")

	_, err := handler.New(f, nil)
	assert.ErrorIs(t, err, apis.ErrMissingArgument)

	f.Accessor = nil
	_, err = handler.New(f, parity{})
	assert.ErrorIs(t, err, apis.ErrMissingArgument)

	h, err := handler.New(fieldOf(t, tagged{}, "Count"), parity{})
	require.NoError(t, err)
	eq, err := h.AreEqual(tagged{Count: 2}, tagged{Count: 4})
	require.NoError(t, err)
	assert.True(t, eq)
	assert.Equal(t, "odd", h.DisplayValue(3))
}

// parity compares integers by parity.
type parity struct{}

func (parity) Equal(a, b reflect.Value) bool { return a.Int()%2 == b.Int()%2 }

func (parity) Hash(v reflect.Value) int { return int(v.Int() % 2) }

func (parity) Display(v reflect.Value) string {
	if v.Int()%2 == 0 {
		return "even"
	}
	return "odd"
}

func TestCombine(t *testing.T) {
	assert.Equal(t, 17*31+5, handler.Combine(17, 5))
	assert.Equal(t, handler.CombineUnordered(handler.CombineUnordered(0, 1), 2),
		handler.CombineUnordered(handler.CombineUnordered(0, 2), 1))
}
