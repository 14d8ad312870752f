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
	"reflect"
	"time"

	"dirpx.dev/vo/apis"
)

// Unspecified is the location of timestamps that carry no zone. Such
// timestamps render without an offset suffix.
var Unspecified = time.FixedZone("", 0)

// TimestampLayout renders the date and time with seven fractional digits.
// A zone suffix is appended unless the location is Unspecified.
const (
	TimestampLayout = "2006-01-02T15:04:05.0000000"
	zoneLayout      = "Z07:00"
)

var timeType = reflect.TypeFor[time.Time]()

// Time compares time.Time fields as instants.
type Time struct {
	Base
}

// NewTime binds a Time handler to f, a time.Time field.
func NewTime(f apis.Field) (*Time, error) {
	h := &Time{}
	if err := h.bind(f, h); err != nil {
		return nil, err
	}
	if f.Type != timeType {
		return nil, mismatch(f, timeType.String())
	}
	return h, nil
}

// Equal implements Semantics.
func (*Time) Equal(a, b reflect.Value) bool {
	return asTime(a).Equal(asTime(b))
}

// Hash implements Semantics.
func (*Time) Hash(v reflect.Value) int {
	t := asTime(v)
	return Combine(hashUint64(uint64(t.Unix())), t.Nanosecond())
}

// Display implements Semantics.
func (*Time) Display(v reflect.Value) string {
	return FormatTimestamp(asTime(v))
}

// FormatTimestamp renders t as 2006-01-02T15:04:05.0000000 followed by Z for
// a zero offset, ±hh:mm otherwise, and nothing in the Unspecified location.
func FormatTimestamp(t time.Time) string {
	if t.Location() == Unspecified {
		return t.Format(TimestampLayout)
	}
	return t.Format(TimestampLayout + zoneLayout)
}

func asTime(v reflect.Value) time.Time {
	return v.Interface().(time.Time)
}
