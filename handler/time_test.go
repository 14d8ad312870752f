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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/vo/apis"
	"dirpx.dev/vo/handler"
)

func TestTime_InstantEquality(t *testing.T) {
	h, err := handler.NewTime(fieldOf(t, person{}, "Born"))
	require.NoError(t, err)

	utc := time.Date(2016, 3, 17, 10, 30, 0, 0, time.UTC)
	cet := utc.In(time.FixedZone("CET", 2*60*60))
	assert.True(t, h.EqualValues(utc, cet))
	assert.Equal(t, h.HashValue(utc), h.HashValue(cet))
	assert.False(t, h.EqualValues(utc, utc.Add(time.Nanosecond)))

	_, err = handler.NewTime(fieldOf(t, person{}, "Age"))
	assert.ErrorIs(t, err, apis.ErrTypeMismatch)
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"unspecified", time.Date(2016, 3, 17, 12, 30, 55, 111_000_000, handler.Unspecified), "2016-03-17T12:30:55.1110000"},
		{"utc", time.Date(2016, 3, 17, 12, 30, 55, 0, time.UTC), "2016-03-17T12:30:55.0000000Z"},
		{"offset", time.Date(2016, 3, 17, 12, 30, 55, 1234567_00, time.FixedZone("", 2*60*60)), "2016-03-17T12:30:55.1234567+02:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, handler.FormatTimestamp(tt.in))
		})
	}
}
