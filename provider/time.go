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

package provider

import (
	"reflect"
	"time"

	"dirpx.dev/vo/apis"
	"dirpx.dev/vo/handler"
)

var timeType = reflect.TypeFor[time.Time]()

// NewTime creates an apis.Provider for time.Time and *time.Time fields.
func NewTime() apis.Provider {
	return &timeProvider{}
}

type timeProvider struct{}

// Ensure timeProvider implements apis.Provider.
var _ apis.Provider = (*timeProvider)(nil)

func (*timeProvider) IsSupported(f apis.Field) bool {
	return base(f) == timeType
}

func (p *timeProvider) Create(f apis.Field) (apis.Handler, error) {
	if !p.IsSupported(f) {
		return nil, unsupported(p, f)
	}
	return nullable(f, func(f apis.Field) (apis.Handler, error) {
		return handler.NewTime(f)
	})
}
