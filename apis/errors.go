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

import "errors"

// Error kinds. Every error surfaced by this module wraps exactly one of
// these sentinels, so callers classify failures with errors.Is.
var (
	// ErrMissingArgument is returned when a required argument is absent.
	ErrMissingArgument = errors.New("vo: missing argument")
	// ErrUnsupportedField is returned when no provider can build a handler for a field.
	ErrUnsupportedField = errors.New("vo: unsupported field")
	// ErrTypeMismatch is returned when a handler is bound to a field of an incompatible type,
	// or when an instance of the wrong type is passed to a descriptor.
	ErrTypeMismatch = errors.New("vo: type mismatch")
	// ErrOutOfRange is returned when a precision falls outside its style-specific bounds.
	ErrOutOfRange = errors.New("vo: value out of range")
	// ErrConstructorResolution is returned when a type has no usable constructor.
	ErrConstructorResolution = errors.New("vo: constructor resolution failed")
	// ErrFieldNotFound is returned when a field name does not exist on a type.
	ErrFieldNotFound = errors.New("vo: field not found")
	// ErrAssignment is returned when a replacement value cannot be assigned to a field.
	ErrAssignment = errors.New("vo: cannot assign value")
	// ErrDuplicateField is returned when a field is named more than once in one request.
	ErrDuplicateField = errors.New("vo: duplicate field")
	// ErrInvalidConfig is returned for malformed types, tags or constructor functions.
	ErrInvalidConfig = errors.New("vo: invalid configuration")
	// ErrAlreadyRegistered is returned when a type is registered after its first use.
	ErrAlreadyRegistered = errors.New("vo: type already registered")
)
