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

// Package registry caches the Descriptor of every value-object type in use.
package registry

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"dirpx.dev/vo/apis"
	"dirpx.dev/vo/config"
	"dirpx.dev/vo/descriptor"
)

// Entry is one type in a Registry snapshot.
type Entry struct {
	// Type is the value-object type.
	Type reflect.Type
	// Descriptor is the built descriptor, nil if Err is set.
	Descriptor *descriptor.Descriptor
	// Err is the resolution error of the type, if any.
	Err error
}

// New constructs a Registry that builds provider chains with bld and logs
// built descriptors at debug level to logger. A nil logger disables logging.
func New(bld apis.Builder, logger *zap.Logger) *Registry {
	r := &Registry{bld: bld}
	r.SetLogger(logger)
	return r
}

// Registry holds one slot per type, keyed by reflect.Type. A slot is built
// exactly once, on first use, and its outcome (descriptor or error) is kept
// for the lifetime of the registry. Reads after the build take no locks.
type Registry struct {
	// bld builds the provider chain of each type.
	bld apis.Builder
	// log receives one debug record per built descriptor.
	log atomic.Pointer[zap.Logger]
	// mu guards slot creation and count.
	mu sync.Mutex
	// m maps reflect.Type to *slot.
	m sync.Map
	// count tracks the number of slots.
	count int
}

// slot is the cache cell of one type.
type slot struct {
	cfg  apis.Config
	once sync.Once
	d    *descriptor.Descriptor
	err  error
}

// Register declares the configuration of t and builds its descriptor.
// It fails with apis.ErrAlreadyRegistered if t was registered or used before,
// and otherwise returns the resolution error of t, if any.
func (r *Registry) Register(t reflect.Type, cfg apis.Config) error {
	if t == nil {
		return errors.Wrap(apis.ErrMissingArgument, "registry: nil type")
	}
	s := &slot{cfg: cfg}

	r.mu.Lock()
	_, loaded := r.m.LoadOrStore(t, s)
	if !loaded {
		r.count++
	}
	r.mu.Unlock()

	if loaded {
		return errors.Wrapf(apis.ErrAlreadyRegistered, "registry: %v", t)
	}
	_, err := r.describe(t, s)
	return err
}

// Describe returns the descriptor of t, building it with the default
// configuration if t was never registered. Concurrent first calls for the
// same type observe the same descriptor.
func (r *Registry) Describe(t reflect.Type) (*descriptor.Descriptor, error) {
	if t == nil {
		return nil, errors.Wrap(apis.ErrMissingArgument, "registry: nil type")
	}
	// Fast path: no locking once the slot exists.
	if v, ok := r.m.Load(t); ok {
		return r.describe(t, v.(*slot))
	}

	r.mu.Lock()
	v, loaded := r.m.LoadOrStore(t, &slot{cfg: config.DefaultConfig()})
	if !loaded {
		r.count++
	}
	r.mu.Unlock()

	return r.describe(t, v.(*slot))
}

// Entries returns a snapshot for diagnostics (order is unspecified).
// Types that were never built are built first.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		t := key.(reflect.Type)
		d, err := r.describe(t, value.(*slot))
		entries = append(entries, Entry{Type: t, Descriptor: d, Err: err})
		return true
	})
	return entries
}

// SetLogger replaces the logger. A nil logger disables logging.
func (r *Registry) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.log.Store(logger)
}

// Count returns the number of known types.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset forgets every type, including registered configurations.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}

// describe builds the slot once and returns its outcome.
func (r *Registry) describe(t reflect.Type, s *slot) (*descriptor.Descriptor, error) {
	s.once.Do(func() {
		if r.bld == nil {
			s.err = errors.Wrapf(apis.ErrMissingArgument, "registry: no builder for %v", t)
			return
		}
		p, err := r.bld.BuildProvider(s.cfg)
		if err != nil {
			s.err = errors.Wrapf(err, "registry: %v", t)
			return
		}
		s.d, s.err = descriptor.Build(t, s.cfg, p)
		if s.err == nil {
			r.logBuilt(s.d)
		}
	})
	return s.d, s.err
}

func (r *Registry) logBuilt(d *descriptor.Descriptor) {
	fields := d.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	handlers := d.Handlers()
	kinds := make([]string, len(handlers))
	for i, h := range handlers {
		kinds[i] = reflect.TypeOf(h).String()
	}
	r.log.Load().Debug("value object described",
		zap.Stringer("type", d.Type()),
		zap.Strings("fields", names),
		zap.Strings("handlers", kinds),
		zap.Stringer("constructor", d.Constructor()),
	)
}
