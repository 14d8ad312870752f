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

// Package comparer provides the text comparers behind string fields.
package comparer

import (
	"hash/maphash"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"dirpx.dev/vo/apis"
)

var seed = maphash.MakeSeed()

// current is the language used by the CurrentCulture modes.
var current atomic.Pointer[language.Tag]

func init() {
	tag := language.AmericanEnglish
	current.Store(&tag)
}

// SetCurrentLanguage sets the language of the CurrentCulture modes.
// It affects handlers built afterwards; existing handlers keep their collator.
func SetCurrentLanguage(tag language.Tag) {
	current.Store(&tag)
}

// CurrentLanguage returns the language of the CurrentCulture modes.
func CurrentLanguage() language.Tag {
	return *current.Load()
}

// For returns the comparer implementing mode.
func For(mode apis.StringComparison) (apis.StringComparer, error) {
	switch mode {
	case apis.Ordinal:
		return Ordinal(), nil
	case apis.OrdinalIgnoreCase:
		return OrdinalIgnoreCase(), nil
	case apis.CurrentCulture:
		return Collating(CurrentLanguage(), false), nil
	case apis.CurrentCultureIgnoreCase:
		return Collating(CurrentLanguage(), true), nil
	case apis.InvariantCulture:
		return Collating(language.Und, false), nil
	case apis.InvariantCultureIgnoreCase:
		return Collating(language.Und, true), nil
	default:
		return nil, errors.Wrapf(apis.ErrInvalidConfig, "unknown string comparison %d", int(mode))
	}
}

// Ordinal compares strings byte for byte.
func Ordinal() apis.StringComparer {
	return ordinal{}
}

type ordinal struct{}

func (ordinal) Equal(a, b string) bool { return a == b }

func (ordinal) Hash(s string) int { return int(maphash.String(seed, s)) }

// OrdinalIgnoreCase compares the Unicode case-folded forms of strings byte for byte.
func OrdinalIgnoreCase() apis.StringComparer {
	return ordinalIgnoreCase{}
}

type ordinalIgnoreCase struct{}

func (ordinalIgnoreCase) Equal(a, b string) bool {
	if a == b {
		return true
	}
	c := cases.Fold()
	return c.String(a) == c.String(b)
}

func (ordinalIgnoreCase) Hash(s string) int {
	return int(maphash.String(seed, cases.Fold().String(s)))
}

// Collating compares strings by the collation rules of tag. Strings that
// collate equal hash equal because the hash is taken over the collation key.
func Collating(tag language.Tag, ignoreCase bool) apis.StringComparer {
	var opts []collate.Option
	if ignoreCase {
		opts = append(opts, collate.IgnoreCase)
	}
	return &collating{tag: tag, c: collate.New(tag, opts...)}
}

// collating serializes access to its collator, which keeps per-call state.
type collating struct {
	tag language.Tag
	mu  sync.Mutex
	c   *collate.Collator
	buf collate.Buffer
}

func (c *collating) Equal(a, b string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.CompareString(a, b) == 0
}

func (c *collating) Hash(s string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.c.KeyFromString(&c.buf, s)
	h := maphash.Bytes(seed, key)
	c.buf.Reset()
	return int(h)
}

// Language returns the collation language.
func (c *collating) Language() language.Tag {
	return c.tag
}
