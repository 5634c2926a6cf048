/*
Copyright 2026 The Regexpand Authors.

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

package ucase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regexpand/regexpand/go/regexpand/internal/uset"
)

func orbit(c rune) *uset.Set {
	s := uset.New()
	AddFolded(s, c)
	return s
}

func TestAddFolded(t *testing.T) {
	cases := []struct {
		in      rune
		members []rune
	}{
		{'A', []rune{'A', 'a'}},
		{'a', []rune{'A', 'a'}},
		// three-member orbits: every member appears no matter which
		// code point seeds the walk
		{'k', []rune{'k', 'K', 0x212a}},
		{'K', []rune{'k', 'K', 0x212a}},
		{0x212a, []rune{'k', 'K', 0x212a}},
		{'s', []rune{'s', 'S', 0x17f}},
		{'S', []rune{'s', 'S', 0x17f}},
		{0x17f, []rune{'s', 'S', 0x17f}},
		// trivial orbits
		{'0', []rune{'0'}},
		{'_', []rune{'_'}},
		{0x1f600, []rune{0x1f600}},
	}
	for _, tc := range cases {
		s := orbit(tc.in)
		assert.Equal(t, len(tc.members), s.Len(), "orbit of %U", tc.in)
		for _, m := range tc.members {
			assert.True(t, s.ContainsRune(m), "orbit of %U must contain %U", tc.in, m)
		}
	}
}

func TestAddFoldedRange(t *testing.T) {
	s := uset.New()
	AddFoldedRange(s, 'a', 'z')
	for c := rune('a'); c <= 'z'; c++ {
		assert.True(t, s.ContainsRune(c))
	}
	for c := rune('A'); c <= 'Z'; c++ {
		assert.True(t, s.ContainsRune(c))
	}
	assert.True(t, s.ContainsRune(0x17f), "s folds to long s")
	assert.True(t, s.ContainsRune(0x212a), "k folds to kelvin sign")
	assert.False(t, s.ContainsRune('0'))

	// uppercase input reaches the same closure
	s2 := uset.New()
	AddFoldedRange(s2, 'A', 'Z')
	assert.True(t, s2.ContainsRune('a'))
	assert.True(t, s2.ContainsRune('z'))
	assert.True(t, s2.ContainsRune(0x17f))
	assert.True(t, s2.ContainsRune(0x212a))
}

func TestAddFoldedRangeNoPartners(t *testing.T) {
	s := uset.New()
	AddFoldedRange(s, '0', '9')
	assert.Equal(t, 10, s.Len())
}
