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

package uset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRune(t *testing.T) {
	s := New()
	assert.True(t, s.IsEmpty())

	s.AddRune('a')
	assert.True(t, s.ContainsRune('a'))
	assert.False(t, s.ContainsRune('b'))
	assert.Equal(t, 1, s.Len())

	// adjacent runes collapse into one range
	s.AddRune('b')
	s.AddRune('c')
	assert.Equal(t, 1, s.RangeCount())
	assert.Equal(t, rune('a'), s.RangeStart(0))
	assert.Equal(t, rune('c'), s.RangeEnd(0))

	// re-adding is a no-op
	s.AddRune('b')
	assert.Equal(t, 3, s.Len())
}

func TestAddRuneRange(t *testing.T) {
	s := New()
	s.AddRuneRange('0', '9')
	s.AddRuneRange('A', 'Z')
	assert.Equal(t, 2, s.RangeCount())
	assert.Equal(t, 36, s.Len())

	// overlapping ranges merge
	s.AddRuneRange('5', 'F')
	assert.Equal(t, 1, s.RangeCount())
	assert.Equal(t, rune('0'), s.RangeStart(0))
	assert.Equal(t, rune('Z'), s.RangeEnd(0))

	// single-rune range
	s2 := New()
	s2.AddRuneRange('x', 'x')
	assert.Equal(t, 1, s2.Len())
	assert.True(t, s2.ContainsRune('x'))
}

func TestAddAll(t *testing.T) {
	a := New()
	a.AddRuneRange('a', 'f')
	b := New()
	b.AddRuneRange('d', 'k')
	b.AddRune(0x1f600)

	a.AddAll(b)
	assert.True(t, a.ContainsRune('a'))
	assert.True(t, a.ContainsRune('k'))
	assert.True(t, a.ContainsRune(0x1f600))
	assert.Equal(t, 12, a.Len())
}

func TestComplement(t *testing.T) {
	s := New()
	s.AddRune('a')
	s.Complement()

	assert.False(t, s.ContainsRune('a'))
	assert.True(t, s.ContainsRune('b'))
	assert.True(t, s.ContainsRune(0))
	assert.True(t, s.ContainsRune(MaxValue))

	s.Complement()
	assert.True(t, s.ContainsRune('a'))
	assert.Equal(t, 1, s.Len())
}

func TestRemove(t *testing.T) {
	s := New()
	s.AddRuneRange(0, MaxValue)
	s.RemoveRuneRange(0xd800, 0xdfff)
	assert.True(t, s.ContainsRune(0xd7ff))
	assert.False(t, s.ContainsRune(0xd800))
	assert.False(t, s.ContainsRune(0xdfff))
	assert.True(t, s.ContainsRune(0xe000))

	other := New()
	other.AddRuneRange('a', 'z')
	s.RemoveAll(other)
	assert.False(t, s.ContainsRune('m'))
	assert.True(t, s.ContainsRune('A'))

	// single code point removal
	s.RemoveRuneRange('A', 'A')
	assert.False(t, s.ContainsRune('A'))
	assert.True(t, s.ContainsRune('B'))
}

func TestRetainAll(t *testing.T) {
	s := New()
	s.AddRuneRange('a', 'z')
	keep := New()
	keep.AddRuneRange('m', 0xffff)

	s.RetainAll(keep)
	assert.False(t, s.ContainsRune('a'))
	assert.True(t, s.ContainsRune('m'))
	assert.True(t, s.ContainsRune('z'))
	assert.False(t, s.ContainsRune(0x100))
	assert.Equal(t, 14, s.Len())
}

func TestCloneIsIndependent(t *testing.T) {
	s := New()
	s.AddRuneRange('a', 'c')
	c := s.Clone()
	require.True(t, c.Equals(s))

	c.AddRune('z')
	assert.False(t, c.Equals(s))
	assert.False(t, s.ContainsRune('z'))
}

func TestClear(t *testing.T) {
	s := New()
	s.AddRuneRange(0, 100)
	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
}
