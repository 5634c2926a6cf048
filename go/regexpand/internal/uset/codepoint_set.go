/*
© 2016 and later: Unicode, Inc. and others.
Copyright (C) 2004-2015, International Business Machines Corporation and others.
Copyright 2026 The Regexpand Authors.

This file contains code derived from the Unicode Project's ICU library.
License & terms of use for the original code: http://www.unicode.org/copyright.html

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

// Package uset implements a set of Unicode code points backed by an
// inversion list: a sorted slice of range boundaries where even indices
// start a run of members and odd indices end it.
package uset

import (
	"golang.org/x/exp/slices"
)

// high > all valid code points; the list terminator.
const high = 0x110000

// low <= all valid code points.
const low = 0x000000

const (
	// MinValue is the smallest value storable in a Set.
	MinValue = 0

	// MaxValue is the largest value storable in a Set.
	MaxValue = 0x10ffff
)

// Set is a mutable set of Unicode code points. The zero value is not
// usable; construct with New.
type Set struct {
	list   []rune
	buffer []rune
}

func New() *Set {
	buf := make([]rune, 1, 25)
	buf[0] = high
	return &Set{list: buf}
}

func (u *Set) ensureBufferCapacity(c int) {
	if cap(u.buffer) < c {
		u.buffer = make([]rune, c)
		return
	}
	u.buffer = u.buffer[:cap(u.buffer)]
}

// addbuffer merges another inversion list into u. polarity selects the
// boolean operation; 0 is union.
func (u *Set) addbuffer(other []rune, polarity int8) {
	u.ensureBufferCapacity(len(u.list) + len(other))

	i := 1
	j := 1
	k := 0

	a := u.list[0]
	b := other[0]

	for {
		switch polarity {
		case 0:
			if a < b {
				if k > 0 && a <= u.buffer[k-1] {
					k--
					a = max(u.list[i], u.buffer[k])
				} else {
					u.buffer[k] = a
					k++
					a = u.list[i]
				}
				i++
				polarity ^= 1
			} else if b < a {
				if k > 0 && b <= u.buffer[k-1] {
					k--
					b = max(other[j], u.buffer[k])
				} else {
					u.buffer[k] = b
					k++
					b = other[j]
				}
				j++
				polarity ^= 2
			} else {
				if a == high {
					goto loopEnd
				}
				if k > 0 && a <= u.buffer[k-1] {
					k--
					a = max(u.list[i], u.buffer[k])
				} else {
					u.buffer[k] = a
					k++
					a = u.list[i]
				}
				i++
				polarity ^= 1
				b = other[j]
				j++
				polarity ^= 2
			}
		case 3:
			if b <= a {
				if a == high {
					goto loopEnd
				}
				u.buffer[k] = a
				k++
			} else {
				if b == high {
					goto loopEnd
				}
				u.buffer[k] = b
				k++
			}
			a = u.list[i]
			i++
			polarity ^= 1
			b = other[j]
			j++
			polarity ^= 2
		case 1:
			if a < b {
				u.buffer[k] = a
				k++
				a = u.list[i]
				i++
				polarity ^= 1
			} else if b < a {
				b = other[j]
				j++
				polarity ^= 2
			} else {
				if a == high {
					goto loopEnd
				}
				a = u.list[i]
				i++
				polarity ^= 1
				b = other[j]
				j++
				polarity ^= 2
			}
		case 2:
			if b < a {
				u.buffer[k] = b
				k++
				b = other[j]
				j++
				polarity ^= 2
			} else if a < b {
				a = u.list[i]
				i++
				polarity ^= 1
			} else {
				if a == high {
					goto loopEnd
				}
				a = u.list[i]
				i++
				polarity ^= 1
				b = other[j]
				j++
				polarity ^= 2
			}
		}
	}

loopEnd:
	u.buffer[k] = high
	k++

	u.list, u.buffer = u.buffer[:k], u.list
}

func max(a, b rune) rune {
	if a > b {
		return a
	}
	return b
}

func pinCodePoint(c *rune) rune {
	if *c < low {
		*c = low
	} else if *c > (high - 1) {
		*c = high - 1
	}
	return *c
}

func (u *Set) AddRune(c rune) {
	// find smallest i such that c < list[i]
	// if odd, then it is IN the set
	// if even, then it is OUT of the set
	i := u.findCodePoint(pinCodePoint(&c))

	// already in set?
	if (i & 1) != 0 {
		return
	}

	// empty = [HIGH]
	// [start_0, limit_0, start_1, limit_1, HIGH]

	// [..., start_k-1, limit_k-1, start_k, limit_k, ..., HIGH]
	//                             ^
	//                             list[i]

	// i == 0 means c is before the first range
	if c == u.list[i]-1 {
		// c is before start of next range
		u.list[i] = c
		// if we touched the HIGH mark, then add a new one
		if c == (high - 1) {
			u.list = append(u.list, high)
		}
		if i > 0 && c == u.list[i-1] {
			// collapse adjacent ranges

			// [..., start_k-1, c, c, limit_k, ..., HIGH]
			//                     ^
			//                     list[i]
			for k := i - 1; k < len(u.list)-2; k++ {
				u.list[k] = u.list[k+2]
			}
			u.list = u.list[:len(u.list)-2]
		}
	} else if i > 0 && c == u.list[i-1] {
		// c is after end of prior range
		u.list[i-1]++
		// no need to check for collapse here
	} else {
		// At this point we know the new char is not adjacent to
		// any existing ranges, and it is not 10FFFF.

		// [..., start_k-1, limit_k-1, start_k, limit_k, ..., HIGH]
		//                             ^
		//                             list[i]

		// [..., start_k-1, limit_k-1, c, c+1, start_k, limit_k, ..., HIGH]
		//                             ^
		//                             list[i]
		u.list = slices.Insert(u.list, i, c, c+1)
	}
}

func (u *Set) AddRuneRange(start, end rune) {
	if pinCodePoint(&start) < pinCodePoint(&end) {
		limit := end + 1
		// Fast path for adding a new range after the last one.
		// Odd list length: [..., lastStart, lastLimit, HIGH]
		if (len(u.list) & 1) != 0 {
			// If the list is empty, set lastLimit low enough to not be adjacent to 0.
			var lastLimit rune
			if len(u.list) == 1 {
				lastLimit = -2
			} else {
				lastLimit = u.list[len(u.list)-2]
			}
			if lastLimit <= start {
				if lastLimit == start {
					// Extend the last range.
					u.list[len(u.list)-2] = limit
					if limit == high {
						u.list = u.list[:len(u.list)-1]
					}
				} else {
					u.list[len(u.list)-1] = start
					if limit < high {
						u.list = append(u.list, limit)
						u.list = append(u.list, high)
					} else { // limit == high
						u.list = append(u.list, high)
					}
				}
				return
			}
		}
		// This is slow. Could be much faster using findCodePoint(start)
		// and modifying the list, dealing with adjacent & overlapping ranges.
		addRange := [3]rune{start, limit, high}
		u.addbuffer(addRange[:], 0)
	} else if start == end {
		u.AddRune(start)
	}
}

// AddAll unions another set into the receiver.
func (u *Set) AddAll(u2 *Set) {
	if len(u2.list) > 0 {
		u.addbuffer(u2.list, 0)
	}
}

// Complement inverts the set against the full code-point range.
func (u *Set) Complement() {
	if u.list[0] == low {
		copy(u.list, u.list[1:])
		u.list = u.list[:len(u.list)-1]
	} else {
		u.list = slices.Insert(u.list, 0, low)
	}
}

func (u *Set) RemoveRuneRange(start, end rune) {
	if pinCodePoint(&start) < pinCodePoint(&end) {
		r := [3]rune{start, end + 1, high}
		u.retain(r[:], 2)
	} else if start == end {
		r := [3]rune{start, start + 1, high}
		u.retain(r[:], 2)
	}
}

func (u *Set) RemoveAll(c *Set) {
	u.retain(c.list, 2)
}

func (u *Set) RetainAll(c *Set) {
	u.retain(c.list, 0)
}

func (u *Set) retain(other []rune, polarity int8) {
	u.ensureBufferCapacity(len(u.list) + len(other))

	i := 1
	j := 1
	k := 0

	a := u.list[0]
	b := other[0]

	// change from xor is that we have to check overlapping pairs
	// polarity bit 1 means a is second, bit 2 means b is.
	for {
		switch polarity {
		case 0: // both first; drop the smaller
			if a < b { // drop a
				a = u.list[i]
				i++
				polarity ^= 1
			} else if b < a { // drop b
				b = other[j]
				j++
				polarity ^= 2
			} else { // a == b, take one, drop other
				if a == high {
					goto loopEnd
				}
				u.buffer[k] = a
				k++
				a = u.list[i]
				i++
				polarity ^= 1
				b = other[j]
				j++
				polarity ^= 2
			}
		case 3: // both second; take lower if unequal
			if a < b { // take a
				u.buffer[k] = a
				k++
				a = u.list[i]
				i++
				polarity ^= 1
			} else if b < a { // take b
				u.buffer[k] = b
				k++
				b = other[j]
				j++
				polarity ^= 2
			} else { // a == b, take one, drop other
				if a == high {
					goto loopEnd
				}
				u.buffer[k] = a
				k++
				a = u.list[i]
				i++
				polarity ^= 1
				b = other[j]
				j++
				polarity ^= 2
			}
		case 1: // a second, b first;
			if a < b { // NO OVERLAP, drop a
				a = u.list[i]
				i++
				polarity ^= 1
			} else if b < a { // OVERLAP, take b
				u.buffer[k] = b
				k++
				b = other[j]
				j++
				polarity ^= 2
			} else { // a == b, drop both!
				if a == high {
					goto loopEnd
				}
				a = u.list[i]
				i++
				polarity ^= 1
				b = other[j]
				j++
				polarity ^= 2
			}
		case 2: // a first, b second; if a < b, overlap
			if b < a { // no overlap, drop b
				b = other[j]
				j++
				polarity ^= 2
			} else if a < b { // OVERLAP, take a
				u.buffer[k] = a
				k++
				a = u.list[i]
				i++
				polarity ^= 1
			} else { // a == b, drop both!
				if a == high {
					goto loopEnd
				}
				a = u.list[i]
				i++
				polarity ^= 1
				b = other[j]
				j++
				polarity ^= 2
			}
		}
	}

loopEnd:
	u.buffer[k] = high // terminate
	k++
	u.list, u.buffer = u.buffer[:k], u.list
}

func (u *Set) Clear() {
	u.list = u.list[:1]
	u.list[0] = high
}

// Len returns the number of code points in the set.
func (u *Set) Len() (n int) {
	count := u.RangeCount()
	for i := 0; i < count; i++ {
		n += int(u.RangeEnd(i)) - int(u.RangeStart(i)) + 1
	}
	return
}

func (u *Set) RangeCount() int {
	return len(u.list) / 2
}

func (u *Set) RangeStart(idx int) rune {
	return u.list[idx*2]
}

func (u *Set) RangeEnd(idx int) rune {
	return u.list[idx*2+1] - 1
}

func (u *Set) ContainsRune(c rune) bool {
	if c >= high {
		return false
	}
	i := u.findCodePoint(c)
	return (i & 1) != 0
}

func (u *Set) findCodePoint(c rune) int {
	/* Examples:
	                                   findCodePoint(c)
	   set              list[]         c=0 1 3 4 7 8
	   ===              ==============   ===========
	   []               [110000]         0 0 0 0 0 0
	   [\u0000-\u0003] [0, 4, 110000]   1 1 1 2 2 2
	   [\u0004-\u0007] [4, 8, 110000]   0 0 0 1 1 2
	   [:Any:]          [0, 110000]      1 1 1 1 1 1
	*/

	// Return the smallest i such that c < list[i].  Assume
	// list[len - 1] == HIGH and that c is legal (0..HIGH-1).
	if c < u.list[0] {
		return 0
	}

	// High runner test.  c is often after the last range, so an
	// initial check for this condition pays off.
	lo := 0
	hi := len(u.list) - 1
	if lo >= hi || c >= u.list[hi-1] {
		return hi
	}

	// invariant: c >= list[lo]
	// invariant: c < list[hi]
	for {
		i := (lo + hi) >> 1
		if i == lo {
			break // Found!
		} else if c < u.list[i] {
			hi = i
		} else {
			lo = i
		}
	}
	return hi
}

func (u *Set) Clone() *Set {
	return &Set{list: slices.Clone(u.list)}
}

func (u *Set) IsEmpty() bool {
	return len(u.list) == 1
}

func (u *Set) Equals(other *Set) bool {
	return slices.Equal(u.list, other.list)
}
