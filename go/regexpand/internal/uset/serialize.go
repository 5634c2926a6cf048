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
	"strconv"
	"strings"
)

// RenderOptions selects the pattern syntax a serialized set may use.
type RenderOptions struct {
	// UnicodeFlag allows astral-safe syntax: one character class with
	// \u{...} escapes, for targets that run the output with the u flag.
	UnicodeFlag bool

	// BMPOnly renders surrogate code points as plain BMP characters.
	// This is the correct rendering when the output runs without the u
	// flag against code-unit matching semantics: each half of a
	// surrogate pair is an independently matchable unit there, so no
	// lone-surrogate guards apply.
	BMPOnly bool
}

const (
	highSurrogateStart = 0xd800
	highSurrogateEnd   = 0xdbff
	lowSurrogateStart  = 0xdc00
	lowSurrogateEnd    = 0xdfff
	astralStart        = 0x10000
)

// Pattern serializes the set to a pattern fragment matching exactly the
// code points in the set under the selected rendering.
func (u *Set) Pattern(opts RenderOptions) string {
	return string(u.AppendPattern(nil, opts))
}

// AppendPattern appends the serialized form of the set to dst.
//
// With UnicodeFlag or BMPOnly the result is a single character class.
// Otherwise astral code points are decomposed into surrogate-pair
// alternatives and surrogate code points in the set are guarded so they
// match only lone surrogates, mirroring Unicode-mode set semantics on a
// code-unit engine; a multi-piece result is wrapped in (?:...).
func (u *Set) AppendPattern(dst []byte, opts RenderOptions) []byte {
	if u.IsEmpty() {
		return append(dst, "[]"...)
	}
	if u.RangeCount() == 1 && u.RangeStart(0) == u.RangeEnd(0) {
		c := u.RangeStart(0)
		switch {
		case opts.UnicodeFlag || opts.BMPOnly:
			return AppendPatternRune(dst, c)
		case c < highSurrogateStart || (c > lowSurrogateEnd && c <= 0xffff):
			return AppendPatternRune(dst, c)
		case c >= astralStart:
			h, l := splitSurrogate(c)
			dst = AppendPatternRune(dst, h)
			return AppendPatternRune(dst, l)
		}
		// a lone surrogate needs the guarded rendering below
	}
	if opts.UnicodeFlag || opts.BMPOnly {
		return u.appendClass(dst)
	}

	bmp := u.Clone()
	bmp.RemoveRuneRange(highSurrogateStart, lowSurrogateEnd)
	bmp.RemoveRuneRange(astralStart, MaxValue)

	loneHigh := u.Clone()
	loneHigh.RetainAll(rangeSet(highSurrogateStart, highSurrogateEnd))
	loneLow := u.Clone()
	loneLow.RetainAll(rangeSet(lowSurrogateStart, lowSurrogateEnd))

	astral := u.Clone()
	astral.RemoveRuneRange(0, 0xffff)

	if astral.IsEmpty() && loneHigh.IsEmpty() && loneLow.IsEmpty() {
		return bmp.appendClass(dst)
	}

	var pieces [][]byte
	if !bmp.IsEmpty() {
		pieces = append(pieces, bmp.appendClass(nil))
	}
	for _, p := range surrogatePairs(astral) {
		frag := p.leads.appendClass(nil)
		frag = appendRangeClass(frag, p.trailLo, p.trailHi)
		pieces = append(pieces, frag)
	}
	if !loneHigh.IsEmpty() {
		frag := loneHigh.appendClass(nil)
		frag = append(frag, `(?![\uDC00-\uDFFF])`...)
		pieces = append(pieces, frag)
	}
	if !loneLow.IsEmpty() {
		frag := []byte(`(?:[^\uD800-\uDBFF]|^)`)
		frag = loneLow.appendClass(frag)
		pieces = append(pieces, frag)
	}

	if len(pieces) == 1 {
		return append(dst, pieces[0]...)
	}
	dst = append(dst, "(?:"...)
	for i, p := range pieces {
		if i > 0 {
			dst = append(dst, '|')
		}
		dst = append(dst, p...)
	}
	return append(dst, ')')
}

func rangeSet(lo, hi rune) *Set {
	s := New()
	s.AddRuneRange(lo, hi)
	return s
}

// pairRange is a set of lead surrogates sharing one trail range; the
// pair renders as [leads][trailLo-trailHi].
type pairRange struct {
	leads   *Set
	trailLo rune
	trailHi rune
}

// surrogatePairs decomposes astral ranges into lead/trail pieces,
// merging pieces that share the same trail range.
func surrogatePairs(astral *Set) []pairRange {
	var out []pairRange
	add := func(leadLo, leadHi, trailLo, trailHi rune) {
		for i := range out {
			if out[i].trailLo == trailLo && out[i].trailHi == trailHi {
				out[i].leads.AddRuneRange(leadLo, leadHi)
				return
			}
		}
		out = append(out, pairRange{rangeSet(leadLo, leadHi), trailLo, trailHi})
	}

	count := astral.RangeCount()
	for i := 0; i < count; i++ {
		lo, hi := astral.RangeStart(i), astral.RangeEnd(i)
		loH, loL := splitSurrogate(lo)
		hiH, hiL := splitSurrogate(hi)

		if loH == hiH {
			add(loH, loH, loL, hiL)
			continue
		}
		if loL > lowSurrogateStart {
			add(loH, loH, loL, lowSurrogateEnd)
			loH++
		}
		if hiL < lowSurrogateEnd {
			add(hiH, hiH, lowSurrogateStart, hiL)
			hiH--
		}
		if loH <= hiH {
			add(loH, hiH, lowSurrogateStart, lowSurrogateEnd)
		}
	}
	return out
}

func splitSurrogate(c rune) (rune, rune) {
	c -= astralStart
	return highSurrogateStart + (c >> 10), lowSurrogateStart + (c & 0x3ff)
}

func (u *Set) appendClass(dst []byte) []byte {
	dst = append(dst, '[')
	count := u.RangeCount()
	for i := 0; i < count; i++ {
		lo, hi := u.RangeStart(i), u.RangeEnd(i)
		switch {
		case lo == hi:
			dst = AppendClassRune(dst, lo)
		case lo+1 == hi:
			dst = AppendClassRune(dst, lo)
			dst = AppendClassRune(dst, hi)
		default:
			dst = AppendClassRune(dst, lo)
			dst = append(dst, '-')
			dst = AppendClassRune(dst, hi)
		}
	}
	return append(dst, ']')
}

func appendRangeClass(dst []byte, lo, hi rune) []byte {
	dst = append(dst, '[')
	dst = AppendClassRune(dst, lo)
	if lo != hi {
		if lo+1 != hi {
			dst = append(dst, '-')
		}
		dst = AppendClassRune(dst, hi)
	}
	return append(dst, ']')
}

// AppendClassRune appends one code point in character-class position.
func AppendClassRune(dst []byte, c rune) []byte {
	switch c {
	case 0:
		return append(dst, `\0`...)
	case '\t':
		return append(dst, `\t`...)
	case '\n':
		return append(dst, `\n`...)
	case '\f':
		return append(dst, `\f`...)
	case '\r':
		return append(dst, `\r`...)
	case '\\', ']', '^', '-':
		return append(dst, '\\', byte(c))
	}
	if c >= 0x20 && c <= 0x7e {
		return append(dst, byte(c))
	}
	return appendHexEscape(dst, c)
}

// AppendPatternRune appends one code point in top-level position.
func AppendPatternRune(dst []byte, c rune) []byte {
	switch c {
	case 0:
		return append(dst, `\0`...)
	case '\t':
		return append(dst, `\t`...)
	case '\n':
		return append(dst, `\n`...)
	case '\f':
		return append(dst, `\f`...)
	case '\r':
		return append(dst, `\r`...)
	case '\\', '^', '$', '.', '*', '+', '?', '(', ')', '[', ']', '{', '}', '|', '/':
		return append(dst, '\\', byte(c))
	}
	if c >= 0x20 && c <= 0x7e {
		return append(dst, byte(c))
	}
	return appendHexEscape(dst, c)
}

func appendHexEscape(dst []byte, c rune) []byte {
	hex := strings.ToUpper(strconv.FormatInt(int64(c), 16))
	switch {
	case c < 0x100:
		dst = append(dst, `\x`...)
		if len(hex) < 2 {
			dst = append(dst, '0')
		}
		return append(dst, hex...)
	case c <= 0xffff:
		dst = append(dst, `\u`...)
		for i := len(hex); i < 4; i++ {
			dst = append(dst, '0')
		}
		return append(dst, hex...)
	default:
		dst = append(dst, `\u{`...)
		dst = append(dst, hex...)
		return append(dst, '}')
	}
}
