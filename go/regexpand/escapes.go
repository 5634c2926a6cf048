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

package regexpand

import (
	"fmt"

	"github.com/regexpand/regexpand/go/regexpand/internal/uset"
)

// The three escape-set regimes. The ASCII tables complement against the
// BMP, the Unicode tables against the full range. The case-insensitive
// Unicode regime differs only for \w and \W: the word set gains the two
// code points whose simple fold lands inside it (U+017F LATIN SMALL
// LETTER LONG S and U+212A KELVIN SIGN).
var escapeSetsASCII, escapeSetsUnicode, escapeSetsUnicodeFold = buildEscapeSets()

// whiteSpace holds the WhiteSpace and LineTerminator productions.
var whiteSpace = [][2]rune{
	{0x0009, 0x000d}, {0x0020, 0x0020}, {0x00a0, 0x00a0},
	{0x1680, 0x1680}, {0x2000, 0x200a}, {0x2028, 0x2029},
	{0x202f, 0x202f}, {0x205f, 0x205f}, {0x3000, 0x3000},
	{0xfeff, 0xfeff},
}

func buildEscapeSets() (ascii, unicode, unicodeFold map[byte]*uset.Set) {
	digit := uset.New()
	digit.AddRuneRange('0', '9')

	space := uset.New()
	for _, r := range whiteSpace {
		space.AddRuneRange(r[0], r[1])
	}

	word := uset.New()
	word.AddRuneRange('0', '9')
	word.AddRuneRange('A', 'Z')
	word.AddRuneRange('a', 'z')
	word.AddRune('_')

	wordFold := word.Clone()
	wordFold.AddRune(0x17f)
	wordFold.AddRune(0x212a)

	negate := func(s *uset.Set, u *uset.Set) *uset.Set {
		n := u.Clone()
		n.RemoveAll(s)
		return n
	}

	ascii = map[byte]*uset.Set{
		'd': digit, 'D': negate(digit, universeBMP),
		's': space, 'S': negate(space, universeBMP),
		'w': word, 'W': negate(word, universeBMP),
	}
	unicode = map[byte]*uset.Set{
		'd': digit, 'D': negate(digit, universeFull),
		's': space, 'S': negate(space, universeFull),
		'w': word, 'W': negate(word, universeFull),
	}
	unicodeFold = map[byte]*uset.Set{
		'd': digit, 'D': negate(digit, universeFull),
		's': space, 'S': negate(space, universeFull),
		'w': wordFold, 'W': negate(wordFold, universeFull),
	}
	return ascii, unicode, unicodeFold
}

// escapeSet resolves a single-letter class escape under the active
// regime. The returned set is shared table data; callers that mutate
// must clone first.
func escapeSet(letter byte, conf config) (*uset.Set, error) {
	var table map[byte]*uset.Set
	switch {
	case !conf.unicode:
		table = escapeSetsASCII
	case conf.ignoreCase:
		table = escapeSetsUnicodeFold
	default:
		table = escapeSetsUnicode
	}
	set, ok := table[letter]
	if !ok {
		return nil, fmt.Errorf("unknown character class escape \\%c", letter)
	}
	return set, nil
}
