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

// Package ucase exposes simple (one-to-one) case folding for building
// case-insensitive code-point sets. Full (one-to-many) folding is out of
// scope: the target matching semantics canonicalize one code point at a
// time.
package ucase

import (
	"unicode"

	"github.com/regexpand/regexpand/go/regexpand/internal/uset"
)

// AddFolded adds c and every other member of its simple case-fold
// orbit to set. Orbits are not limited to pairs: k, K and U+212A
// KELVIN SIGN fold together, as do s, S and U+017F LATIN SMALL LETTER
// LONG S, so the whole orbit is walked rather than taking one
// SimpleFold step.
func AddFolded(set *uset.Set, c rune) {
	set.AddRune(c)
	for f := unicode.SimpleFold(c); f != c; f = unicode.SimpleFold(f) {
		set.AddRune(f)
	}
}

// AddFoldedRange adds [lo,hi] to set together with the fold orbit of
// every code point in the range. Folding is not contiguous, so orbits
// are walked one code point at a time; the range itself is added in
// one step.
func AddFoldedRange(set *uset.Set, lo, hi rune) {
	set.AddRuneRange(lo, hi)
	for c := lo; c <= hi; c++ {
		for f := unicode.SimpleFold(c); f != c; f = unicode.SimpleFold(f) {
			set.AddRune(f)
		}
	}
}
