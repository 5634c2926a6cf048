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

import "github.com/regexpand/regexpand/go/regexpand/internal/uset"

const bmpEnd = 0xffff

// Line terminators excluded by the wildcard outside dot-all mode.
var lineTerminators = [...]rune{0x000a, 0x000d, 0x2028, 0x2029}

// The four constant sets every rewrite draws from. Built once as
// package variables (dependency-ordered, so the escape tables may refer
// to them); never mutated afterwards. Handlers clone before set
// surgery.
var (
	universeFull = rangeSet(0, uset.MaxValue) // [0, 0x10FFFF]
	universeBMP  = rangeSet(0, bmpEnd)        // [0, 0xFFFF]
	dotFull      = withoutTerminators(universeFull)
	dotBMP       = withoutTerminators(universeBMP)
)

func rangeSet(lo, hi rune) *uset.Set {
	s := uset.New()
	s.AddRuneRange(lo, hi)
	return s
}

func withoutTerminators(u *uset.Set) *uset.Set {
	s := u.Clone()
	for _, t := range lineTerminators {
		s.RemoveRuneRange(t, t)
	}
	return s
}

// universe returns the domain negation is computed against in the
// active mode.
func universe(conf config) *uset.Set {
	if conf.unicode {
		return universeFull
	}
	return universeBMP
}

// dotSet returns the set a wildcard matches under conf.
func dotSet(conf config) *uset.Set {
	switch {
	case conf.dotAll && conf.unicode:
		return universeFull
	case conf.dotAll:
		return universeBMP
	case conf.unicode:
		return dotFull
	default:
		return dotBMP
	}
}
