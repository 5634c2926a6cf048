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

// Package uprops resolves Unicode property escapes to code-point sets.
// Property and value names are matched loosely (case, hyphens,
// underscores and whitespace are not significant) against the alias
// tables, and resolved sets are cached; callers always receive clones.
package uprops

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/regexpand/regexpand/go/regexpand/internal/uset"
)

// Canonical property names with per-value tables.
const (
	PropGeneralCategory  = "General_Category"
	PropScript           = "Script"
	PropScriptExtensions = "Script_Extensions"
)

var propertyAliases = map[string]string{
	"generalcategory":  PropGeneralCategory,
	"gc":               PropGeneralCategory,
	"script":           PropScript,
	"sc":               PropScript,
	"scriptextensions": PropScriptExtensions,
	"scx":              PropScriptExtensions,
}

// looseKey folds a property or value name for loose matching: ASCII
// case, hyphens, underscores and whitespace are not significant.
func looseKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '-' || c == '_' || c == ' ' || (c >= 0x09 && c <= 0x0d):
			continue
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + 'a' - 'A')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// NormalizeProperty maps a property-name alias to its canonical name.
func NormalizeProperty(name string) (string, error) {
	if canon, ok := propertyAliases[looseKey(name)]; ok {
		return canon, nil
	}
	return "", fmt.Errorf("unrecognized property name %q", name)
}

// NormalizeValue maps a value alias to its canonical value under the
// given canonical property name.
func NormalizeValue(property, value string) (string, error) {
	switch property {
	case PropGeneralCategory:
		if canon, ok := categoryAliases[looseKey(value)]; ok {
			return canon, nil
		}
	case PropScript, PropScriptExtensions:
		if canon, ok := scriptAliases[looseKey(value)]; ok {
			return canon, nil
		}
	}
	return "", fmt.Errorf("unrecognized value %q for property %q", value, property)
}

// NormalizeBinary maps a binary-property-name alias to its canonical
// name.
func NormalizeBinary(name string) (string, error) {
	if canon, ok := binaryAliases[looseKey(name)]; ok {
		return canon, nil
	}
	return "", fmt.Errorf("unrecognized property name %q", name)
}

var cache = struct {
	sync.Mutex
	sets map[string]*uset.Set
}{sets: make(map[string]*uset.Set)}

// lookup returns the cached set for a Property or Property/Value key,
// building it on first use. The returned set is shared; callers clone.
func lookup(key string, build func() *uset.Set) *uset.Set {
	cache.Lock()
	defer cache.Unlock()
	if s, ok := cache.sets[key]; ok {
		return s
	}
	s := build()
	cache.sets[key] = s
	return s
}

// Set returns a fresh code-point set for a canonical Property[/Value]
// pair. It fails when no table exists for the pair.
func Set(property, value string) (*uset.Set, error) {
	switch property {
	case PropGeneralCategory:
		build, ok := categoryBuilders(value)
		if !ok {
			return nil, fmt.Errorf("no code point table for value %q of property %q", value, property)
		}
		return lookup(property+"/"+value, build).Clone(), nil
	case PropScript:
		table, ok := unicode.Scripts[value]
		if !ok {
			return nil, fmt.Errorf("no code point table for value %q of property %q", value, property)
		}
		return lookup(property+"/"+value, func() *uset.Set { return setFromTable(table) }).Clone(), nil
	case PropScriptExtensions:
		// Script_Extensions has no per-value tables in this module.
		return nil, fmt.Errorf("no code point table for value %q of property %q", value, property)
	default:
		build, ok := binaryBuilders(property)
		if !ok {
			return nil, fmt.Errorf("no code point table for property %q", property)
		}
		return lookup(property, build).Clone(), nil
	}
}

// Resolve resolves the text of a property escape to a code-point set.
// A lone value is tried as a General_Category value first and as a
// binary property name second; a Name=Value pair is normalized and
// looked up. Negation complements against the full code-point range.
func Resolve(text string, negated bool) (*uset.Set, error) {
	var property, value string
	if name, val, ok := strings.Cut(text, "="); ok {
		canon, err := NormalizeProperty(name)
		if err != nil {
			return nil, err
		}
		property = canon
		value, err = NormalizeValue(canon, val)
		if err != nil {
			return nil, err
		}
	} else if canon, err := NormalizeValue(PropGeneralCategory, text); err == nil {
		property = PropGeneralCategory
		value = canon
	} else {
		property, err = NormalizeBinary(text)
		if err != nil {
			return nil, err
		}
	}

	set, err := Set(property, value)
	if err != nil {
		return nil, err
	}
	if negated {
		set.Complement()
	}
	return set, nil
}

func setFromTable(t *unicode.RangeTable) *uset.Set {
	s := uset.New()
	for _, r := range t.R16 {
		if r.Stride == 1 {
			s.AddRuneRange(rune(r.Lo), rune(r.Hi))
			continue
		}
		for c := rune(r.Lo); c <= rune(r.Hi); c += rune(r.Stride) {
			s.AddRune(c)
		}
	}
	for _, r := range t.R32 {
		if r.Stride == 1 {
			s.AddRuneRange(rune(r.Lo), rune(r.Hi))
			continue
		}
		for c := rune(r.Lo); c <= rune(r.Hi); c += rune(r.Stride) {
			s.AddRune(c)
		}
	}
	return s
}
