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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// the wildcard without Unicode semantics: every BMP unit except the
	// four line terminators
	dotDefault = `[\0-\t\x0B\f\x0E-\u2027\u202A-\uFFFF]`

	// the Unicode-mode wildcard and its dot-all variant, decomposed
	// into surrogate-pair alternatives with lone-surrogate guards
	dotUnicode = `(?:[\0-\t\x0B\f\x0E-\u2027\u202A-\uD7FF\uE000-\uFFFF]` +
		`|[\uD800-\uDBFF][\uDC00-\uDFFF]` +
		`|[\uD800-\uDBFF](?![\uDC00-\uDFFF])` +
		`|(?:[^\uD800-\uDBFF]|^)[\uDC00-\uDFFF])`
	anyUnicode = `(?:[\0-\uD7FF\uE000-\uFFFF]` +
		`|[\uD800-\uDBFF][\uDC00-\uDFFF]` +
		`|[\uD800-\uDBFF](?![\uDC00-\uDFFF])` +
		`|(?:[^\uD800-\uDBFF]|^)[\uDC00-\uDFFF])`
)

func TestRewriteDot(t *testing.T) {
	cases := []struct {
		pattern, flags string
		opts           Options
		want           string
	}{
		{`.`, ``, Options{}, dotDefault},
		{`foo.bar`, ``, Options{}, `foo` + dotDefault + `bar`},
		{`.`, `u`, Options{}, dotUnicode},
		{`.`, `s`, Options{DotAllFlag: true}, `[\0-\uFFFF]`},
		{`.`, `su`, Options{DotAllFlag: true}, anyUnicode},
		// without the option the s flag changes nothing
		{`.`, `s`, Options{}, dotDefault},
		{`.`, `u`, Options{UseUnicodeFlag: true}, `[\0-\t\x0B\f\x0E-\u2027\u202A-\u{10FFFF}]`},
		{`.`, `su`, Options{DotAllFlag: true, UseUnicodeFlag: true}, `[\0-\u{10FFFF}]`},
	}
	for _, tc := range cases {
		got, err := RewritePattern(tc.pattern, tc.flags, tc.opts)
		require.NoError(t, err, "%q %q", tc.pattern, tc.flags)
		assert.Equal(t, tc.want, got, "%q %q", tc.pattern, tc.flags)
	}
}

func TestRewriteClassEscapes(t *testing.T) {
	cases := []struct {
		pattern, flags, want string
	}{
		{`\d`, ``, `[0-9]`},
		{`\d`, `u`, `[0-9]`},
		{`[\d]`, ``, `[0-9]`},
		{`\D`, ``, `[\0-/:-\uFFFF]`},
		{`\w`, ``, `[0-9A-Z_a-z]`},
		{`[\d\w]`, ``, `[0-9A-Z_a-z]`},
		{`\w`, `iu`, `[0-9A-Z_a-z\u017F\u212A]`},
		{`\s`, ``, `[\t-\r \xA0\u1680\u2000-\u200A\u2028\u2029\u202F\u205F\u3000\uFEFF]`},
	}
	for _, tc := range cases {
		got, err := RewritePattern(tc.pattern, tc.flags, Options{})
		require.NoError(t, err, "%q %q", tc.pattern, tc.flags)
		assert.Equal(t, tc.want, got, "%q %q", tc.pattern, tc.flags)
	}
}

func TestRewriteCaseFolding(t *testing.T) {
	cases := []struct {
		pattern, flags, want string
	}{
		// the i flag survives in the output, so only Unicode mode needs
		// explicit fold orbits
		{`A`, `i`, `A`},
		{`A`, `iu`, `[Aa]`},
		// three-member orbits must surface whole no matter which member
		// the pattern names: U+212A KELVIN SIGN and U+017F LONG S are
		// invisible to non-Unicode case canonicalization
		{`k`, `iu`, `[Kk\u212A]`},
		{`K`, `iu`, `[Kk\u212A]`},
		{`s`, `iu`, `[Ss\u017F]`},
		{`S`, `iu`, `[Ss\u017F]`},
		{"\u017F", `iu`, `[Ss\u017F]`},
		{"\u212A", `iu`, `[Kk\u212A]`},
		{`[a-z]`, `iu`, `[A-Za-z\u017F\u212A]`},
		{`[A-Z]`, `iu`, `[A-Za-z\u017F\u212A]`},
		// no partner, no class
		{`_`, `iu`, `_`},
	}
	for _, tc := range cases {
		got, err := RewritePattern(tc.pattern, tc.flags, Options{})
		require.NoError(t, err, "%q %q", tc.pattern, tc.flags)
		assert.Equal(t, tc.want, got, "%q %q", tc.pattern, tc.flags)
	}

	// with the u output flag the engine folds natively
	got, err := RewritePattern(`A`, `iu`, Options{UseUnicodeFlag: true})
	require.NoError(t, err)
	assert.Equal(t, `A`, got)
}

func TestRewriteNegatedClass(t *testing.T) {
	got, err := RewritePattern(`[^a]`, ``, Options{})
	require.NoError(t, err)
	assert.Equal(t, `[\0-`+"`"+`b-\uFFFF]`, got)

	got, err = RewritePattern(`[^a]`, `u`, Options{})
	require.NoError(t, err)
	want := `(?:[\0-` + "`" + `b-\uD7FF\uE000-\uFFFF]` +
		`|[\uD800-\uDBFF][\uDC00-\uDFFF]` +
		`|[\uD800-\uDBFF](?![\uDC00-\uDFFF])` +
		`|(?:[^\uD800-\uDBFF]|^)[\uDC00-\uDFFF])`
	assert.Equal(t, want, got)

	got, err = RewritePattern(`[^a]`, `u`, Options{UseUnicodeFlag: true})
	require.NoError(t, err)
	assert.Equal(t, `[\0-`+"`"+`b-\u{10FFFF}]`, got)

	// negation complements the accumulated union once, not per item
	got, err = RewritePattern(`[^\d\w]`, ``, Options{})
	require.NoError(t, err)
	assert.Equal(t, `[\0-/:-@[-\^`+"`"+`{-\uFFFF]`, got)
}

func TestRewriteEmptyClass(t *testing.T) {
	got, err := RewritePattern(`[]`, ``, Options{})
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)

	got, err = RewritePattern(`[^]`, ``, Options{})
	require.NoError(t, err)
	assert.Equal(t, `[\0-\uFFFF]`, got)

	got, err = RewritePattern(`[^]`, `u`, Options{UseUnicodeFlag: true})
	require.NoError(t, err)
	assert.Equal(t, `[\0-\u{10FFFF}]`, got)
}

func TestRewriteAstralLiteral(t *testing.T) {
	// a literal astral value becomes a surrogate pair; wrapping keeps
	// it atomic under quantifiers
	got, err := RewritePattern("\U0001F600", `u`, Options{})
	require.NoError(t, err)
	assert.Equal(t, `(?:\uD83D\uDE00)`, got)

	got, err = RewritePattern("\U0001F600+", `u`, Options{})
	require.NoError(t, err)
	assert.Equal(t, `(?:\uD83D\uDE00)+`, got)

	got, err = RewritePattern("\U0001F600", `u`, Options{UseUnicodeFlag: true})
	require.NoError(t, err)
	assert.Equal(t, `\u{1F600}`, got)

	// an astral range decomposes into lead and trail classes
	got, err = RewritePattern(`[\u{1F600}-\u{1F64F}]`, `u`, Options{})
	require.NoError(t, err)
	assert.Equal(t, `(?:[\uD83D][\uDE00-\uDE4F])`, got)
}

func TestRewritePropertyEscape(t *testing.T) {
	opts := Options{UnicodePropertyEscape: true}

	got, err := RewritePattern(`\p{Nd}`, `u`, opts)
	require.NoError(t, err)
	assert.Contains(t, got, `0-9`)
	assert.Contains(t, got, `\u0660`) // ARABIC-INDIC digits

	got, err = RewritePattern(`\p{Script=Greek}`, `u`, opts)
	require.NoError(t, err)
	assert.Contains(t, got, `\u0370`)

	got, err = RewritePattern(`\p{Letter}`, `u`, Options{UnicodePropertyEscape: true, UseUnicodeFlag: true})
	require.NoError(t, err)
	assert.Contains(t, got, `A-Z`)
	assert.Contains(t, got, `a-z`)
	assert.Contains(t, got, `\u{`) // astral letters in one class

	// negated form complements against the full range
	got, err = RewritePattern(`\P{Any}`, `u`, opts)
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)

	// inside a class the resolved set joins the union
	got, err = RewritePattern(`[\p{Lu}0-9]`, `u`, opts)
	require.NoError(t, err)
	assert.Contains(t, got, `0-9A-Z`)
}

func TestRewritePropertyEscapeErrors(t *testing.T) {
	opts := Options{UnicodePropertyEscape: true}

	_, err := RewritePattern(`\p{Martian}`, `u`, opts)
	assert.ErrorContains(t, err, "unrecognized property name")

	_, err = RewritePattern(`\p{Script=Martian}`, `u`, opts)
	assert.ErrorContains(t, err, "unrecognized value")

	_, err = RewritePattern(`\p{Script_Extensions=Greek}`, `u`, opts)
	assert.ErrorContains(t, err, "no code point table")

	// feature off: \p is a plain identity escape
	got, err := RewritePattern(`\p`, ``, Options{})
	require.NoError(t, err)
	assert.Equal(t, `p`, got)
}

func TestRewriteLeavesStructureAlone(t *testing.T) {
	cases := []struct {
		pattern, flags, want string
	}{
		{`^foo$`, ``, `^foo$`},
		{`\ba\B`, ``, `\ba\B`},
		{`(a)\1`, ``, `(a)\1`},
		{`(?<y>a)\k<y>`, ``, `(?<y>a)\k<y>`},
		{`(?:a|b)+?`, ``, `(?:a|b)+?`},
		{`(?=a)(?!b)(?<=c)(?<!d)`, ``, `(?=a)(?!b)(?<=c)(?<!d)`},
		{`a{2,3}`, `u`, `a{2,3}`},
	}
	for _, tc := range cases {
		got, err := RewritePattern(tc.pattern, tc.flags, Options{})
		require.NoError(t, err, "%q", tc.pattern)
		assert.Equal(t, tc.want, got, "%q", tc.pattern)
	}
}

func TestRewriteParseErrors(t *testing.T) {
	for _, pattern := range []string{`(`, `[a`, `*`, `a{3,1}`} {
		_, err := RewritePattern(pattern, ``, Options{})
		assert.ErrorContains(t, err, "invalid pattern at position", "pattern %q", pattern)
	}

	_, err := RewritePattern(`\q`, `u`, Options{})
	assert.ErrorContains(t, err, "invalid identity escape")
}

// the output of a rewrite is a fixpoint: rewriting it again under the
// same options changes nothing
func TestRewriteIdempotent(t *testing.T) {
	cases := []struct {
		pattern, flags string
		opts           Options
	}{
		{`.`, ``, Options{}},
		{`\d\w\s`, ``, Options{}},
		{`[^a-z]`, ``, Options{}},
		{`[^a]`, `u`, Options{UseUnicodeFlag: true}},
		{`foo.bar|baz`, ``, Options{}},
	}
	for _, tc := range cases {
		once, err := RewritePattern(tc.pattern, tc.flags, tc.opts)
		require.NoError(t, err)
		twice, err := RewritePattern(once, tc.flags, tc.opts)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "pattern %q", tc.pattern)
	}
}
