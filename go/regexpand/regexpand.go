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

// Package regexpand lowers regular expressions that rely on
// Unicode-dependent matching semantics into equivalent patterns built
// only from explicit code-point classes, so they can run on engines or
// modes without native support. The transform is pure: pattern text in,
// pattern text out, identical match behavior.
package regexpand

import (
	"strings"

	"github.com/regexpand/regexpand/go/regexpand/internal/resyntax"
)

// Options selects the syntax features the rewrite recognizes and the
// syntax the output may use.
type Options struct {
	// UnicodePropertyEscape enables \p{...} and \P{...} in the input.
	UnicodePropertyEscape bool

	// DotAllFlag honors an s flag for dot-all wildcard matching.
	// Without it, dot always excludes line terminators.
	DotAllFlag bool

	// UseUnicodeFlag declares that the output runs with the u flag, so
	// serialized sets may use astral-safe syntax and case-insensitive
	// matching needs no explicit fold expansion.
	UseUnicodeFlag bool
}

// RewritePattern rewrites pattern under the given flag string. Flags
// consumed: i (case-insensitive), u (Unicode mode), and s (dot-all,
// only when Options.DotAllFlag is set). Errors abort the rewrite; there
// is no partial output.
func RewritePattern(pattern, flags string, opts Options) (string, error) {
	conf := config{
		ignoreCase:  strings.ContainsRune(flags, 'i'),
		unicode:     strings.ContainsRune(flags, 'u'),
		dotAll:      opts.DotAllFlag && strings.ContainsRune(flags, 's'),
		unicodeFlag: opts.UseUnicodeFlag,
	}
	tree, err := resyntax.Parse(pattern,
		resyntax.Flags{Unicode: conf.unicode},
		resyntax.Features{UnicodePropertyEscape: opts.UnicodePropertyEscape})
	if err != nil {
		return "", err
	}
	if err := rewriteNode(tree, conf); err != nil {
		return "", err
	}
	return resyntax.Generate(tree), nil
}
