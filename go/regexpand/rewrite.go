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
	"errors"
	"fmt"

	"github.com/regexpand/regexpand/go/regexpand/internal/resyntax"
	"github.com/regexpand/regexpand/go/regexpand/internal/ucase"
	"github.com/regexpand/regexpand/go/regexpand/internal/uprops"
	"github.com/regexpand/regexpand/go/regexpand/internal/uset"
)

// ErrUnknownNode reports a node kind the engine does not model. It is
// an internal invariant failure, not a malformed-input error: a
// conforming parse can never produce it.
var ErrUnknownNode = errors.New("unknown syntax tree node kind")

// config is derived once per call and threaded through every recursive
// step, so concurrent rewrites with different flags never observe each
// other's state.
type config struct {
	ignoreCase  bool
	unicode     bool
	dotAll      bool
	unicodeFlag bool // target rendering may use Unicode-flag syntax
}

// foldCase reports whether sets must be expanded to their simple
// case-fold closure explicitly, because the target rendering cannot
// express Unicode-aware case-insensitive matching natively.
func (c config) foldCase() bool {
	return c.ignoreCase && c.unicode && !c.unicodeFlag
}

func (c config) render() uset.RenderOptions {
	return uset.RenderOptions{
		UnicodeFlag: c.unicode && c.unicodeFlag,
		BMPOnly:     !c.unicode,
	}
}

func (c config) targetFlags() resyntax.Flags {
	return resyntax.Flags{Unicode: c.unicode && c.unicodeFlag}
}

// rewriteNode replaces Unicode-dependent nodes with explicit code-point
// classes, depth first. Children are rewritten before a composite
// node's own text is regenerated; nodes unaffected by Unicode matching
// mode are left alone.
func rewriteNode(n *resyntax.Node, conf config) error {
	switch n.Kind {
	case resyntax.Dot:
		return spliceSet(n, dotSet(conf), conf)

	case resyntax.CharacterClass:
		return rewriteClass(n, conf)

	case resyntax.PropertyEscape:
		set, err := uprops.Resolve(n.Property, n.Negated)
		if err != nil {
			return err
		}
		return spliceSet(n, set, conf)

	case resyntax.ClassEscape:
		// a lone escape used outside a class
		set, err := escapeSet(n.Escape, conf)
		if err != nil {
			return err
		}
		return spliceSet(n, set, conf)

	case resyntax.Value:
		set := uset.New()
		if conf.foldCase() {
			ucase.AddFolded(set, n.CodePoint)
		} else {
			set.AddRune(n.CodePoint)
		}
		return spliceSet(n, set, conf)

	case resyntax.Alternative, resyntax.Disjunction, resyntax.Group, resyntax.Quantifier:
		for _, child := range n.Body {
			if err := rewriteNode(child, conf); err != nil {
				return err
			}
		}
		return nil

	case resyntax.Anchor, resyntax.Empty, resyntax.Reference:
		// position and back-reference constructs are unaffected by
		// Unicode matching mode
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUnknownNode, n.Kind)
}

// rewriteClass lowers a character class to an explicit set. Items
// accumulate first; negation is absorbed by complementing the union
// once at the end, never per item.
func rewriteClass(n *resyntax.Node, conf config) error {
	set := uset.New()
	for _, item := range n.Body {
		switch item.Kind {
		case resyntax.Value:
			if conf.foldCase() {
				ucase.AddFolded(set, item.CodePoint)
			} else {
				set.AddRune(item.CodePoint)
			}
		case resyntax.ClassRange:
			if conf.foldCase() {
				ucase.AddFoldedRange(set, item.Lo, item.Hi)
			} else {
				set.AddRuneRange(item.Lo, item.Hi)
			}
		case resyntax.ClassEscape:
			// folding is baked into the case-insensitive table already
			es, err := escapeSet(item.Escape, conf)
			if err != nil {
				return err
			}
			set.AddAll(es)
		case resyntax.PropertyEscape:
			ps, err := uprops.Resolve(item.Property, item.Negated)
			if err != nil {
				return err
			}
			set.AddAll(ps)
		default:
			return fmt.Errorf("%w: %v in character class", ErrUnknownNode, item.Kind)
		}
	}
	if n.Negated {
		comp := universe(conf).Clone()
		comp.RemoveAll(set)
		set = comp
	}
	return spliceSet(n, set, conf)
}

// spliceSet serializes set and re-embeds it where n stands. The
// fragment is re-parsed under the target flags; kinds that bind as a
// single atom embed directly, anything else is wrapped in a
// non-capturing group so the node keeps its precedence relative to its
// siblings.
func spliceSet(n *resyntax.Node, set *uset.Set, conf config) error {
	frag := set.Pattern(conf.render())
	tree, err := resyntax.Parse(frag, conf.targetFlags(), resyntax.Features{})
	if err != nil {
		return fmt.Errorf("internal error reparsing fragment %q: %w", frag, err)
	}
	switch tree.Kind {
	case resyntax.CharacterClass, resyntax.Group, resyntax.Value:
		n.ReplaceWith(tree)
	default:
		n.ReplaceWith(&resyntax.Node{
			Kind:      resyntax.Group,
			GroupKind: resyntax.GroupNonCapture,
			Body:      []*resyntax.Node{tree},
		})
	}
	return nil
}
