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

package resyntax

import (
	"strconv"

	"github.com/regexpand/regexpand/go/regexpand/internal/uset"
)

// Generate renders a tree back to pattern source.
func Generate(n *Node) string {
	return string(appendNode(nil, n))
}

func appendNode(dst []byte, n *Node) []byte {
	switch n.Kind {
	case Empty:
		return dst
	case Value:
		return uset.AppendPatternRune(dst, n.CodePoint)
	case Dot:
		return append(dst, '.')
	case CharacterClass:
		dst = append(dst, '[')
		if n.Negated {
			dst = append(dst, '^')
		}
		for _, item := range n.Body {
			dst = appendClassItem(dst, item)
		}
		return append(dst, ']')
	case ClassEscape:
		return append(dst, '\\', n.Escape)
	case PropertyEscape:
		return appendPropertyEscape(dst, n)
	case Alternative:
		for _, c := range n.Body {
			dst = appendNode(dst, c)
		}
		return dst
	case Disjunction:
		for i, c := range n.Body {
			if i > 0 {
				dst = append(dst, '|')
			}
			dst = appendNode(dst, c)
		}
		return dst
	case Group:
		dst = append(dst, '(')
		switch n.GroupKind {
		case GroupNonCapture:
			dst = append(dst, "?:"...)
		case GroupLookahead:
			dst = append(dst, "?="...)
		case GroupNegLookahead:
			dst = append(dst, "?!"...)
		case GroupLookbehind:
			dst = append(dst, "?<="...)
		case GroupNegLookbehind:
			dst = append(dst, "?<!"...)
		case GroupCapture:
			if n.Name != "" {
				dst = append(dst, "?<"...)
				dst = append(dst, n.Name...)
				dst = append(dst, '>')
			}
		}
		for _, c := range n.Body {
			dst = appendNode(dst, c)
		}
		return append(dst, ')')
	case Quantifier:
		for _, c := range n.Body {
			dst = appendNode(dst, c)
		}
		dst = appendQuantifier(dst, n.Min, n.Max)
		if !n.Greedy {
			dst = append(dst, '?')
		}
		return dst
	case Anchor:
		switch n.AnchorKind {
		case AnchorStart:
			return append(dst, '^')
		case AnchorEnd:
			return append(dst, '$')
		case AnchorBoundary:
			return append(dst, `\b`...)
		default:
			return append(dst, `\B`...)
		}
	case Reference:
		if n.Name != "" {
			dst = append(dst, `\k<`...)
			dst = append(dst, n.Name...)
			return append(dst, '>')
		}
		dst = append(dst, '\\')
		return strconv.AppendInt(dst, int64(n.Index), 10)
	}
	// ClassRange is only valid inside a class body
	return appendClassItem(dst, n)
}

func appendClassItem(dst []byte, n *Node) []byte {
	switch n.Kind {
	case Value:
		return uset.AppendClassRune(dst, n.CodePoint)
	case ClassRange:
		dst = uset.AppendClassRune(dst, n.Lo)
		dst = append(dst, '-')
		return uset.AppendClassRune(dst, n.Hi)
	case ClassEscape:
		return append(dst, '\\', n.Escape)
	case PropertyEscape:
		return appendPropertyEscape(dst, n)
	}
	return dst
}

func appendPropertyEscape(dst []byte, n *Node) []byte {
	if n.Negated {
		dst = append(dst, `\P{`...)
	} else {
		dst = append(dst, `\p{`...)
	}
	dst = append(dst, n.Property...)
	return append(dst, '}')
}

func appendQuantifier(dst []byte, minVal, maxVal int) []byte {
	switch {
	case minVal == 0 && maxVal < 0:
		return append(dst, '*')
	case minVal == 1 && maxVal < 0:
		return append(dst, '+')
	case minVal == 0 && maxVal == 1:
		return append(dst, '?')
	case minVal == maxVal:
		dst = append(dst, '{')
		dst = strconv.AppendInt(dst, int64(minVal), 10)
		return append(dst, '}')
	case maxVal < 0:
		dst = append(dst, '{')
		dst = strconv.AppendInt(dst, int64(minVal), 10)
		return append(dst, ",}"...)
	default:
		dst = append(dst, '{')
		dst = strconv.AppendInt(dst, int64(minVal), 10)
		dst = append(dst, ',')
		dst = strconv.AppendInt(dst, int64(maxVal), 10)
		return append(dst, '}')
	}
}
