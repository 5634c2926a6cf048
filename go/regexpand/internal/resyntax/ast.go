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

// Package resyntax parses ECMAScript-flavor regular expression source
// into a syntax tree and generates source back from a tree.
package resyntax

// NodeKind identifies the variant of a Node.
type NodeKind uint8

const (
	Empty NodeKind = iota
	Value
	Dot
	CharacterClass
	ClassRange
	ClassEscape
	PropertyEscape
	Alternative
	Disjunction
	Group
	Quantifier
	Anchor
	Reference
)

var nodeKindNames = [...]string{
	Empty:          "Empty",
	Value:          "Value",
	Dot:            "Dot",
	CharacterClass: "CharacterClass",
	ClassRange:     "ClassRange",
	ClassEscape:    "ClassEscape",
	PropertyEscape: "PropertyEscape",
	Alternative:    "Alternative",
	Disjunction:    "Disjunction",
	Group:          "Group",
	Quantifier:     "Quantifier",
	Anchor:         "Anchor",
	Reference:      "Reference",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Invalid"
}

type GroupKind uint8

const (
	GroupCapture GroupKind = iota
	GroupNonCapture
	GroupLookahead
	GroupNegLookahead
	GroupLookbehind
	GroupNegLookbehind
)

type AnchorKind uint8

const (
	AnchorStart AnchorKind = iota // ^
	AnchorEnd                     // $
	AnchorBoundary                // \b
	AnchorNotBoundary             // \B
)

// Node is one syntax-tree node. A single struct backs every kind;
// which fields are meaningful depends on Kind. Composite kinds own
// their children through Body, so overwriting a node's payload in
// place keeps the parent's reference valid.
type Node struct {
	Kind NodeKind

	// Value
	CodePoint rune

	// ClassEscape: one of d D s S w W
	Escape byte

	// PropertyEscape: raw text between the braces, e.g. "Script=Greek"
	Property string

	// Negated is set for \P{...} and for negative character classes.
	Negated bool

	// ClassRange bounds, inclusive.
	Lo, Hi rune

	// Group
	GroupKind GroupKind
	Name      string // named capture; also \k<Name> references

	// Quantifier; Max < 0 means unbounded.
	Min, Max int
	Greedy   bool

	AnchorKind AnchorKind

	// Reference index for numbered back-references.
	Index int

	Body []*Node
}

// ReplaceWith overwrites n's payload with r's, keeping n's address so
// every parent slot pointing at n stays valid.
func (n *Node) ReplaceWith(r *Node) {
	*n = *r
}
