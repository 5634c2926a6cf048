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

import "fmt"

// Flags holds the pattern flags that change how source text parses.
type Flags struct {
	// Unicode enables \u{...} escapes, surrogate-pair combining and the
	// stricter escape rules of Unicode mode. Outside Unicode mode the
	// pattern is parsed over UTF-16 code units: a literal astral
	// character becomes its two surrogate halves.
	Unicode bool
}

// Features toggles syntax extensions.
type Features struct {
	// UnicodePropertyEscape enables \p{...} and \P{...}. When off, \p
	// parses as the identity escape for the letter p.
	UnicodePropertyEscape bool
}

type parser struct {
	src   []rune
	pos   int
	flags Flags
	feat  Features
}

// Parse parses pattern source into a tree.
func Parse(pattern string, flags Flags, feat Features) (*Node, error) {
	src := []rune(pattern)
	if !flags.Unicode {
		src = splitAstral(src)
	}
	p := &parser{src: src, flags: flags, feat: feat}
	n, err := p.parseDisjunction()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.src) {
		return nil, p.errorf("unmatched ')'")
	}
	return n, nil
}

// splitAstral rewrites astral code points as surrogate halves for
// code-unit parsing.
func splitAstral(src []rune) []rune {
	out := make([]rune, 0, len(src))
	for _, c := range src {
		if c > 0xffff {
			c -= 0x10000
			out = append(out, 0xd800+(c>>10), 0xdc00+(c&0x3ff))
		} else {
			out = append(out, c)
		}
	}
	return out
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("invalid pattern at position %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) cur() rune {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return -1
}

func (p *parser) lookahead(k int) rune {
	if p.pos+k < len(p.src) {
		return p.src[p.pos+k]
	}
	return -1
}

func (p *parser) parseDisjunction() (*Node, error) {
	alt, err := p.parseAlternative()
	if err != nil {
		return nil, err
	}
	if p.cur() != '|' {
		return alt, nil
	}
	alts := []*Node{alt}
	for p.cur() == '|' {
		p.pos++
		alt, err = p.parseAlternative()
		if err != nil {
			return nil, err
		}
		alts = append(alts, alt)
	}
	return &Node{Kind: Disjunction, Body: alts}, nil
}

func (p *parser) parseAlternative() (*Node, error) {
	var terms []*Node
	for {
		c := p.cur()
		if c < 0 || c == '|' || c == ')' {
			break
		}
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	switch len(terms) {
	case 0:
		return &Node{Kind: Empty}, nil
	case 1:
		return terms[0], nil
	}
	return &Node{Kind: Alternative, Body: terms}, nil
}

func (p *parser) parseTerm() (*Node, error) {
	switch p.cur() {
	case '^':
		p.pos++
		return p.anchorTerm(AnchorStart)
	case '$':
		p.pos++
		return p.anchorTerm(AnchorEnd)
	case '\\':
		switch p.lookahead(1) {
		case 'b':
			p.pos += 2
			return p.anchorTerm(AnchorBoundary)
		case 'B':
			p.pos += 2
			return p.anchorTerm(AnchorNotBoundary)
		}
	}

	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	q, ok, err := p.tryQuantifier()
	if err != nil {
		return nil, err
	}
	if ok {
		q.Body = []*Node{atom}
		return q, nil
	}
	return atom, nil
}

// anchorTerm finishes an assertion term. Outside Unicode mode a
// quantifier may follow an assertion (Annex B); in Unicode mode it is
// rejected by the next term's atom parse.
func (p *parser) anchorTerm(kind AnchorKind) (*Node, error) {
	n := &Node{Kind: Anchor, AnchorKind: kind}
	if p.flags.Unicode {
		return n, nil
	}
	q, ok, err := p.tryQuantifier()
	if err != nil {
		return nil, err
	}
	if ok {
		q.Body = []*Node{n}
		return q, nil
	}
	return n, nil
}

func (p *parser) parseAtom() (*Node, error) {
	c := p.cur()
	switch c {
	case '.':
		p.pos++
		return &Node{Kind: Dot}, nil
	case '(':
		return p.parseGroup()
	case '[':
		return p.parseClass()
	case '\\':
		return p.parseAtomEscape()
	case '*', '+', '?':
		return nil, p.errorf("nothing to repeat")
	}
	p.pos++
	return &Node{Kind: Value, CodePoint: c}, nil
}

func (p *parser) parseGroup() (*Node, error) {
	p.pos++ // (
	g := &Node{Kind: Group, GroupKind: GroupCapture}
	if p.cur() == '?' {
		switch p.lookahead(1) {
		case ':':
			g.GroupKind = GroupNonCapture
			p.pos += 2
		case '=':
			g.GroupKind = GroupLookahead
			p.pos += 2
		case '!':
			g.GroupKind = GroupNegLookahead
			p.pos += 2
		case '<':
			switch p.lookahead(2) {
			case '=':
				g.GroupKind = GroupLookbehind
				p.pos += 3
			case '!':
				g.GroupKind = GroupNegLookbehind
				p.pos += 3
			default:
				p.pos += 2
				name, err := p.parseGroupName()
				if err != nil {
					return nil, err
				}
				g.Name = name
			}
		default:
			return nil, p.errorf("invalid group")
		}
	}
	body, err := p.parseDisjunction()
	if err != nil {
		return nil, err
	}
	if p.cur() != ')' {
		return nil, p.errorf("unterminated group")
	}
	p.pos++
	g.Body = []*Node{body}
	return g, nil
}

func (p *parser) parseGroupName() (string, error) {
	start := p.pos
	for {
		c := p.cur()
		if c < 0 {
			return "", p.errorf("unterminated group name")
		}
		if c == '>' {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("empty group name")
	}
	name := string(p.src[start:p.pos])
	p.pos++ // >
	return name, nil
}

func (p *parser) parseClass() (*Node, error) {
	p.pos++ // [
	node := &Node{Kind: CharacterClass}
	if p.cur() == '^' {
		node.Negated = true
		p.pos++
	}
	for {
		c := p.cur()
		if c < 0 {
			return nil, p.errorf("unterminated character class")
		}
		if c == ']' {
			p.pos++
			return node, nil
		}
		item, err := p.parseClassAtom()
		if err != nil {
			return nil, err
		}
		if p.cur() != '-' || p.lookahead(1) < 0 || p.lookahead(1) == ']' {
			node.Body = append(node.Body, item)
			continue
		}
		p.pos++ // -
		hi, err := p.parseClassAtom()
		if err != nil {
			return nil, err
		}
		if item.Kind == Value && hi.Kind == Value {
			if item.CodePoint > hi.CodePoint {
				return nil, p.errorf("range out of order in character class")
			}
			node.Body = append(node.Body, &Node{Kind: ClassRange, Lo: item.CodePoint, Hi: hi.CodePoint})
			continue
		}
		if p.flags.Unicode {
			return nil, p.errorf("invalid character class range")
		}
		// set-valued bound: the dash is a literal member
		node.Body = append(node.Body, item, &Node{Kind: Value, CodePoint: '-'}, hi)
	}
}

func (p *parser) parseClassAtom() (*Node, error) {
	c := p.cur()
	if c == '\\' {
		return p.parseClassEscape()
	}
	p.pos++
	return &Node{Kind: Value, CodePoint: c}, nil
}

func (p *parser) parseClassEscape() (*Node, error) {
	p.pos++ // backslash
	c := p.cur()
	if c < 0 {
		return nil, p.errorf("trailing backslash")
	}
	p.pos++
	switch c {
	case 'b':
		return &Node{Kind: Value, CodePoint: 0x08}, nil
	case 'd', 'D', 's', 'S', 'w', 'W':
		return &Node{Kind: ClassEscape, Escape: byte(c)}, nil
	case 'p', 'P':
		if p.feat.UnicodePropertyEscape {
			return p.parsePropertyEscape(c == 'P')
		}
		return &Node{Kind: Value, CodePoint: c}, nil
	}
	return p.parseCharEscape(c)
}

func (p *parser) parseAtomEscape() (*Node, error) {
	p.pos++ // backslash
	c := p.cur()
	if c < 0 {
		return nil, p.errorf("trailing backslash")
	}
	if c >= '1' && c <= '9' {
		idx := 0
		for p.cur() >= '0' && p.cur() <= '9' {
			idx = idx*10 + int(p.cur()-'0')
			p.pos++
		}
		return &Node{Kind: Reference, Index: idx}, nil
	}
	p.pos++
	switch c {
	case 'd', 'D', 's', 'S', 'w', 'W':
		return &Node{Kind: ClassEscape, Escape: byte(c)}, nil
	case 'p', 'P':
		if p.feat.UnicodePropertyEscape {
			return p.parsePropertyEscape(c == 'P')
		}
		return &Node{Kind: Value, CodePoint: c}, nil
	case 'k':
		if p.cur() == '<' {
			p.pos++
			name, err := p.parseGroupName()
			if err != nil {
				return nil, err
			}
			return &Node{Kind: Reference, Name: name}, nil
		}
		if p.flags.Unicode {
			return nil, p.errorf("invalid escape \\k")
		}
		return &Node{Kind: Value, CodePoint: 'k'}, nil
	}
	return p.parseCharEscape(c)
}

// parseCharEscape handles the escapes shared between class and atom
// position. The introducing character c has been consumed.
func (p *parser) parseCharEscape(c rune) (*Node, error) {
	switch c {
	case 't':
		return &Node{Kind: Value, CodePoint: '\t'}, nil
	case 'n':
		return &Node{Kind: Value, CodePoint: '\n'}, nil
	case 'v':
		return &Node{Kind: Value, CodePoint: 0x0b}, nil
	case 'f':
		return &Node{Kind: Value, CodePoint: '\f'}, nil
	case 'r':
		return &Node{Kind: Value, CodePoint: '\r'}, nil
	case '0':
		return &Node{Kind: Value, CodePoint: 0}, nil
	case 'c':
		n := p.cur()
		if (n >= 'A' && n <= 'Z') || (n >= 'a' && n <= 'z') {
			p.pos++
			return &Node{Kind: Value, CodePoint: n % 32}, nil
		}
		return nil, p.errorf("invalid control escape")
	case 'x':
		if v, ok := p.hexDigits(2); ok {
			return &Node{Kind: Value, CodePoint: v}, nil
		}
		if p.flags.Unicode {
			return nil, p.errorf("invalid hexadecimal escape")
		}
		return &Node{Kind: Value, CodePoint: 'x'}, nil
	case 'u':
		return p.parseUnicodeEscape()
	}
	if p.flags.Unicode && !isSyntaxChar(c) && c != '/' && c != '-' {
		return nil, p.errorf("invalid identity escape \\%c", c)
	}
	return &Node{Kind: Value, CodePoint: c}, nil
}

func (p *parser) parseUnicodeEscape() (*Node, error) {
	if p.flags.Unicode && p.cur() == '{' {
		p.pos++
		v := rune(0)
		n := 0
		for {
			d, ok := hexVal(p.cur())
			if !ok {
				break
			}
			v = v*16 + d
			if v > 0x10ffff {
				return nil, p.errorf("code point out of range")
			}
			p.pos++
			n++
		}
		if n == 0 || p.cur() != '}' {
			return nil, p.errorf("invalid unicode escape")
		}
		p.pos++
		return &Node{Kind: Value, CodePoint: v}, nil
	}

	v, ok := p.hexDigits(4)
	if !ok {
		if p.flags.Unicode {
			return nil, p.errorf("invalid unicode escape")
		}
		return &Node{Kind: Value, CodePoint: 'u'}, nil
	}
	if p.flags.Unicode && v >= 0xd800 && v <= 0xdbff && p.cur() == '\\' && p.lookahead(1) == 'u' {
		save := p.pos
		p.pos += 2
		if lo, ok := p.hexDigits(4); ok && lo >= 0xdc00 && lo <= 0xdfff {
			return &Node{Kind: Value, CodePoint: 0x10000 + (v-0xd800)<<10 + (lo - 0xdc00)}, nil
		}
		p.pos = save
	}
	return &Node{Kind: Value, CodePoint: v}, nil
}

func (p *parser) parsePropertyEscape(negated bool) (*Node, error) {
	if p.cur() != '{' {
		return nil, p.errorf("expected '{' after property escape")
	}
	p.pos++
	start := p.pos
	for p.cur() != '}' {
		if p.cur() < 0 {
			return nil, p.errorf("unterminated property escape")
		}
		p.pos++
	}
	if p.pos == start {
		return nil, p.errorf("empty property escape")
	}
	text := string(p.src[start:p.pos])
	p.pos++ // }
	return &Node{Kind: PropertyEscape, Property: text, Negated: negated}, nil
}

func (p *parser) tryQuantifier() (*Node, bool, error) {
	q := &Node{Kind: Quantifier, Greedy: true}
	switch p.cur() {
	case '*':
		q.Min, q.Max = 0, -1
		p.pos++
	case '+':
		q.Min, q.Max = 1, -1
		p.pos++
	case '?':
		q.Min, q.Max = 0, 1
		p.pos++
	case '{':
		save := p.pos
		p.pos++
		minVal, ok := p.decimal()
		if !ok {
			p.pos = save
			return nil, false, nil
		}
		maxVal := minVal
		if p.cur() == ',' {
			p.pos++
			if p.cur() == '}' {
				maxVal = -1
			} else if maxVal, ok = p.decimal(); !ok {
				p.pos = save
				return nil, false, nil
			}
		}
		if p.cur() != '}' {
			p.pos = save
			return nil, false, nil
		}
		p.pos++
		if maxVal >= 0 && minVal > maxVal {
			return nil, false, p.errorf("numbers out of order in {} quantifier")
		}
		q.Min, q.Max = minVal, maxVal
	default:
		return nil, false, nil
	}
	if p.cur() == '?' {
		q.Greedy = false
		p.pos++
	}
	return q, true, nil
}

func (p *parser) decimal() (int, bool) {
	start := p.pos
	v := 0
	for p.cur() >= '0' && p.cur() <= '9' {
		v = v*10 + int(p.cur()-'0')
		p.pos++
	}
	return v, p.pos > start
}

func (p *parser) hexDigits(n int) (rune, bool) {
	save := p.pos
	v := rune(0)
	for i := 0; i < n; i++ {
		d, ok := hexVal(p.cur())
		if !ok {
			p.pos = save
			return 0, false
		}
		v = v*16 + d
		p.pos++
	}
	return v, true
}

func hexVal(c rune) (rune, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func isSyntaxChar(c rune) bool {
	switch c {
	case '^', '$', '\\', '.', '*', '+', '?', '(', ')', '[', ']', '{', '}', '|':
		return true
	}
	return false
}
