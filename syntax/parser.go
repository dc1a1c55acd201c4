package syntax

import "unicode/utf8"

// Parse parses a pattern into its expression tree.
//
// The grammar, loosest binding first:
//
//	alternate = concat { '|' concat }
//	concat    = { repeat }
//	repeat    = atom { '*' | '+' | '?' }
//	atom      = literal | '\' char | '(' alternate ')'
//
// The empty pattern parses to an empty Concat, denoting the language
// containing only the empty string. Malformed patterns return a typed
// *Error; there is no partial recovery.
func Parse(pattern string) (Expr, error) {
	p := &parser{pattern: pattern}
	e, err := p.parseAlternate()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.pattern) {
		// parseAlternate only stops early on ')'.
		return nil, p.errorAt(ErrUnbalancedGroup, p.pos)
	}
	return e, nil
}

// parser is a recursive-descent parser over the pattern bytes. Operator
// characters are all ASCII, so byte-level dispatch is UTF-8 safe;
// literals are decoded as runes.
type parser struct {
	pattern string
	pos     int // byte offset of the next unconsumed character
}

func (p *parser) errorAt(kind error, pos int) error {
	return &Error{Kind: kind, Pattern: p.pattern, Pos: pos}
}

// at reports whether the next byte is c.
func (p *parser) at(c byte) bool {
	return p.pos < len(p.pattern) && p.pattern[p.pos] == c
}

func (p *parser) parseAlternate() (Expr, error) {
	start := p.pos
	first, hadTerm, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	if !p.at('|') {
		return first, nil
	}
	// Once a '|' appears, every branch must contain at least one atom.
	// Rejecting empty branches keeps "a||b" unambiguous instead of
	// silently introducing an empty-string alternative.
	if !hadTerm {
		return nil, p.errorAt(ErrEmptyAlternationBranch, start)
	}
	subs := []Expr{first}
	for p.at('|') {
		p.pos++
		branchStart := p.pos
		sub, hadTerm, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		if !hadTerm {
			return nil, p.errorAt(ErrEmptyAlternationBranch, branchStart)
		}
		subs = append(subs, sub)
	}
	return &Alternate{Subs: subs}, nil
}

// parseConcat parses a run of adjacent terms. hadTerm distinguishes a
// genuinely empty run (used for empty-branch detection) from a single
// term that happens to match the empty string, such as a "()" group.
func (p *parser) parseConcat() (e Expr, hadTerm bool, err error) {
	var subs []Expr
	for p.pos < len(p.pattern) {
		if c := p.pattern[p.pos]; c == '|' || c == ')' {
			break
		}
		term, err := p.parseRepeat()
		if err != nil {
			return nil, false, err
		}
		subs = append(subs, term)
	}
	switch len(subs) {
	case 0:
		return &Concat{}, false, nil
	case 1:
		return subs[0], true, nil
	default:
		return &Concat{Subs: subs}, true, nil
	}
}

// parseRepeat parses an atom followed by any number of postfix
// repetition operators. Stacked operators nest left to right, so "a*?"
// is (a*)?.
func (p *parser) parseRepeat() (Expr, error) {
	e, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.pos < len(p.pattern) {
		var kind RepeatKind
		switch p.pattern[p.pos] {
		case '*':
			kind = ZeroOrMore
		case '+':
			kind = OneOrMore
		case '?':
			kind = Optional
		default:
			return e, nil
		}
		e = &Repeat{Sub: e, Kind: kind}
		p.pos++
	}
	return e, nil
}

func (p *parser) parseAtom() (Expr, error) {
	switch c := p.pattern[p.pos]; c {
	case '(':
		open := p.pos
		p.pos++
		e, err := p.parseAlternate()
		if err != nil {
			return nil, err
		}
		if !p.at(')') {
			return nil, p.errorAt(ErrUnbalancedGroup, open)
		}
		p.pos++
		return e, nil
	case '*', '+', '?':
		return nil, p.errorAt(ErrDanglingOperator, p.pos)
	case '\\':
		if p.pos+1 >= len(p.pattern) {
			return nil, p.errorAt(ErrDanglingOperator, p.pos)
		}
		p.pos++
		r, w := utf8.DecodeRuneInString(p.pattern[p.pos:])
		p.pos += w
		return &Literal{Rune: r}, nil
	default:
		r, w := utf8.DecodeRuneInString(p.pattern[p.pos:])
		p.pos += w
		return &Literal{Rune: r}, nil
	}
}
