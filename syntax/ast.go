// Package syntax parses rematch patterns into an abstract syntax tree.
//
// The dialect is deliberately small: literal characters, implicit
// concatenation, alternation with '|', grouping with '(' and ')', and
// the postfix repetition operators '*', '+' and '?'. Precedence from
// loosest to tightest is alternation, concatenation, repetition.
// A backslash escapes the following character, making every operator
// expressible as a literal.
//
// Parsing never recovers partially: a malformed pattern yields a typed
// *Error carrying the error kind and the byte offset of the offending
// token.
package syntax

import (
	"fmt"
	"strings"
)

// Expr is a node in the parsed pattern tree.
//
// The variant set is closed: Literal, Concat, Alternate and Repeat are
// the only implementations. Grouping parentheses delimit subtrees but
// produce no node of their own. Consumers dispatch with a type switch.
type Expr interface {
	// String returns a parenthesized dump of the subtree, used in
	// tests and error messages.
	String() string

	isExpr()
}

// Literal matches exactly one character.
type Literal struct {
	Rune rune
}

// Concat matches its sub-expressions in order. An empty Concat matches
// the empty string; it is what the empty pattern and the empty group
// "()" parse to.
type Concat struct {
	Subs []Expr
}

// Alternate matches any one of its sub-expressions. Always has at
// least two branches; the parser rejects empty branches.
type Alternate struct {
	Subs []Expr
}

// RepeatKind identifies a postfix repetition operator.
type RepeatKind uint8

const (
	// ZeroOrMore is the '*' operator.
	ZeroOrMore RepeatKind = iota

	// OneOrMore is the '+' operator.
	OneOrMore

	// Optional is the '?' operator.
	Optional
)

// String returns the operator character for the repeat kind.
func (k RepeatKind) String() string {
	switch k {
	case ZeroOrMore:
		return "*"
	case OneOrMore:
		return "+"
	case Optional:
		return "?"
	default:
		return fmt.Sprintf("RepeatKind(%d)", k)
	}
}

// Repeat matches its sub-expression repeated according to Kind.
type Repeat struct {
	Sub  Expr
	Kind RepeatKind
}

func (*Literal) isExpr()   {}
func (*Concat) isExpr()    {}
func (*Alternate) isExpr() {}
func (*Repeat) isExpr()    {}

func (e *Literal) String() string {
	return fmt.Sprintf("lit(%q)", e.Rune)
}

func (e *Concat) String() string {
	if len(e.Subs) == 0 {
		return "empty"
	}
	return "cat(" + joinExprs(e.Subs) + ")"
}

func (e *Alternate) String() string {
	return "alt(" + joinExprs(e.Subs) + ")"
}

func (e *Repeat) String() string {
	return "rep" + e.Kind.String() + "(" + e.Sub.String() + ")"
}

func joinExprs(subs []Expr) string {
	var b strings.Builder
	for i, sub := range subs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sub.String())
	}
	return b.String()
}

// Nullable reports whether e can match the empty string. Literal
// extraction uses this to avoid building prefilters that would reject
// empty input a nullable pattern accepts.
func Nullable(e Expr) bool {
	switch e := e.(type) {
	case *Literal:
		return false
	case *Concat:
		for _, sub := range e.Subs {
			if !Nullable(sub) {
				return false
			}
		}
		return true
	case *Alternate:
		for _, sub := range e.Subs {
			if Nullable(sub) {
				return true
			}
		}
		return false
	case *Repeat:
		if e.Kind == OneOrMore {
			return Nullable(e.Sub)
		}
		return true
	default:
		return false
	}
}
