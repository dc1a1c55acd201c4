package meta

import (
	"fmt"

	"github.com/coregx/rematch/literal"
)

// Strategy identifies how an Engine validates input.
type Strategy int

const (
	// UseNFA runs the active-set NFA simulation. The general strategy;
	// always correct, selected when no literal shortcut applies. May
	// be fronted by an Aho-Corasick quick-reject when the pattern has
	// required prefix literals.
	UseNFA Strategy = iota

	// UseLiteral compares the input against a single complete literal.
	// Selected for patterns that are one literal string, such as
	// "hello" or "a\*b".
	UseLiteral

	// UseLiteralSet checks the input for membership in a set of
	// complete literals. Selected for alternations of literal strings,
	// such as "foo|bar|baz".
	UseLiteralSet
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case UseNFA:
		return "NFA"
	case UseLiteral:
		return "Literal"
	case UseLiteralSet:
		return "LiteralSet"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// selectStrategy picks the strategy from the extracted literal
// sequence. seq may be nil.
func selectStrategy(seq *literal.Seq) Strategy {
	if seq == nil || seq.IsEmpty() || !seq.IsComplete() {
		return UseNFA
	}
	if seq.Len() == 1 {
		return UseLiteral
	}
	return UseLiteralSet
}
