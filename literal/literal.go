// Package literal extracts literal strings from parsed patterns.
//
// A whole-string engine can exploit literals two ways. When a pattern
// is nothing but literals and alternation, the extracted set IS the
// language and matching reduces to set membership. Otherwise a set of
// required prefixes still gives a quick reject: an input containing
// none of them cannot match, so the automaton never has to run.
package literal

import "fmt"

// Literal is one literal byte sequence extracted from a pattern.
//
// Complete reports whether the literal is an entire member of the
// pattern's language, as opposed to a prefix of potential matches.
//
//   - Pattern "hello"    -> {hello, complete}
//   - Pattern "hello|hi" -> {hello, complete}, {hi, complete}
//   - Pattern "ab*"      -> {a, prefix}
type Literal struct {
	// Bytes is the literal byte sequence, UTF-8 encoded.
	Bytes []byte

	// Complete is true when Bytes is a whole language member.
	Complete bool
}

// NewLiteral creates a Literal.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the literal's length in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a debug representation of the literal.
func (l Literal) String() string {
	return fmt.Sprintf("literal{%s, complete=%v}", l.Bytes, l.Complete)
}
