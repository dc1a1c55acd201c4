// Package rematch validates whole strings against regular expression
// patterns.
//
// rematch answers one question: does this entire string belong to the
// language this pattern describes? There is no substring search, no
// capture groups, and no replacement - just compile once, validate many
// times:
//
//	re, err := rematch.Compile("(a|b)+c")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.Validate("abbac") // true
//	re.Validate("abba")  // false
//
// The dialect is literals (any Unicode code point), alternation '|',
// grouping '()', the postfix repetitions '*', '+' and '?', and
// backslash escapes for operator characters. Matching is implicitly
// anchored at both ends.
//
// Patterns compile to a Thompson NFA executed by active-set simulation,
// so validation runs in O(pattern size x input length) with no
// backtracking blowup on any pattern. Patterns that are pure literals
// or literal alternations skip the automaton entirely, and patterns
// with required literal prefixes get an Aho-Corasick quick-reject in
// front of the simulation.
//
// A compiled Regex is immutable and safe for concurrent use.
package rematch

import (
	"github.com/coregx/rematch/meta"
)

// Regex is a compiled pattern, ready to validate inputs. It is safe
// for concurrent use from multiple goroutines.
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Config controls compilation limits and optimizations. See
// meta.Config for the fields; most callers want DefaultConfig.
type Config = meta.Config

// DefaultConfig returns the default compilation configuration.
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// Compile compiles a pattern.
//
// Malformed patterns return a *syntax.Error identifying the kind of
// problem (unbalanced group, dangling operator, empty alternation
// branch) and its byte offset; oversized patterns return
// nfa.ErrTooComplex.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom limits.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// MustCompile compiles a pattern and panics if it fails. Use for
// patterns known to be valid at program start.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("rematch: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// Validate reports whether input, as a whole, is in the pattern's
// language. It never fails: any string, including the empty string and
// strings of characters absent from the pattern, is a valid input.
func (re *Regex) Validate(input string) bool {
	return re.engine.ValidateString(input)
}

// ValidateBytes is Validate for byte-slice input.
func (re *Regex) ValidateBytes(input []byte) bool {
	return re.engine.Validate(input)
}

// Pattern returns the source pattern.
func (re *Regex) Pattern() string {
	return re.pattern
}

// String returns the source pattern.
func (re *Regex) String() string {
	return re.pattern
}

// Strategy returns the name of the validation strategy the engine
// selected for this pattern, for diagnostics.
func (re *Regex) Strategy() string {
	return re.engine.Strategy().String()
}

// StateCount returns the number of states in the compiled automaton.
// It grows linearly with pattern length.
func (re *Regex) StateCount() int {
	return re.engine.StateCount()
}
