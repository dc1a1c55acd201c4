package syntax

import (
	"errors"
	"fmt"
)

// Error kinds reported by Parse. Use errors.Is against these sentinels
// to classify a parse failure.
var (
	// ErrUnbalancedGroup indicates a '(' without a matching ')' or a
	// stray ')'.
	ErrUnbalancedGroup = errors.New("unbalanced group")

	// ErrDanglingOperator indicates a '*', '+' or '?' with no
	// preceding atom, or a trailing backslash with nothing to escape.
	ErrDanglingOperator = errors.New("dangling operator")

	// ErrEmptyAlternationBranch indicates a '|' with no atom on one of
	// its sides, as in "a||b", "(|a)" or a leading or trailing '|'.
	ErrEmptyAlternationBranch = errors.New("empty alternation branch")
)

// Error is a pattern syntax error with the byte offset of the token
// that triggered it.
type Error struct {
	Kind    error  // one of the sentinel kinds above
	Pattern string // the full pattern being parsed
	Pos     int    // byte offset into Pattern
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("syntax: %v at offset %d in %q", e.Kind, e.Pos, e.Pattern)
}

// Unwrap returns the error kind sentinel.
func (e *Error) Unwrap() error {
	return e.Kind
}
