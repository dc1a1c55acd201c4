package nfa

import (
	"errors"
	"fmt"
)

// Common NFA errors.
var (
	// ErrTooComplex indicates the pattern exceeded a compile-time
	// limit (state budget or recursion depth).
	ErrTooComplex = errors.New("pattern too complex")

	// ErrInvalidState indicates an invalid state ID was encountered
	// during construction.
	ErrInvalidState = errors.New("invalid NFA state")
)

// CompileError wraps a failure to compile an expression tree into an
// NFA.
type CompileError struct {
	Err error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("NFA compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BuildError reports an inconsistency detected by Builder.Build, such
// as an unpatched transition. It indicates a bug in the compiler rather
// than a user error.
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("NFA build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("NFA build error: %s", e.Message)
}
