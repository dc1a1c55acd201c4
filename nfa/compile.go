package nfa

import (
	"fmt"

	"github.com/coregx/rematch/syntax"
)

// CompilerConfig bounds NFA construction.
type CompilerConfig struct {
	// MaxStates caps the total number of NFA states. Construction is
	// linear in pattern length, so this is effectively a pattern size
	// limit. Zero means the default.
	MaxStates int

	// MaxRecursionDepth limits expression tree depth during
	// compilation to prevent stack overflow on deeply nested groups.
	// Zero means the default.
	MaxRecursionDepth int
}

// DefaultCompilerConfig returns the default construction limits.
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		MaxStates:         10000,
		MaxRecursionDepth: 100,
	}
}

// Compiler lowers a syntax.Expr into a Thompson NFA.
//
// Each expression node becomes a fragment: a start state plus a single
// exit state whose outgoing transition is dangling until the enclosing
// node patches it. Every node contributes a bounded number of states,
// which keeps the automaton linear in pattern length.
type Compiler struct {
	config  CompilerConfig
	builder *Builder
	depth   int
}

// NewCompiler creates a compiler with the given configuration.
func NewCompiler(config CompilerConfig) *Compiler {
	if config.MaxStates == 0 {
		config.MaxStates = DefaultCompilerConfig().MaxStates
	}
	if config.MaxRecursionDepth == 0 {
		config.MaxRecursionDepth = DefaultCompilerConfig().MaxRecursionDepth
	}
	return &Compiler{config: config}
}

// NewDefaultCompiler creates a compiler with default limits.
func NewDefaultCompiler() *Compiler {
	return NewCompiler(DefaultCompilerConfig())
}

// Compile builds the NFA for the given expression tree.
func (c *Compiler) Compile(expr syntax.Expr) (*NFA, error) {
	c.builder = NewBuilder()
	c.depth = 0

	start, end, err := c.compileExpr(expr)
	if err != nil {
		return nil, err
	}

	match := c.builder.AddMatch()
	if err := c.builder.Patch(end, match); err != nil {
		return nil, &CompileError{Err: err}
	}
	c.builder.SetStart(start)

	n, err := c.builder.Build()
	if err != nil {
		return nil, &CompileError{Err: err}
	}
	return n, nil
}

// compileExpr compiles one node and returns its fragment as (start,
// end). The end state is always a Rune or Epsilon state with a dangling
// next, so callers can Patch it unconditionally.
func (c *Compiler) compileExpr(expr syntax.Expr) (start, end StateID, err error) {
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > c.config.MaxRecursionDepth {
		return InvalidState, InvalidState, &CompileError{Err: ErrTooComplex}
	}
	if c.builder.Len() > c.config.MaxStates {
		return InvalidState, InvalidState, &CompileError{Err: ErrTooComplex}
	}

	switch e := expr.(type) {
	case *syntax.Literal:
		return c.compileLiteral(e)
	case *syntax.Concat:
		return c.compileConcat(e)
	case *syntax.Alternate:
		return c.compileAlternate(e)
	case *syntax.Repeat:
		return c.compileRepeat(e)
	default:
		return InvalidState, InvalidState, &CompileError{
			Err: fmt.Errorf("unsupported expression node %T", expr),
		}
	}
}

// compileLiteral builds a single rune-consuming state.
func (c *Compiler) compileLiteral(e *syntax.Literal) (start, end StateID, err error) {
	id := c.builder.AddRune(e.Rune, InvalidState)
	return id, id, nil
}

// compileEmpty builds a fragment matching the empty string.
func (c *Compiler) compileEmpty() (start, end StateID, err error) {
	id := c.builder.AddEpsilon(InvalidState)
	return id, id, nil
}

// compileConcat chains sub-fragments, patching each exit to the next
// fragment's start. The combined exit is the last fragment's.
func (c *Compiler) compileConcat(e *syntax.Concat) (start, end StateID, err error) {
	if len(e.Subs) == 0 {
		return c.compileEmpty()
	}

	start, end, err = c.compileExpr(e.Subs[0])
	if err != nil {
		return InvalidState, InvalidState, err
	}
	for _, sub := range e.Subs[1:] {
		s, e2, err := c.compileExpr(sub)
		if err != nil {
			return InvalidState, InvalidState, err
		}
		if err := c.builder.Patch(end, s); err != nil {
			return InvalidState, InvalidState, &CompileError{Err: err}
		}
		end = e2
	}
	return start, end, nil
}

// compileAlternate builds a chain of splits fanning out to the branch
// fragments and merges all branch exits into one shared epsilon join.
func (c *Compiler) compileAlternate(e *syntax.Alternate) (start, end StateID, err error) {
	if len(e.Subs) == 1 {
		return c.compileExpr(e.Subs[0])
	}

	join := c.builder.AddEpsilon(InvalidState)

	starts := make([]StateID, len(e.Subs))
	for i, sub := range e.Subs {
		s, exit, err := c.compileExpr(sub)
		if err != nil {
			return InvalidState, InvalidState, err
		}
		if err := c.builder.Patch(exit, join); err != nil {
			return InvalidState, InvalidState, &CompileError{Err: err}
		}
		starts[i] = s
	}

	// Fold right to left: split(s0, split(s1, ... split(sN-2, sN-1))).
	fan := starts[len(starts)-1]
	for i := len(starts) - 2; i >= 0; i-- {
		fan = c.builder.AddSplit(starts[i], fan)
	}
	return fan, join, nil
}

// compileRepeat builds the three repetition forms. Each adds one split
// and one epsilon exit around the sub-fragment.
func (c *Compiler) compileRepeat(e *syntax.Repeat) (start, end StateID, err error) {
	s, exit, err := c.compileExpr(e.Sub)
	if err != nil {
		return InvalidState, InvalidState, err
	}

	out := c.builder.AddEpsilon(InvalidState)

	switch e.Kind {
	case syntax.ZeroOrMore:
		// Enter the fragment or skip; the fragment exit loops back to
		// the same split.
		split := c.builder.AddSplit(s, out)
		if err := c.builder.Patch(exit, split); err != nil {
			return InvalidState, InvalidState, &CompileError{Err: err}
		}
		return split, out, nil

	case syntax.OneOrMore:
		// One pass is mandatory; afterwards loop back or leave.
		split := c.builder.AddSplit(s, out)
		if err := c.builder.Patch(exit, split); err != nil {
			return InvalidState, InvalidState, &CompileError{Err: err}
		}
		return s, out, nil

	case syntax.Optional:
		// Enter the fragment or skip; no loop back.
		split := c.builder.AddSplit(s, out)
		if err := c.builder.Patch(exit, out); err != nil {
			return InvalidState, InvalidState, &CompileError{Err: err}
		}
		return split, out, nil

	default:
		return InvalidState, InvalidState, &CompileError{
			Err: fmt.Errorf("unsupported repeat kind %v", e.Kind),
		}
	}
}
