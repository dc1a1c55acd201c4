// Package meta implements the engine orchestrator that picks a
// validation strategy for each compiled pattern.
//
// Three strategies exist, chosen at compile time from literal
// extraction:
//   - a single complete literal validates by string equality;
//   - an alternation of complete literals validates by set membership;
//   - everything else runs the NFA active-set simulation, optionally
//     behind an Aho-Corasick quick-reject built from required prefix
//     literals.
//
// The meta engine is the package the public API wraps; callers never
// touch the underlying automata directly.
package meta

// Config controls compilation limits and strategy selection.
type Config struct {
	// MaxStates caps the NFA state count. Patterns exceeding it fail
	// to compile with nfa.ErrTooComplex. Default: 10000.
	MaxStates int

	// MaxRecursionDepth limits expression nesting during NFA
	// construction. Default: 100.
	MaxRecursionDepth int

	// EnablePrefilter enables the Aho-Corasick quick-reject for
	// patterns with extractable required literals. Disabling it never
	// changes results, only the work done to produce them.
	// Default: true.
	EnablePrefilter bool

	// MinLiteralLen is the minimum byte length of extracted literals
	// for the prefilter to be worth building. Default: 1.
	MinLiteralLen int

	// MaxLiterals caps literal extraction. Default: 64.
	MaxLiterals int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		MaxStates:         10000,
		MaxRecursionDepth: 100,
		EnablePrefilter:   true,
		MinLiteralLen:     1,
		MaxLiterals:       64,
	}
}
