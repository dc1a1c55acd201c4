package meta

import (
	"bytes"
	"sync"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/rematch/literal"
	"github.com/coregx/rematch/nfa"
	"github.com/coregx/rematch/syntax"
)

// Engine is a compiled pattern bound to its validation strategy.
//
// An Engine is immutable after Compile and safe for concurrent use:
// the NFA is read-only and per-call simulation state comes from an
// internal runner pool.
type Engine struct {
	pattern  string
	strategy Strategy
	nfa      *nfa.NFA

	// runners pools per-goroutine simulation state for UseNFA.
	runners sync.Pool

	// lit is the single complete literal for UseLiteral.
	lit []byte

	// litSet is the complete literal set for UseLiteralSet.
	litSet map[string]struct{}

	// prefilter, when non-nil, holds required literals of the pattern:
	// an input containing none of them cannot match. Only set for
	// UseNFA.
	prefilter *ahocorasick.Automaton
}

// Compile compiles a pattern with the default configuration.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern into an Engine.
//
// The pattern is parsed once, lowered to an NFA once, and analyzed for
// literal shortcuts once; the resulting Engine validates any number of
// inputs.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	expr, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	compiled, err := nfa.NewCompiler(nfa.CompilerConfig{
		MaxStates:         config.MaxStates,
		MaxRecursionDepth: config.MaxRecursionDepth,
	}).Compile(expr)
	if err != nil {
		return nil, err
	}

	seq := literal.New(literal.ExtractorConfig{
		MaxLiterals: config.MaxLiterals,
	}).Extract(expr)

	e := &Engine{
		pattern:  pattern,
		strategy: selectStrategy(seq),
		nfa:      compiled,
	}
	e.runners.New = func() any {
		return nfa.NewRunner(compiled)
	}

	switch e.strategy {
	case UseLiteral:
		e.lit = seq.Get(0).Bytes
	case UseLiteralSet:
		e.litSet = make(map[string]struct{}, seq.Len())
		for i := 0; i < seq.Len(); i++ {
			e.litSet[string(seq.Get(i).Bytes)] = struct{}{}
		}
	case UseNFA:
		e.prefilter = buildPrefilter(seq, config)
	}
	return e, nil
}

// buildPrefilter builds the Aho-Corasick automaton over the required
// literals. Returns nil when the sequence is unusable or construction
// fails; the prefilter is an optimization, never a requirement.
func buildPrefilter(seq *literal.Seq, config Config) *ahocorasick.Automaton {
	if !config.EnablePrefilter || seq == nil || seq.IsEmpty() {
		return nil
	}
	if seq.MinLen() < config.MinLiteralLen {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return auto
}

// Validate reports whether input, as a whole string, is in the
// pattern's language. It never fails: any byte sequence is a valid
// input.
func (e *Engine) Validate(input []byte) bool {
	switch e.strategy {
	case UseLiteral:
		return bytes.Equal(input, e.lit)
	case UseLiteralSet:
		_, ok := e.litSet[string(input)]
		return ok
	default:
		if e.prefilter != nil && !e.prefilter.IsMatch(input) {
			// No required literal occurs anywhere in the input, so the
			// full simulation cannot succeed.
			return false
		}
		r := e.runners.Get().(*nfa.Runner)
		defer e.runners.Put(r)
		return r.Validate(input)
	}
}

// ValidateString is Validate for string input.
func (e *Engine) ValidateString(input string) bool {
	return e.Validate([]byte(input))
}

// Pattern returns the source pattern.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Strategy returns the selected validation strategy.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// StateCount returns the number of states in the compiled NFA.
func (e *Engine) StateCount() int {
	return e.nfa.States()
}

// HasPrefilter reports whether a literal quick-reject is in place.
func (e *Engine) HasPrefilter() bool {
	return e.prefilter != nil
}
