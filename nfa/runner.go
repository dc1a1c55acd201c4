package nfa

import (
	"unicode/utf8"

	"github.com/coregx/rematch/internal/conv"
	"github.com/coregx/rematch/internal/sparse"
)

// Runner simulates an NFA against one input at a time, deciding
// whole-string membership.
//
// It maintains the epsilon-closed set of active states and advances it
// rune by rune, so the work per input rune is bounded by the automaton
// size and no path is ever re-explored. This is what makes matching
// polynomial regardless of how repetition operators nest.
//
// The NFA reference is immutable; all mutable simulation state lives in
// the Runner. A Runner is NOT safe for concurrent use - give each
// goroutine its own Runner over the shared NFA.
type Runner struct {
	nfa *NFA

	// Generation sets, reused across Validate calls. current holds the
	// epsilon-closed active set; next receives the states reachable on
	// the rune being consumed.
	current *sparse.Set
	next    *sparse.Set

	// stack drives the loop-based epsilon closure: split right
	// branches are pushed while the left chain is followed inline.
	stack []StateID
}

// NewRunner creates a Runner for the given NFA. All per-simulation
// storage is allocated here, sized by the automaton, so Validate itself
// does not allocate.
func NewRunner(n *NFA) *Runner {
	capacity := conv.IntToUint32(n.States())
	return &Runner{
		nfa:     n,
		current: sparse.NewSet(capacity),
		next:    sparse.NewSet(capacity),
		stack:   make([]StateID, 0, n.States()),
	}
}

// Validate reports whether input, taken as a whole, is in the NFA's
// language. Matching is anchored at both ends; there is no substring
// search.
func (r *Runner) Validate(input []byte) bool {
	r.current.Clear()
	r.addClosure(r.current, r.nfa.Start())

	for i := 0; i < len(input); {
		c, width := utf8.DecodeRune(input[i:])
		i += width

		r.next.Clear()
		for _, sid := range r.current.Values() {
			s := &r.nfa.states[sid]
			if s.kind == StateRune && s.r == c {
				r.addClosure(r.next, s.next)
			}
		}
		r.current, r.next = r.next, r.current

		// Nothing is live, so no suffix can rescue the match.
		if r.current.IsEmpty() {
			return false
		}
	}

	for _, sid := range r.current.Values() {
		if r.nfa.states[sid].kind == StateMatch {
			return true
		}
	}
	return false
}

// ValidateString is Validate for string input.
func (r *Runner) ValidateString(input string) bool {
	return r.Validate([]byte(input))
}

// addClosure inserts id and everything reachable from it through Split
// and Epsilon states into set. The set doubles as the visited tracker:
// an Insert that reports false means the state was already expanded, so
// loops like (a*)* terminate.
//
// The closure is loop-based rather than recursive: linear Epsilon
// chains are followed inline and only split right branches go on the
// stack.
func (r *Runner) addClosure(set *sparse.Set, id StateID) {
	r.stack = r.stack[:0]
	sid := id

	for {
		if set.Insert(uint32(sid)) {
			switch s := &r.nfa.states[sid]; s.kind {
			case StateEpsilon:
				sid = s.next
				continue
			case StateSplit:
				r.stack = append(r.stack, s.right)
				sid = s.left
				continue
			}
			// Rune and Match states end this path.
		}

		if len(r.stack) == 0 {
			return
		}
		sid = r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
	}
}
