// Package nfa compiles parsed patterns into Thompson NFAs and runs
// them with an active-set simulation.
//
// States live in a flat arena indexed by StateID, not as individually
// allocated nodes, so a compiled NFA is cheap to share: it is immutable
// after construction and safe for concurrent readers. Each Runner holds
// the per-simulation mutable state.
package nfa

import (
	"fmt"
	"strings"
)

// StateID uniquely identifies an NFA state within its arena.
type StateID uint32

// InvalidState marks an unpatched transition during construction. A
// built NFA contains no InvalidState targets.
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the type of an NFA state.
type StateKind uint8

const (
	// StateMatch is the accepting state. Reaching it with the whole
	// input consumed means the input is in the pattern's language.
	StateMatch StateKind = iota

	// StateRune consumes exactly one input rune equal to its rune.
	StateRune

	// StateSplit forks without consuming input. It encodes alternation
	// and repetition.
	StateSplit

	// StateEpsilon forwards to one state without consuming input. It
	// joins fragment exits during construction.
	StateEpsilon
)

// String returns a human-readable name for the state kind.
func (k StateKind) String() string {
	switch k {
	case StateMatch:
		return "Match"
	case StateRune:
		return "Rune"
	case StateSplit:
		return "Split"
	case StateEpsilon:
		return "Epsilon"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// State is a single NFA state. Which fields are meaningful depends on
// the kind: Rune and Epsilon states use next, Split states use left and
// right, Match states use nothing.
type State struct {
	id   StateID
	kind StateKind

	r    rune    // rune to consume, for Rune states
	next StateID // target, for Rune and Epsilon states

	left, right StateID // fork targets, for Split states
}

// ID returns the state's identifier.
func (s *State) ID() StateID {
	return s.id
}

// Kind returns the state's kind.
func (s *State) Kind() StateKind {
	return s.kind
}

// IsMatch reports whether this is the accepting state.
func (s *State) IsMatch() bool {
	return s.kind == StateMatch
}

// Rune returns the rune and target for Rune states.
// Returns (0, InvalidState) for other kinds.
func (s *State) Rune() (r rune, next StateID) {
	if s.kind == StateRune {
		return s.r, s.next
	}
	return 0, InvalidState
}

// Epsilon returns the target for Epsilon states.
// Returns InvalidState for other kinds.
func (s *State) Epsilon() StateID {
	if s.kind == StateEpsilon {
		return s.next
	}
	return InvalidState
}

// Split returns the two fork targets for Split states.
// Returns (InvalidState, InvalidState) for other kinds.
func (s *State) Split() (left, right StateID) {
	if s.kind == StateSplit {
		return s.left, s.right
	}
	return InvalidState, InvalidState
}

// String returns a human-readable representation of the state.
func (s *State) String() string {
	switch s.kind {
	case StateMatch:
		return fmt.Sprintf("State(%d, Match)", s.id)
	case StateRune:
		return fmt.Sprintf("State(%d, Rune %q -> %d)", s.id, s.r, s.next)
	case StateSplit:
		return fmt.Sprintf("State(%d, Split -> [%d, %d])", s.id, s.left, s.right)
	case StateEpsilon:
		return fmt.Sprintf("State(%d, Epsilon -> %d)", s.id, s.next)
	default:
		return fmt.Sprintf("State(%d, Unknown)", s.id)
	}
}

// NFA is a compiled Thompson NFA. It is immutable and may be shared by
// any number of concurrent Runners.
type NFA struct {
	states []State
	start  StateID
}

// Start returns the start state ID.
func (n *NFA) Start() StateID {
	return n.start
}

// State returns the state with the given ID, or nil if the ID is
// invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// IsMatch reports whether the given state is the accepting state.
func (n *NFA) IsMatch(id StateID) bool {
	if s := n.State(id); s != nil {
		return s.IsMatch()
	}
	return false
}

// States returns the number of states in the NFA.
func (n *NFA) States() int {
	return len(n.states)
}

// String returns a multi-line dump of all states, for debugging.
func (n *NFA) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "NFA(start=%d, states=%d)\n", n.start, len(n.states))
	for i := range n.states {
		b.WriteString("  " + n.states[i].String() + "\n")
	}
	return b.String()
}
