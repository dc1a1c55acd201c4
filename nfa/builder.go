package nfa

import "github.com/coregx/rematch/internal/conv"

// Builder constructs NFAs incrementally. The Compiler drives it, adding
// states with dangling transitions (InvalidState targets) and patching
// them as fragments are wired together.
type Builder struct {
	states []State
	start  StateID
}

// NewBuilder creates a builder with a small default capacity.
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a builder with the given initial state
// capacity.
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states: make([]State, 0, capacity),
		start:  InvalidState,
	}
}

func (b *Builder) nextID() StateID {
	return StateID(conv.IntToUint32(len(b.states)))
}

// AddMatch adds the accepting state and returns its ID.
func (b *Builder) AddMatch() StateID {
	id := b.nextID()
	b.states = append(b.states, State{
		id:   id,
		kind: StateMatch,
	})
	return id
}

// AddRune adds a state that consumes the rune r and moves to next.
// Pass InvalidState as next to patch the target later.
func (b *Builder) AddRune(r rune, next StateID) StateID {
	id := b.nextID()
	b.states = append(b.states, State{
		id:   id,
		kind: StateRune,
		r:    r,
		next: next,
	})
	return id
}

// AddSplit adds a state that forks to left and right without consuming
// input.
func (b *Builder) AddSplit(left, right StateID) StateID {
	id := b.nextID()
	b.states = append(b.states, State{
		id:    id,
		kind:  StateSplit,
		left:  left,
		right: right,
	})
	return id
}

// AddEpsilon adds a state that forwards to next without consuming
// input. Pass InvalidState as next to patch the target later.
func (b *Builder) AddEpsilon(next StateID) StateID {
	id := b.nextID()
	b.states = append(b.states, State{
		id:   id,
		kind: StateEpsilon,
		next: next,
	})
	return id
}

// Patch sets the dangling next transition of a Rune or Epsilon state.
// It fails if the state does not exist, is of another kind, or was
// already patched.
func (b *Builder) Patch(id, target StateID) error {
	if id == InvalidState || int(id) >= len(b.states) {
		return &BuildError{Message: "patch of nonexistent state", StateID: id}
	}
	s := &b.states[id]
	switch s.kind {
	case StateRune, StateEpsilon:
		if s.next != InvalidState {
			return &BuildError{Message: "state already patched", StateID: id}
		}
		s.next = target
		return nil
	default:
		return &BuildError{Message: "patch of " + s.kind.String() + " state", StateID: id}
	}
}

// SetStart designates the start state.
func (b *Builder) SetStart(id StateID) {
	b.start = id
}

// Len returns the number of states added so far.
func (b *Builder) Len() int {
	return len(b.states)
}

// Build finalizes the NFA. It verifies that a start state was set and
// that no transition is left dangling, so a built NFA can be simulated
// without per-step validity checks.
func (b *Builder) Build() (*NFA, error) {
	if b.start == InvalidState || int(b.start) >= len(b.states) {
		return nil, &BuildError{Message: "start state not set", StateID: InvalidState}
	}
	bound := StateID(conv.IntToUint32(len(b.states)))
	for i := range b.states {
		s := &b.states[i]
		switch s.kind {
		case StateRune, StateEpsilon:
			if s.next >= bound {
				return nil, &BuildError{Message: "dangling transition", StateID: s.id}
			}
		case StateSplit:
			if s.left >= bound || s.right >= bound {
				return nil, &BuildError{Message: "dangling split branch", StateID: s.id}
			}
		}
	}
	states := make([]State, len(b.states))
	copy(states, b.states)
	return &NFA{states: states, start: b.start}, nil
}
