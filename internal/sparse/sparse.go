// Package sparse provides a sparse set of uint32 values with O(1)
// insert, membership, and clear.
//
// The set keeps a sparse array (value -> slot) and a dense array (the
// values themselves), so it can be cleared without zeroing memory and
// iterated in insertion order. This is the classic structure for NFA
// simulation, where each input position needs a fresh set of active
// state IDs bounded by the automaton size.
package sparse

// Set is a sparse set over the universe [0, capacity).
//
// Membership reads uninitialized sparse slots on purpose; the
// idx < size && dense[idx] == value check makes stale slots harmless.
type Set struct {
	sparse []uint32 // value -> index into dense
	dense  []uint32 // values, in insertion order
	size   uint32
}

// NewSet creates a set that can hold values in [0, capacity).
func NewSet(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. It reports whether the value was newly
// inserted (false means it was already present). Values outside the
// capacity are rejected with a panic via the slice bounds check.
func (s *Set) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
	return true
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear empties the set in O(1).
func (s *Set) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Len returns the number of values in the set.
func (s *Set) Len() int {
	return int(s.size)
}

// IsEmpty reports whether the set has no values.
func (s *Set) IsEmpty() bool {
	return s.size == 0
}

// Values returns the values in insertion order. The slice aliases the
// set's storage and is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense[:s.size]
}
