package literal

import "strings"

// Seq is an ordered set of alternative literals extracted from one
// pattern. Duplicates are dropped on insertion; order is otherwise
// insertion order.
type Seq struct {
	lits []Literal
	seen map[string]bool
}

// NewSeq creates a Seq holding the given literals.
func NewSeq(lits ...Literal) *Seq {
	s := &Seq{seen: make(map[string]bool)}
	for _, l := range lits {
		s.Add(l)
	}
	return s
}

// Add appends a literal unless an equal byte sequence is already
// present. When the same bytes arrive both complete and incomplete,
// the incomplete version wins: the sequence must stay a sound
// description of the language.
func (s *Seq) Add(l Literal) {
	key := string(l.Bytes)
	if s.seen[key] {
		if !l.Complete {
			for i := range s.lits {
				if string(s.lits[i].Bytes) == key {
					s.lits[i].Complete = false
				}
			}
		}
		return
	}
	s.seen[key] = true
	s.lits = append(s.lits, l)
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	return len(s.lits)
}

// IsEmpty reports whether the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return len(s.lits) == 0
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) Literal {
	return s.lits[i]
}

// IsComplete reports whether every literal is complete, i.e. the
// sequence enumerates the pattern's language exactly.
func (s *Seq) IsComplete() bool {
	for _, l := range s.lits {
		if !l.Complete {
			return false
		}
	}
	return true
}

// MinLen returns the length in bytes of the shortest literal, or 0 for
// an empty sequence.
func (s *Seq) MinLen() int {
	if len(s.lits) == 0 {
		return 0
	}
	min := s.lits[0].Len()
	for _, l := range s.lits[1:] {
		if l.Len() < min {
			min = l.Len()
		}
	}
	return min
}

// MarkInexact clears the Complete flag on every literal.
func (s *Seq) MarkInexact() {
	for i := range s.lits {
		s.lits[i].Complete = false
	}
}

// String returns a debug representation of the sequence.
func (s *Seq) String() string {
	var b strings.Builder
	b.WriteString("seq[")
	for i, l := range s.lits {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(l.String())
	}
	b.WriteString("]")
	return b.String()
}
