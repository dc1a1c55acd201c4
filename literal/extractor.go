package literal

import "github.com/coregx/rematch/syntax"

// ExtractorConfig bounds extraction so pathological patterns cannot
// blow up the literal set.
type ExtractorConfig struct {
	// MaxLiterals caps the number of extracted literals. Alternation
	// cross products grow multiplicatively; extraction gives up rather
	// than exceed this. Default: 64.
	MaxLiterals int

	// MaxLiteralLen caps the byte length of each literal. Longer
	// literals are truncated and marked incomplete. Default: 64.
	MaxLiteralLen int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
	}
}

// Extractor extracts required prefix literals from an expression tree.
type Extractor struct {
	config ExtractorConfig
}

// New creates an Extractor. Zero config fields take their defaults.
func New(config ExtractorConfig) *Extractor {
	if config.MaxLiterals == 0 {
		config.MaxLiterals = DefaultConfig().MaxLiterals
	}
	if config.MaxLiteralLen == 0 {
		config.MaxLiteralLen = DefaultConfig().MaxLiteralLen
	}
	return &Extractor{config: config}
}

// Extract returns a sequence of literals with the guarantee that every
// string in the pattern's language starts with one of them. If the
// sequence IsComplete, it enumerates the language exactly.
//
// Returns nil when no sound sequence exists: the pattern can match the
// empty string, begins with something unextractable (such as a '*'
// repetition), or the configured limits were exceeded.
func (x *Extractor) Extract(e syntax.Expr) *Seq {
	if syntax.Nullable(e) {
		// The empty string is in the language and contains no literal;
		// any non-empty literal set would wrongly reject it.
		return nil
	}
	seq, ok := x.prefixes(e)
	if !ok || seq.IsEmpty() {
		return nil
	}
	return seq
}

// prefixes computes the prefix literal sequence of one node. ok=false
// means no sound sequence exists for this subtree.
func (x *Extractor) prefixes(e syntax.Expr) (*Seq, bool) {
	switch e := e.(type) {
	case *syntax.Literal:
		return NewSeq(NewLiteral([]byte(string(e.Rune)), true)), true

	case *syntax.Concat:
		if len(e.Subs) == 0 {
			return nil, false
		}
		// Seed with the empty complete literal and extend through the
		// subs for as long as the sequence stays complete. The first
		// unextractable or incomplete sub freezes it as inexact.
		seq := NewSeq(NewLiteral(nil, true))
		for _, sub := range e.Subs {
			if !seq.IsComplete() {
				break
			}
			subSeq, ok := x.prefixes(sub)
			if !ok {
				seq.MarkInexact()
				break
			}
			seq, ok = x.cross(seq, subSeq)
			if !ok {
				return nil, false
			}
		}
		return x.stripEmpty(seq)

	case *syntax.Alternate:
		seq := NewSeq()
		for _, sub := range e.Subs {
			subSeq, ok := x.prefixes(sub)
			if !ok {
				// One opaque branch poisons the whole set: a match
				// through it need not contain any extracted literal.
				return nil, false
			}
			for i := 0; i < subSeq.Len(); i++ {
				seq.Add(subSeq.Get(i))
			}
			if seq.Len() > x.config.MaxLiterals {
				return nil, false
			}
		}
		return seq, true

	case *syntax.Repeat:
		if e.Kind != syntax.OneOrMore {
			// '*' and '?' can match empty and contribute no required
			// prefix.
			return nil, false
		}
		subSeq, ok := x.prefixes(e.Sub)
		if !ok {
			return nil, false
		}
		// The first mandatory pass supplies the prefix; further
		// repetitions may follow, so nothing here is complete.
		subSeq.MarkInexact()
		return subSeq, true

	default:
		return nil, false
	}
}

// cross concatenates every literal of a with every literal of b,
// applying the length and count limits. Caller guarantees a is
// all-complete.
func (x *Extractor) cross(a, b *Seq) (*Seq, bool) {
	if a.Len()*b.Len() > x.config.MaxLiterals {
		return nil, false
	}
	out := NewSeq()
	for i := 0; i < a.Len(); i++ {
		la := a.Get(i)
		for j := 0; j < b.Len(); j++ {
			lb := b.Get(j)
			bytes := make([]byte, 0, la.Len()+lb.Len())
			bytes = append(bytes, la.Bytes...)
			bytes = append(bytes, lb.Bytes...)
			complete := lb.Complete
			if len(bytes) > x.config.MaxLiteralLen {
				bytes = bytes[:x.config.MaxLiteralLen]
				complete = false
			}
			out.Add(NewLiteral(bytes, complete))
		}
	}
	if out.Len() > x.config.MaxLiterals {
		return nil, false
	}
	return out, true
}

// stripEmpty drops zero-length literals. The empty seed survives only
// when a concat's very first sub was unextractable, in which case no
// sound sequence exists.
func (x *Extractor) stripEmpty(seq *Seq) (*Seq, bool) {
	out := NewSeq()
	for i := 0; i < seq.Len(); i++ {
		if l := seq.Get(i); l.Len() > 0 {
			out.Add(l)
		}
	}
	if out.IsEmpty() {
		return nil, false
	}
	return out, true
}
