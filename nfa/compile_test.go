package nfa

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/coregx/rematch/syntax"
)

func compilePattern(t *testing.T, pattern string) *NFA {
	t.Helper()
	expr, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", pattern, err)
	}
	n, err := NewDefaultCompiler().Compile(expr)
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", pattern, err)
	}
	return n
}

// TestCompile_StateCounts pins the per-construction state budget: one
// state per literal, split+join per alternation, split+exit per
// repetition, one epsilon for the empty fragment, plus the match state.
func TestCompile_StateCounts(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{"", 2},      // epsilon + match
		{"a", 2},     // rune + match
		{"abc", 4},   // 3 runes + match
		{"a|b", 5},   // 2 runes + split + join + match
		{"a|b|c", 7}, // 3 runes + 2 splits + join + match
		{"a*", 4},    // rune + split + exit + match
		{"a+", 4},
		{"a?", 4},
		{"(a)", 2},  // grouping adds no states
		{"()", 2},   // epsilon + match
		{"(ab)*", 5}, // 2 runes + split + exit + match
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n := compilePattern(t, tt.pattern)
			if n.States() != tt.want {
				t.Errorf("States() = %d, want %d\n%s", n.States(), tt.want, n)
			}
		})
	}
}

// TestCompile_LinearGrowth guards against construction blowup: the
// state count must stay within a constant factor of pattern length.
func TestCompile_LinearGrowth(t *testing.T) {
	patterns := []string{
		"abcdefghij",
		"(a|b|c|d|e|f|g|h)*",
		"a*b*c*d*e*f*",
		"((a|b)*(c|d)*)*",
		"(a+b+cd)*(e?f?)+",
		"((((((((((a))))))))))*",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			n := compilePattern(t, pattern)
			limit := 4*utf8.RuneCountInString(pattern) + 2
			if n.States() > limit {
				t.Errorf("States() = %d exceeds linear bound %d for pattern length %d",
					n.States(), limit, len(pattern))
			}
		})
	}
}

// TestCompile_LinearGrowthScaling doubles the pattern and checks the
// automaton roughly doubles with it.
func TestCompile_LinearGrowthScaling(t *testing.T) {
	unit := "(a|b)*c"
	small := unit
	large := ""
	for i := 0; i < 8; i++ {
		large += unit
	}

	nSmall := compilePattern(t, small)
	nLarge := compilePattern(t, large)

	// 8x the pattern must not produce more than ~8x the states.
	if nLarge.States() > 8*nSmall.States() {
		t.Errorf("8x pattern grew from %d to %d states, exceeds 8x",
			nSmall.States(), nLarge.States())
	}
}

func TestCompile_TooComplex(t *testing.T) {
	t.Run("state budget", func(t *testing.T) {
		pattern := ""
		for i := 0; i < 200; i++ {
			pattern += "a"
		}
		expr, err := syntax.Parse(pattern)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		c := NewCompiler(CompilerConfig{MaxStates: 100})
		if _, err := c.Compile(expr); !errors.Is(err, ErrTooComplex) {
			t.Errorf("Compile error = %v, want ErrTooComplex", err)
		}
	})

	t.Run("recursion depth", func(t *testing.T) {
		pattern := ""
		for i := 0; i < 50; i++ {
			pattern += "("
		}
		pattern += "a"
		for i := 0; i < 50; i++ {
			pattern += ")*"
		}
		expr, err := syntax.Parse(pattern)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		c := NewCompiler(CompilerConfig{MaxRecursionDepth: 10})
		if _, err := c.Compile(expr); !errors.Is(err, ErrTooComplex) {
			t.Errorf("Compile error = %v, want ErrTooComplex", err)
		}
	})

	t.Run("defaults allow normal patterns", func(t *testing.T) {
		compilePattern(t, "(a+b+cd)*")
	})
}

// TestCompile_NoDanglingStates exercises Build's validation across a
// spread of shapes: every compiled NFA must be fully patched.
func TestCompile_NoDanglingStates(t *testing.T) {
	patterns := []string{
		"", "a", "ab", "a|b", "a*", "a+", "a?", "(a|b)*c",
		"(a+b+cd)*", "((ab)+c)*", "a(b|c)?d", "()?",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			n := compilePattern(t, pattern)
			for id := StateID(0); int(id) < n.States(); id++ {
				s := n.State(id)
				switch s.Kind() {
				case StateRune:
					if _, next := s.Rune(); n.State(next) == nil {
						t.Errorf("state %d has invalid target", id)
					}
				case StateEpsilon:
					if n.State(s.Epsilon()) == nil {
						t.Errorf("state %d has invalid target", id)
					}
				case StateSplit:
					left, right := s.Split()
					if n.State(left) == nil || n.State(right) == nil {
						t.Errorf("state %d has invalid split branch", id)
					}
				}
			}
		})
	}
}
