package rematch_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/coregx/rematch"
	"github.com/coregx/rematch/nfa"
	"github.com/coregx/rematch/syntax"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"empty pattern empty input", "", "", true},
		{"empty pattern nonempty input", "", "x", false},
		{"literal exact", "abc", "abc", true},
		{"literal shorter", "abc", "ab", false},
		{"literal longer", "abc", "abcd", false},
		{"literal diverging", "abc", "abx", false},
		{"alternation", "cat|dog", "dog", true},
		{"alternation miss", "cat|dog", "catdog", false},
		{"star empty", "(ab)*", "", true},
		{"star repeated", "(ab)*", "abab", true},
		{"plus needs one", "(ab)+", "", false},
		{"plus repeated", "(ab)+", "abab", true},
		{"optional", "colou?r", "color", true},
		{"optional present", "colou?r", "colour", true},
		{"composite", "(a|b)*c(d|e)?", "abac", true},
		{"composite with tail", "(a|b)*c(d|e)?", "bacd", true},
		{"composite bad tail", "(a|b)*c(d|e)?", "bacf", false},
		{"unicode", "(日|本)+", "日本本日", true},
		{"escaped operators", `\(\a\+b\)`, "(a+b)", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := rematch.Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) failed: %v", tt.pattern, err)
			}
			if got := re.Validate(tt.input); got != tt.want {
				t.Errorf("Validate(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
			if got := re.ValidateBytes([]byte(tt.input)); got != tt.want {
				t.Errorf("ValidateBytes(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}

// TestRepetitionLaws pins the algebra of the three repetition
// operators.
func TestRepetitionLaws(t *testing.T) {
	atoms := []string{"a", "(bc)", "(a|b)"}

	for _, atom := range atoms {
		star := rematch.MustCompile(atom + "*")
		plus := rematch.MustCompile(atom + "+")
		opt := rematch.MustCompile(atom + "?")
		one := rematch.MustCompile(atom)

		if !star.Validate("") {
			t.Errorf("%s* rejects empty string", atom)
		}
		if plus.Validate("") {
			t.Errorf("%s+ accepts empty string", atom)
		}
		if !opt.Validate("") {
			t.Errorf("%s? rejects empty string", atom)
		}

		// Whatever the atom matches, all three accept one occurrence.
		for _, input := range []string{"a", "bc", "b"} {
			if one.Validate(input) {
				for name, re := range map[string]*rematch.Regex{"star": star, "plus": plus, "opt": opt} {
					if !re.Validate(input) {
						t.Errorf("%s %s rejects %q accepted by the atom", atom, name, input)
					}
				}
				// Two occurrences: star and plus accept, optional rejects.
				double := input + input
				if !star.Validate(double) || !plus.Validate(double) {
					t.Errorf("%s star/plus reject %q", atom, double)
				}
				if opt.Validate(double) {
					t.Errorf("%s? accepts two occurrences %q", atom, double)
				}
			}
		}
	}
}

// TestDeterminism: same pattern, same input, same answer - across
// repeated calls and across fresh compilations.
func TestDeterminism(t *testing.T) {
	pattern := "(a+b+cd)*"
	inputs := []string{"", "abcd", "abbcd", "abbcdabcd", "ababc", "acd", "abbcdaacd"}

	re := rematch.MustCompile(pattern)
	for _, input := range inputs {
		first := re.Validate(input)
		for i := 0; i < 10; i++ {
			if re.Validate(input) != first {
				t.Fatalf("Validate(%q) flapped", input)
			}
			fresh := rematch.MustCompile(pattern)
			if fresh.Validate(input) != first {
				t.Fatalf("fresh compile disagrees on %q", input)
			}
		}
	}
}

func TestMalformedPatterns(t *testing.T) {
	tests := []struct {
		pattern string
		kind    error
	}{
		{"(", syntax.ErrUnbalancedGroup},
		{")", syntax.ErrUnbalancedGroup},
		{"*ab", syntax.ErrDanglingOperator},
		{"a||b", syntax.ErrEmptyAlternationBranch},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re, err := rematch.Compile(tt.pattern)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded, want %v", tt.pattern, tt.kind)
			}
			if re != nil {
				t.Error("Compile returned both a Regex and an error")
			}
			if !errors.Is(err, tt.kind) {
				t.Errorf("Compile(%q) error = %v, want kind %v", tt.pattern, err, tt.kind)
			}
		})
	}
}

func TestMustCompile_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile of malformed pattern did not panic")
		}
	}()
	rematch.MustCompile("(")
}

func TestTooComplex(t *testing.T) {
	config := rematch.DefaultConfig()
	config.MaxStates = 20

	pattern := strings.Repeat("a", 100)
	if _, err := rematch.CompileWithConfig(pattern, config); !errors.Is(err, nfa.ErrTooComplex) {
		t.Errorf("CompileWithConfig error = %v, want nfa.ErrTooComplex", err)
	}
}

// TestStateCountLinear guards the construction against state blowup at
// the public surface.
func TestStateCountLinear(t *testing.T) {
	base := "(a|b)+c?"
	prev := 0
	for n := 1; n <= 8; n *= 2 {
		re := rematch.MustCompile(strings.Repeat(base, n))
		count := re.StateCount()
		if prev > 0 && count > 2*prev+4 {
			t.Errorf("doubling the pattern grew states from %d to %d", prev, count)
		}
		prev = count
	}
}

func TestConcurrentUse(t *testing.T) {
	re := rematch.MustCompile("(ab|cd)*ef")

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				if !re.Validate("abcdef") {
					t.Error("Validate(abcdef) = false")
					return
				}
				if re.Validate("abcde") {
					t.Error("Validate(abcde) = true")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestAccessors(t *testing.T) {
	re := rematch.MustCompile("a|b")
	if re.Pattern() != "a|b" {
		t.Errorf("Pattern() = %q", re.Pattern())
	}
	if re.String() != "a|b" {
		t.Errorf("String() = %q", re.String())
	}
	if re.Strategy() == "" {
		t.Error("Strategy() is empty")
	}
	if re.StateCount() <= 0 {
		t.Errorf("StateCount() = %d", re.StateCount())
	}
}
