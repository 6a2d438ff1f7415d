package constraint

import (
	"errors"
	"strings"
	"testing"
)

func TestConstraintMatch(t *testing.T) {
	testCases := []struct {
		constraint Constraint
		word       string
		want       bool
	}{
		// NoMatch excludes the letter at any position
		{NoMatchAt(0, 'a'), "slate", false},
		{NoMatchAt(4, 'a'), "aloft", false},
		{NoMatchAt(2, 'a'), "fjord", true},

		{ExactMatchAt(2, 't'), "utter", true},
		{ExactMatchAt(2, 't'), "otter", true},
		{ExactMatchAt(2, 't'), "taste", false},
		{ExactMatchAt(4, 'e'), "abc", false},

		{InexactMatchAt(0, 'r'), "irate", true},
		{InexactMatchAt(0, 'r'), "raise", false},
		{InexactMatchAt(0, 'r'), "slate", false},
	}

	for _, tc := range testCases {
		t.Run(tc.constraint.String()+"/"+tc.word, func(t *testing.T) {
			if got := tc.constraint.Match(tc.word); got != tc.want {
				t.Errorf("%v.Match(%q) = %v, want %v", tc.constraint, tc.word, got, tc.want)
			}
		})
	}
}

func TestCompile(t *testing.T) {
	got, err := Compile([]string{"Crane/.xX.x"})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	want := []Constraint{
		NoMatchAt(0, 'c'),
		InexactMatchAt(1, 'r'),
		ExactMatchAt(2, 'a'),
		NoMatchAt(3, 'n'),
		InexactMatchAt(4, 'e'),
	}
	if len(got) != len(want) {
		t.Fatalf("Compile() returned %d constraints, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("constraint %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCompileIsIdempotent(t *testing.T) {
	tokens := []string{"slate/..x.x", "crane/.XX..", "slate/..x.x"}

	first, err := Compile(tokens)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Compile(tokens)
	if err != nil {
		t.Fatal(err)
	}

	count := func(cs []Constraint) map[Constraint]int {
		m := make(map[Constraint]int)
		for _, c := range cs {
			m[c]++
		}
		return m
	}
	a, b := count(first), count(second)
	if len(a) != len(b) {
		t.Fatalf("constraint sets differ: %v vs %v", first, second)
	}
	for c, n := range a {
		if b[c] != n {
			t.Errorf("constraint %v appears %d times, then %d times", c, n, b[c])
		}
	}
	if len(first) != 15 {
		t.Errorf("duplicate tokens should not be deduplicated, got %d constraints", len(first))
	}
}

func TestCompileInvalidInput(t *testing.T) {
	testCases := []struct {
		token       string
		description string
	}{
		{"train/..", "feedback too short"},
		{"train/.xX.", "feedback of length 4"},
		{"train", "missing separator"},
		{"tra/in/.....", "too many separators"},
		{"trains/......", "guess too long"},
		{"trai/.....", "guess too short"},
		{"train/..?..", "unknown feedback symbol"},
		{"train/..Y..", "uppercase symbol other than X"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got, err := Compile([]string{"crane/.....", tc.token})
			if err == nil {
				t.Fatalf("Compile(%q) expected an error", tc.token)
			}
			if got != nil {
				t.Errorf("Compile(%q) returned partial constraints %v", tc.token, got)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("errors.Is(err, ErrInvalidInput) = false for %v", err)
			}
			var inputErr *InvalidInputError
			if !errors.As(err, &inputErr) || inputErr.Token != tc.token {
				t.Errorf("error %v does not name token %q", err, tc.token)
			}
			if !strings.Contains(err.Error(), "GUESS/FEEDBACK") {
				t.Errorf("error %q does not describe the expected format", err)
			}
		})
	}
}

func TestCompileContradictionsAreSilentByDefault(t *testing.T) {
	constraints, err := Compile([]string{"plant/..X..", "crane/..X.."})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if len(constraints) != 10 {
		t.Errorf("Compile() returned %d constraints, want 10", len(constraints))
	}
}

func TestCompileStrict(t *testing.T) {
	testCases := []struct {
		tokens      []string
		wantErr     bool
		description string
	}{
		{[]string{"slate/..X..", "crane/..X.."}, false, "same exact letter"},
		{[]string{"slate/..X..", "crone/..X.."}, true, "two exact letters at one position"},
		{[]string{"slate/..x..", "crane/..X.."}, true, "exact after misplaced at the same position"},
		{[]string{"crane/..X..", "about/x...."}, false, "misplaced elsewhere"},
		{[]string{"crane/..X..", "slate/..x.."}, true, "misplaced after exact at the same position"},
		{[]string{"crane/.....", "about/x...."}, true, "present after absent"},
		{[]string{"about/x....", "crane/....."}, true, "absent after present"},
	}

	compiler := NewCompiler(5, true)
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			_, err := compiler.Compile(tc.tokens)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Compile(%v) error = %v, wantErr %v", tc.tokens, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("strict error %v is not ErrInvalidInput", err)
			}
		})
	}
}

func TestCompilerLength(t *testing.T) {
	constraints, err := NewCompiler(6, false).Compile([]string{"planet/XXXXXX"})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	for i, c := range constraints {
		if c.Kind != ExactMatch || c.Pos != i || c.Letter != rune("planet"[i]) {
			t.Errorf("constraint %d = %v", i, c)
		}
	}
}
