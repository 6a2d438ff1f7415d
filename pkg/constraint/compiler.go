package constraint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLength is the number of letters in a guess.
const DefaultLength = 5

// ErrInvalidInput is matched by every *InvalidInputError.
var ErrInvalidInput = errors.New("invalid guess")

// InvalidInputError reports a token that is not a valid GUESS/FEEDBACK pair.
type InvalidInputError struct {
	Token  string
	Reason string
	Length int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid guess %q: %s (expected GUESS/FEEDBACK: %d letters, '/', %d of '.', 'X', 'x')",
		e.Token, e.Reason, e.Length, e.Length)
}

// Is makes errors.Is(err, ErrInvalidInput) hold.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Compiler turns guess history tokens into constraints.
// In Strict mode directly contradicting feedback is rejected instead of
// silently producing a filter that matches nothing.
type Compiler struct {
	Length int
	Strict bool
}

// NewCompiler creates a compiler for guesses of length letters.
func NewCompiler(length int, strict bool) *Compiler {
	if length < 1 {
		length = DefaultLength
	}
	return &Compiler{Length: length, Strict: strict}
}

// Compile compiles five-letter tokens without strict checks.
func Compile(tokens []string) ([]Constraint, error) {
	return NewCompiler(DefaultLength, false).Compile(tokens)
}

// Compile parses every token and returns the flat list of constraints.
// The first invalid token aborts compilation and no constraints are returned.
func (c *Compiler) Compile(tokens []string) ([]Constraint, error) {
	constraints := make([]Constraint, 0, len(tokens)*c.Length)
	var checker *contradictions
	if c.Strict {
		checker = newContradictions()
	}

	for _, token := range tokens {
		compiled, err := c.compileToken(token)
		if err != nil {
			return nil, err
		}
		if checker != nil {
			if reason := checker.add(compiled); reason != "" {
				return nil, c.invalid(token, reason)
			}
		}
		constraints = append(constraints, compiled...)
	}

	log.Debug("Compiled guesses", "tokens", len(tokens), "constraints", len(constraints))
	return constraints, nil
}

func (c *Compiler) compileToken(raw string) ([]Constraint, error) {
	token := strings.TrimSpace(raw)
	parts := strings.Split(token, "/")
	if len(parts) != 2 {
		return nil, c.invalid(raw, fmt.Sprintf("found %d parts separated by '/', want 2", len(parts)))
	}

	guess := []rune(strings.ToLower(parts[0]))
	feedback := []rune(parts[1])
	if len(guess) != c.Length {
		return nil, c.invalid(raw, fmt.Sprintf("guess has %d letters, want %d", len(guess), c.Length))
	}
	if len(feedback) != c.Length {
		return nil, c.invalid(raw, fmt.Sprintf("feedback has %d symbols, want %d", len(feedback), c.Length))
	}

	compiled := make([]Constraint, 0, c.Length)
	for i, symbol := range feedback {
		kind, ok := KindOf(symbol)
		if !ok {
			return nil, c.invalid(raw, fmt.Sprintf("unknown feedback symbol %q at position %d", symbol, i+1))
		}
		compiled = append(compiled, Constraint{Kind: kind, Pos: i, Letter: guess[i]})
	}
	return compiled, nil
}

func (c *Compiler) invalid(token, reason string) *InvalidInputError {
	return &InvalidInputError{Token: token, Reason: reason, Length: c.Length}
}

// contradictions tracks what earlier constraints already established.
type contradictions struct {
	exact   map[int]rune
	inexact map[Constraint]bool
	absent  map[rune]bool
	present map[rune]bool
}

func newContradictions() *contradictions {
	return &contradictions{
		exact:   make(map[int]rune),
		inexact: make(map[Constraint]bool),
		absent:  make(map[rune]bool),
		present: make(map[rune]bool),
	}
}

// add records constraints and returns a reason for the first conflict, or "".
func (s *contradictions) add(constraints []Constraint) string {
	for _, c := range constraints {
		switch c.Kind {
		case ExactMatch:
			if prev, ok := s.exact[c.Pos]; ok && prev != c.Letter {
				return fmt.Sprintf("position %d is already %q, cannot also be %q", c.Pos+1, prev, c.Letter)
			}
			if s.inexact[InexactMatchAt(c.Pos, c.Letter)] {
				return fmt.Sprintf("%q was marked misplaced at position %d", c.Letter, c.Pos+1)
			}
		case InexactMatch:
			if prev, ok := s.exact[c.Pos]; ok && prev == c.Letter {
				return fmt.Sprintf("%q was marked correct at position %d", c.Letter, c.Pos+1)
			}
		case NoMatch:
			if s.present[c.Letter] {
				return fmt.Sprintf("%q was marked present, cannot be absent", c.Letter)
			}
		}
		if c.Kind != NoMatch && s.absent[c.Letter] {
			return fmt.Sprintf("%q was marked absent, cannot be present", c.Letter)
		}

		switch c.Kind {
		case ExactMatch:
			s.exact[c.Pos] = c.Letter
			s.present[c.Letter] = true
		case InexactMatch:
			s.inexact[c] = true
			s.present[c.Letter] = true
		case NoMatch:
			s.absent[c.Letter] = true
		}
	}
	return ""
}
