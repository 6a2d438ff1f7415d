// Package constraint compiles guess/feedback tokens into letter predicates.
//
// A token has the shape GUESS/FEEDBACK, for example "crane/.xX..", where each
// feedback character describes the guess letter at the same position:
//
//	.  the letter is not in the word
//	X  the letter is in the word at this position
//	x  the letter is in the word but not at this position
//
// Every position of every token yields one Constraint. A candidate matches
// only if all constraints hold.
package constraint

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind is the feedback received for one letter of a guess.
type Kind int

const (
	// NoMatch means the letter appears nowhere in the word.
	NoMatch Kind = iota
	// ExactMatch means the letter is at this position.
	ExactMatch
	// InexactMatch means the letter is in the word, elsewhere.
	InexactMatch
)

// Feedback characters as typed by the user.
const (
	SymbolAbsent  = '.'
	SymbolCorrect = 'X'
	SymbolPresent = 'x'
)

// KindOf maps a feedback character to its Kind.
func KindOf(symbol rune) (Kind, bool) {
	switch symbol {
	case SymbolAbsent:
		return NoMatch, true
	case SymbolCorrect:
		return ExactMatch, true
	case SymbolPresent:
		return InexactMatch, true
	}
	return 0, false
}

func (k Kind) String() string {
	switch k {
	case NoMatch:
		return "NoMatch"
	case ExactMatch:
		return "ExactMatch"
	case InexactMatch:
		return "InexactMatch"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Constraint is a predicate on a candidate word derived from the feedback
// for Letter at position Pos of one guess. It is comparable.
type Constraint struct {
	Kind   Kind
	Pos    int
	Letter rune
}

// Match reports whether word satisfies the constraint.
func (c Constraint) Match(word string) bool {
	switch c.Kind {
	case NoMatch:
		return !strings.ContainsRune(word, c.Letter)
	case ExactMatch:
		return letterAt(word, c.Pos) == c.Letter
	case InexactMatch:
		return strings.ContainsRune(word, c.Letter) && letterAt(word, c.Pos) != c.Letter
	}
	return false
}

func (c Constraint) String() string {
	return fmt.Sprintf("%s(%d, %q)", c.Kind, c.Pos, c.Letter)
}

// letterAt returns the letter at position pos, or utf8.RuneError when the
// word is too short.
func letterAt(word string, pos int) rune {
	i := 0
	for _, r := range word {
		if i == pos {
			return r
		}
		i++
	}
	return utf8.RuneError
}

// NoMatchAt builds a NoMatch constraint.
func NoMatchAt(pos int, letter rune) Constraint {
	return Constraint{Kind: NoMatch, Pos: pos, Letter: letter}
}

// ExactMatchAt builds an ExactMatch constraint.
func ExactMatchAt(pos int, letter rune) Constraint {
	return Constraint{Kind: ExactMatch, Pos: pos, Letter: letter}
}

// InexactMatchAt builds an InexactMatch constraint.
func InexactMatchAt(pos int, letter rune) Constraint {
	return Constraint{Kind: InexactMatch, Pos: pos, Letter: letter}
}
