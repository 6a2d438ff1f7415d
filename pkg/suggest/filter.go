package suggest

import (
	"iter"

	"github.com/bastiangx/wordhint/pkg/constraint"
	"github.com/samber/lo"
)

// Filter yields the words of ranked that satisfy every constraint, in
// ranked order. Words are tested only as the sequence is consumed, so
// stopping early skips the rest of the dictionary.
func Filter(ranked []string, constraints []constraint.Constraint) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, word := range ranked {
			if !Matches(word, constraints) {
				continue
			}
			if !yield(word) {
				return
			}
		}
	}
}

// Matches reports whether word satisfies all constraints.
func Matches(word string, constraints []constraint.Constraint) bool {
	return lo.EveryBy(constraints, func(c constraint.Constraint) bool {
		return c.Match(word)
	})
}

// Take collects at most n words from seq. n <= 0 collects everything.
func Take(seq iter.Seq[string], n int) []string {
	var words []string
	if n > 0 {
		words = make([]string, 0, min(n, 64))
	}
	for word := range seq {
		words = append(words, word)
		if n > 0 && len(words) >= n {
			break
		}
	}
	return words
}
