// Package suggest is the core, filtering the ranked dictionary down to the words that fit a guess history.
package suggest

import (
	"iter"
	"time"

	"github.com/bastiangx/wordhint/pkg/constraint"
	"github.com/bastiangx/wordhint/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// Suggestion is a candidate word with its position in the full ranking.
type Suggestion struct {
	Word   string
	Weight int
	Rank   int
}

// IHinter defines the interface used by the CLI and the IPC server.
type IHinter interface {
	// Suggest returns up to limit candidates consistent with every token
	Suggest(tokens []string, limit int) ([]Suggestion, error)

	// Starters returns the best opening guesses
	Starters(limit int) []Suggestion

	// Stats returns statistics about the loaded dictionary
	Stats() map[string]int
}

// Hinter answers guess history queries against one ranked dictionary.
// It holds no per-request state and is safe for concurrent use.
type Hinter struct {
	dict     *dictionary.Dictionary
	compiler *constraint.Compiler
}

// NewHinter wraps dict. A nil compiler accepts five-letter guesses without
// strict checks.
func NewHinter(dict *dictionary.Dictionary, compiler *constraint.Compiler) *Hinter {
	if compiler == nil {
		compiler = constraint.NewCompiler(constraint.DefaultLength, false)
	}
	return &Hinter{dict: dict, compiler: compiler}
}

// Candidates compiles tokens and returns the lazy filtered ranking.
func (h *Hinter) Candidates(tokens []string) (iter.Seq[string], error) {
	constraints, err := h.compiler.Compile(tokens)
	if err != nil {
		return nil, err
	}
	for _, c := range constraints {
		log.Debug("constraint", "kind", c.Kind, "pos", c.Pos, "letter", string(c.Letter))
	}
	return Filter(h.dict.Words(), constraints), nil
}

// Suggest returns up to limit candidates in rank order.
func (h *Hinter) Suggest(tokens []string, limit int) ([]Suggestion, error) {
	start := time.Now()
	seq, err := h.Candidates(tokens)
	if err != nil {
		return nil, err
	}
	words := Take(seq, limit)
	log.Debugf("Took [ %v ] for %d guesses", time.Since(start), len(tokens))
	return h.toSuggestions(words), nil
}

// Starters returns the top ranked words, the best first guesses.
func (h *Hinter) Starters(limit int) []Suggestion {
	return h.toSuggestions(h.dict.Top(limit))
}

// Dictionary returns the ranked dictionary.
func (h *Hinter) Dictionary() *dictionary.Dictionary {
	return h.dict
}

// Stats returns statistics about the loaded dictionary
func (h *Hinter) Stats() map[string]int {
	stats := h.dict.Stats()
	stats["guessLength"] = h.compiler.Length
	return stats
}

func (h *Hinter) toSuggestions(words []string) []Suggestion {
	suggestions := make([]Suggestion, 0, len(words))
	for _, w := range words {
		rank, weight, _ := h.dict.Lookup(w)
		suggestions = append(suggestions, Suggestion{Word: w, Weight: weight, Rank: rank})
	}
	return suggestions
}
