// Package dictionary loads the word corpus and ranks it by letter frequency.
//
// A word's weight is the sum, over its distinct letters, of the number of
// corpus words containing that letter. Words sharing many common letters
// rank first, which makes them good opening guesses.
package dictionary

import (
	"sort"
	"time"

	"github.com/charmbracelet/log"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/bastiangx/wordhint/internal/utils"
)

// entry is stored in the word index for each ranked word.
type entry struct {
	rank   int
	weight int
}

// Dictionary is the ranked word list. It is never mutated after New and
// can be shared between goroutines.
type Dictionary struct {
	words []string
	freq  FrequencyTable
	index *patricia.Trie
}

// Build loads the word list at path and ranks it.
func Build(path string, length int) (*Dictionary, error) {
	start := time.Now()
	words, err := LoadWords(path, length)
	if err != nil {
		return nil, err
	}
	freq := BuildFrequencyTable(words)
	d := New(words, freq)
	log.Debugf("Ranked %d words in %v", d.Len(), time.Since(start))
	return d, nil
}

// New ranks words using freq.
func New(words mapset.Set[string], freq FrequencyTable) *Dictionary {
	ranked := Rank(words, freq)
	index := patricia.NewTrie()
	for i, w := range ranked {
		index.Insert(patricia.Prefix(w), entry{rank: i + 1, weight: freq.Weight(w)})
	}
	return &Dictionary{
		words: ranked,
		freq:  freq,
		index: index,
	}
}

// Rank orders words by descending weight. Equal weights fall back to
// ascending lexicographic order so the result is reproducible.
func Rank(words mapset.Set[string], freq FrequencyTable) []string {
	ranked := words.ToSlice()
	weights := make(map[string]int, len(ranked))
	for _, w := range ranked {
		weights[w] = freq.Weight(w)
	}
	sort.Slice(ranked, func(i, j int) bool {
		wi, wj := weights[ranked[i]], weights[ranked[j]]
		if wi != wj {
			return wi > wj
		}
		return ranked[i] < ranked[j]
	})
	return ranked
}

// Words returns the ranked words. The slice must not be modified.
func (d *Dictionary) Words() []string {
	return d.words
}

// Len is the number of ranked words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Top returns at most n of the highest ranked words.
func (d *Dictionary) Top(n int) []string {
	if n < 0 || n > len(d.words) {
		n = len(d.words)
	}
	return d.words[:n]
}

// Weight returns the weight of any word against the corpus frequencies,
// whether or not it is in the dictionary.
func (d *Dictionary) Weight(word string) int {
	return d.freq.Weight(utils.NormalizeWord(word))
}

// Lookup returns the 1-based rank and the weight of a ranked word.
func (d *Dictionary) Lookup(word string) (rank, weight int, ok bool) {
	item := d.index.Get(patricia.Prefix(utils.NormalizeWord(word)))
	if item == nil {
		return 0, 0, false
	}
	e := item.(entry)
	return e.rank, e.weight, true
}

// Position returns the 1-based rank of word.
func (d *Dictionary) Position(word string) (int, bool) {
	rank, _, ok := d.Lookup(word)
	return rank, ok
}

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.Position(word)
	return ok
}

// Frequencies returns the letter frequency table. The map must not be modified.
func (d *Dictionary) Frequencies() FrequencyTable {
	return d.freq
}

// Stats returns statistics about the loaded dictionary
func (d *Dictionary) Stats() map[string]int {
	maxWeight := 0
	if len(d.words) > 0 {
		maxWeight = d.freq.Weight(d.words[0])
	}
	return map[string]int{
		"totalWords": len(d.words),
		"letters":    len(d.freq),
		"maxWeight":  maxWeight,
	}
}
