package dictionary

import (
	"github.com/bits-and-blooms/bitset"
	mapset "github.com/deckarep/golang-set/v2"
)

// FrequencyTable maps a letter to the number of corpus words containing it
// at least once. Letters missing from the map weigh 0.
type FrequencyTable map[rune]int

// BuildFrequencyTable counts, for every letter, how many distinct words
// contain it. A word adds at most 1 to each letter regardless of repeats.
func BuildFrequencyTable(words mapset.Set[string]) FrequencyTable {
	table := make(FrequencyTable, 26)
	words.Each(func(word string) bool {
		for _, r := range UniqueLetters(word) {
			table[r]++
		}
		return false
	})
	return table
}

// Weight sums the table entries of each distinct letter in word.
func (t FrequencyTable) Weight(word string) int {
	weight := 0
	for _, r := range UniqueLetters(word) {
		weight += t[r]
	}
	return weight
}

// Get returns the count for a single letter.
func (t FrequencyTable) Get(letter rune) int {
	return t[letter]
}

// UniqueLetters returns the distinct letters of word in first-seen order.
func UniqueLetters(word string) []rune {
	var seen bitset.BitSet
	letters := make([]rune, 0, len(word))
	for _, r := range word {
		if seen.Test(uint(r)) {
			continue
		}
		seen.Set(uint(r))
		letters = append(letters, r)
	}
	return letters
}
