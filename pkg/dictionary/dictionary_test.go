package dictionary

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
)

func writeWordList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWords(t *testing.T) {
	path := writeWordList(t, "Planet\nmonkey\n  basalt  \nplanet\ntrain\nlongerword\nab'cde\n\nBASALT\r\n")

	words, err := LoadWords(path, 6)
	if err != nil {
		t.Fatalf("LoadWords() error = %v", err)
	}

	got := words.ToSlice()
	sort.Strings(got)
	want := []string{"basalt", "monkey", "planet"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("LoadWords() = %v, want %v", got, want)
	}

	words.Each(func(w string) bool {
		if len(w) != 6 {
			t.Errorf("word %q has length %d, want 6", w, len(w))
		}
		if w != strings.ToLower(strings.TrimSpace(w)) {
			t.Errorf("word %q is not normalized", w)
		}
		return false
	})
}

func TestLoadWordsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope")

	_, err := LoadWords(path, 5)
	if err == nil {
		t.Fatal("LoadWords() expected an error for a missing file")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error %T is not a *LoadError", err)
	}
	if loadErr.Path != path {
		t.Errorf("LoadError.Path = %q, want %q", loadErr.Path, path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("errors.Is(err, fs.ErrNotExist) = false for %v", err)
	}
}

func TestBuildFrequencyTable(t *testing.T) {
	words := mapset.NewSet("aab", "abc", "xyz")
	table := BuildFrequencyTable(words)

	testCases := []struct {
		letter rune
		want   int
	}{
		{'a', 2}, // repeated letters count once per word
		{'b', 2},
		{'c', 1},
		{'x', 1},
		{'q', 0},
	}
	for _, tc := range testCases {
		if got := table.Get(tc.letter); got != tc.want {
			t.Errorf("table[%q] = %d, want %d", tc.letter, got, tc.want)
		}
	}
	if _, ok := table['q']; ok {
		t.Error("letters absent from the corpus should be absent from the table")
	}
}

func TestWeight(t *testing.T) {
	table := FrequencyTable{'a': 3, 'b': 2, 'c': 1}

	testCases := []struct {
		word string
		want int
	}{
		{"abc", 6},
		{"aaa", 3},
		{"abz", 5},
		{"zzz", 0},
		{"", 0},
	}
	for _, tc := range testCases {
		got := table.Weight(tc.word)
		if got != tc.want {
			t.Errorf("Weight(%q) = %d, want %d", tc.word, got, tc.want)
		}
		if got < 0 {
			t.Errorf("Weight(%q) is negative", tc.word)
		}
	}
}

func TestUniqueLetters(t *testing.T) {
	got := string(UniqueLetters("banana"))
	if got != "ban" {
		t.Errorf("UniqueLetters(banana) = %q, want %q", got, "ban")
	}
}

func TestRankOrder(t *testing.T) {
	words := mapset.NewSet("abd", "xyz", "abc", "aaa")
	freq := BuildFrequencyTable(words)

	ranked := Rank(words, freq)
	want := []string{"abc", "abd", "aaa", "xyz"}
	if strings.Join(ranked, ",") != strings.Join(want, ",") {
		t.Fatalf("Rank() = %v, want %v", ranked, want)
	}

	for i := 1; i < len(ranked); i++ {
		if freq.Weight(ranked[i-1]) < freq.Weight(ranked[i]) {
			t.Errorf("%q ranked above heavier %q", ranked[i-1], ranked[i])
		}
	}
}

func TestRankIsDeterministic(t *testing.T) {
	words := mapset.NewSet("cab", "abc", "bca", "bac")
	freq := BuildFrequencyTable(words)

	first := Rank(words, freq)
	for i := 0; i < 20; i++ {
		again := Rank(mapset.NewSet(words.ToSlice()...), freq)
		if strings.Join(again, ",") != strings.Join(first, ",") {
			t.Fatalf("Rank() run %d = %v, want %v", i, again, first)
		}
	}
	if first[0] != "abc" {
		t.Errorf("ties should be lexicographic, got %v", first)
	}
}

func TestDictionary(t *testing.T) {
	path := writeWordList(t, "crane\nslate\nfuzzy\njazzy\ncrane\n")

	d, err := Build(path, 5)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if d.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", d.Len())
	}

	for i, w := range d.Words() {
		pos, ok := d.Position(w)
		if !ok || pos != i+1 {
			t.Errorf("Position(%q) = %d, %v, want %d, true", w, pos, ok, i+1)
		}
		_, weight, _ := d.Lookup(w)
		if weight != d.Weight(w) {
			t.Errorf("Lookup(%q) weight = %d, want %d", w, weight, d.Weight(w))
		}
	}

	if _, ok := d.Position("zebra"); ok {
		t.Error("Position(zebra) should not be found")
	}
	if !d.Contains("CRANE") {
		t.Error("Contains should normalize its input")
	}
	if got := d.Top(2); len(got) != 2 || got[0] != d.Words()[0] {
		t.Errorf("Top(2) = %v", got)
	}
	if got := d.Top(100); len(got) != 4 {
		t.Errorf("Top(100) returned %d words, want 4", len(got))
	}
	if stats := d.Stats(); stats["totalWords"] != 4 {
		t.Errorf("Stats()[totalWords] = %d, want 4", stats["totalWords"])
	}
}
