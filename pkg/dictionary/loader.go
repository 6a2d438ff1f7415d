package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/wordhint/internal/utils"
	"github.com/charmbracelet/log"
	mapset "github.com/deckarep/golang-set/v2"
)

// LoadError reports a word list that could not be read.
// Missing files keep their fs.ErrNotExist cause for errors.Is.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to read word list: %v", e.Err)
	}
	return fmt.Sprintf("failed to read word list %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadWords reads a newline-delimited word list and returns the set of
// entries that are exactly length letters long, lower-cased and trimmed.
func LoadWords(path string, length int) (mapset.Set[string], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer file.Close()

	words, err := ReadWords(file, length)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.Path = path
		}
		return nil, err
	}
	log.Debugf("Loaded %d words of length %d from %s", words.Cardinality(), length, path)
	return words, nil
}

// ReadWords is LoadWords over an arbitrary reader.
// Entries containing anything other than letters are skipped.
func ReadWords(r io.Reader, length int) (mapset.Set[string], error) {
	words := mapset.NewThreadUnsafeSet[string]()
	scanner := bufio.NewScanner(r)

	skipped := 0
	for scanner.Scan() {
		word := utils.NormalizeWord(scanner.Text())
		if utils.RuneLen(word) != length {
			continue
		}
		if !utils.IsOnlyLetters(word) {
			skipped++
			continue
		}
		words.Add(word)
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Err: err}
	}
	if skipped > 0 {
		log.Debugf("Skipped %d entries with non-letter characters", skipped)
	}
	return words, nil
}
