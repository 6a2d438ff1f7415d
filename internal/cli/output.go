// Package cli formats hints for the terminal.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/wordhint/internal/utils"
	"github.com/bastiangx/wordhint/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
)

// Printer writes hint results to out. Colors are only emitted when out is
// a terminal.
type Printer struct {
	out       io.Writer
	wordStyle lipgloss.Style
	dimStyle  lipgloss.Style
}

// NewPrinter creates a Printer for out.
func NewPrinter(out io.Writer) *Printer {
	renderer := lipgloss.NewRenderer(out)
	return &Printer{
		out:       out,
		wordStyle: renderer.NewStyle().Foreground(lipgloss.Color("75")),
		dimStyle:  renderer.NewStyle().Faint(true),
	}
}

// PrintStarters prints the dictionary size and the best opening guesses.
func (p *Printer) PrintStarters(total, length int, starters []suggest.Suggestion) {
	fmt.Fprintf(p.out, "%s %d letter words loaded\n", utils.FormatWithCommas(total), length)
	if len(starters) == 0 {
		return
	}
	fmt.Fprintln(p.out, p.dimStyle.Render("best starting words:"))
	fmt.Fprintln(p.out, p.join(starters))
}

// PrintCandidates prints the candidates as one comma-separated line.
func (p *Printer) PrintCandidates(candidates []suggest.Suggestion) {
	fmt.Fprintln(p.out, p.join(candidates))
}

// PrintPosition prints where word sits in the ranking.
func (p *Printer) PrintPosition(word string, rank, total int, found bool) {
	if !found {
		fmt.Fprintf(p.out, "%s is not in the word list\n", word)
		return
	}
	fmt.Fprintf(p.out, "%s is word %s of %s\n",
		p.wordStyle.Render(word), utils.FormatWithCommas(rank), utils.FormatWithCommas(total))
}

func (p *Printer) join(suggestions []suggest.Suggestion) string {
	words := make([]string, len(suggestions))
	for i, s := range suggestions {
		words[i] = p.wordStyle.Render(s.Word)
	}
	return strings.Join(words, ", ")
}
