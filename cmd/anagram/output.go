package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	anagram "github.com/sarthakjha889/go-anagram-trie"
)

var summaryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

// printer writes anagrams to a terminal with a highlighted summary, or as
// plain text anywhere else.
type printer struct {
	w      io.Writer
	styled bool
}

func newPrinter(w io.Writer) *printer {
	p := &printer{w: w}
	if f, ok := w.(*os.File); ok {
		p.styled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return p
}

func (p *printer) print(ctx context.Context, a *anagram.Anagram) error {
	if !p.styled {
		_, err := anagram.Report(ctx, p.w, a)
		return err
	}
	for i, sol := range a.Anagrams(ctx) {
		if _, err := fmt.Fprintln(p.w, anagram.Line(i, sol)); err != nil {
			return err
		}
	}
	if err := a.Err(); err != nil {
		return fmt.Errorf("search interrupted after %d anagrams: %w", a.Count(), err)
	}
	_, err := fmt.Fprintln(p.w, summaryStyle.Render(a.Summary()))
	return err
}
