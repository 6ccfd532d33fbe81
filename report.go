package anagram

import (
	"context"
	"fmt"
	"io"
)

// Report runs the search and writes each anagram to w as it is found,
// followed by the summary line. It returns the number of anagrams written.
func Report(ctx context.Context, w io.Writer, a *Anagram) (int, error) {
	for i, sol := range a.Anagrams(ctx) {
		if _, err := fmt.Fprintln(w, Line(i, sol)); err != nil {
			return a.Count(), fmt.Errorf("failed to write anagram %d: %w", i, err)
		}
	}
	if err := a.Err(); err != nil {
		return a.Count(), fmt.Errorf("search interrupted after %d anagrams: %w", a.Count(), err)
	}
	if _, err := fmt.Fprintln(w, a.Summary()); err != nil {
		return a.Count(), fmt.Errorf("failed to write summary: %w", err)
	}
	return a.Count(), nil
}

// Line formats one numbered anagram the way Report writes it.
func Line(i int, sol Solution) string {
	return fmt.Sprintf("%4d: %s", i, sol)
}
