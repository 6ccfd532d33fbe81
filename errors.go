package anagram

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientLetters is matched by every *InsufficientLettersError.
	ErrInsufficientLetters = errors.New("insufficient letters")
	// ErrInputTooLong is returned when a phrase has more letters than the
	// configured ceiling allows a search to recurse over.
	ErrInputTooLong = errors.New("input too long")
	// ErrNoInput is returned when the phrase is blank.
	ErrNoInput = errors.New("no input phrase")
)

// InsufficientLettersError reports an include word that cannot be spelled
// from the letters of the input phrase.
type InsufficientLettersError struct {
	Letter rune
	Word   string
	Input  string
}

func (e *InsufficientLettersError) Error() string {
	return fmt.Sprintf("there weren't enough/any of the letter %q in %q for %q", e.Letter, e.Input, e.Word)
}

// Is lets errors.Is match ErrInsufficientLetters.
func (e *InsufficientLettersError) Is(target error) bool {
	return target == ErrInsufficientLetters
}
