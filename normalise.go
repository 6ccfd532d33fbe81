package anagram

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold strips diacritics and lowercases s, so Jürgen becomes jurgen.
// If the transformation fails the lowercased input is returned unchanged.
func fold(s string) string {
	transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normal, _, err := transform.String(transformer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(normal)
}

// normalisePhrase reduces a free-form phrase to the letters a-z it contains.
// Everything else, including spaces and punctuation, is dropped.
func normalisePhrase(phrase string) string {
	folded := fold(phrase)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if isLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normaliseWord cleans a dictionary entry. It returns false when the entry is
// empty or contains anything other than the letters a-z once folded, since
// such a word can never be spelled from a phrase.
func normaliseWord(word string, normalised bool) (string, bool) {
	word = strings.TrimSpace(word)
	if normalised {
		word = fold(word)
	} else {
		word = strings.ToLower(word)
	}
	if len(word) == 0 {
		return "", false
	}
	for _, r := range word {
		if !isLetter(r) {
			return "", false
		}
	}
	return word, true
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z'
}
