package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	anagram "github.com/sarthakjha889/go-anagram-trie"
	"github.com/sarthakjha889/go-anagram-trie/cmd/anagram/config"
)

// prompter asks for the phrase, and optionally the search options, when none
// was given on the command line.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints question and returns the trimmed reply. A final line without a
// newline is still a reply; io.EOF is only returned when nothing was read.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// interview asks for a phrase and, if the user wants them, the advanced
// options. Answers left blank keep the value already in cfg.
func (p *prompter) interview(cfg *config.Config) (string, error) {
	phrase, err := p.ask("Please enter a word or phrase for which to find anagrams: ")
	if err != nil || phrase == "" {
		return "", anagram.ErrNoInput
	}

	advanced, err := p.ask("Would you like to enter advanced options for the anagram finder? Enter true or false: ")
	if err != nil || !isYes(advanced) {
		return phrase, nil
	}

	include, err := p.ask("Please enter a list of comma-separated words that must be in the anagram (Hit enter to ignore): ")
	if err != nil {
		return phrase, nil
	}
	if words := splitList(include); len(words) > 0 {
		cfg.Include = words
	}

	exclude, err := p.ask("Please enter a list of comma-separated words that must NOT be in the anagram (Hit enter to ignore): ")
	if err != nil {
		return phrase, nil
	}
	if words := splitList(exclude); len(words) > 0 {
		cfg.Exclude = words
	}

	maxWords, err := p.ask("Please enter a maximum number of words for each anagram (Hit enter to ignore): ")
	if err != nil || maxWords == "" {
		return phrase, nil
	}
	n, err := strconv.Atoi(maxWords)
	if err != nil || n < 0 {
		n = 0
	}
	cfg.MaxWords = n
	return phrase, nil
}

func isYes(s string) bool {
	switch strings.ToLower(s) {
	case "true", "t", "yes", "y":
		return true
	}
	return false
}

// splitList splits a comma-separated reply, dropping blank entries.
func splitList(s string) []string {
	var words []string
	for _, w := range strings.Split(s, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}
