package anagram

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Dictionary is a named list of candidate words.
type Dictionary struct {
	Name  string
	Words []string
}

// ReadDictionary reads one word per line from r. Surrounding whitespace is
// trimmed and blank lines are skipped.
func ReadDictionary(name string, r io.Reader) (Dictionary, error) {
	dict := Dictionary{Name: name}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		dict.Words = append(dict.Words, word)
	}
	if err := scanner.Err(); err != nil {
		return Dictionary{}, fmt.Errorf("failed to read dictionary %s: %w", name, err)
	}
	return dict, nil
}

// LoadDictionary reads the dictionary file at path. The path becomes its name.
func LoadDictionary(path string) (Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dictionary{}, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()
	return ReadDictionary(path, f)
}
