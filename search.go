package anagram

import (
	"bytes"
	"context"
	"sort"
)

// Solution is one anagram: the include words plus the words found by the
// search, in alphabetical order.
type Solution struct {
	Words []string
}

// String returns the words of the solution separated by single spaces.
func (s Solution) String() string {
	var b bytes.Buffer
	for i, w := range s.Words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	return b.String()
}

// search is the state of one walk over a trie. progress holds the letters of
// the words found so far separated by single spaces, with the word being
// built at the end. Only one goroutine may use a search.
type search struct {
	ctx      context.Context
	root     *node
	letters  letters
	target   int
	maxWords int
	include  []string
	yield    func(int, Solution) bool

	progress []byte
	used     int
	words    int
	count    int
	visits   int
	stopped  bool
	err      error
}

// run walks the trie from the root, yielding every solution in turn.
func (s *search) run() {
	if s.target == 0 {
		return
	}
	s.walk(s.root, 0, "")
}

// walk visits current, where start is the offset in progress of the word
// being built and previous is the last completed word.
func (s *search) walk(current *node, start int, previous string) {
	s.visits++
	if s.visits%1024 == 1 {
		s.checkContext()
	}
	if s.stopped {
		return
	}

	if current.terminal {
		word := string(s.progress[start:])
		if word >= previous {
			s.complete(word, start)
			if s.stopped {
				return
			}
		}
	}

	for _, letter := range current.keys {
		if !s.letters.take(letter) {
			continue
		}
		s.progress = append(s.progress, letter)
		s.used++
		s.walk(current.children[letter], start, previous)
		s.used--
		s.progress = s.progress[:len(s.progress)-1]
		s.letters.put(letter)
		if s.stopped {
			return
		}
	}
}

// complete handles a word that ends at the current node: either the letters
// are all used and a solution is emitted, or a new word is started from the
// root if the word bound allows it.
func (s *search) complete(word string, start int) {
	s.words++
	defer func() { s.words-- }()

	if s.used == s.target {
		s.count++
		if !s.yield(s.count, s.solution()) {
			s.stopped = true
			return
		}
		s.checkContext()
		return
	}
	if s.maxWords > 0 && s.words >= s.maxWords {
		return
	}
	s.progress = append(s.progress, ' ')
	s.walk(s.root, len(s.progress), word)
	s.progress = s.progress[:len(s.progress)-1]
}

// checkContext stops the search once its context is done. The context is
// checked after every yield and every 1024 trie visits.
func (s *search) checkContext() {
	if err := s.ctx.Err(); err != nil {
		s.err = err
		s.stopped = true
	}
}

// solution sorts the include words together with the words in progress.
func (s *search) solution() Solution {
	words := make([]string, 0, len(s.include)+s.words)
	words = append(words, s.include...)
	for _, w := range bytes.Fields(s.progress) {
		words = append(words, string(w))
	}
	sort.Strings(words)
	return Solution{Words: words}
}
