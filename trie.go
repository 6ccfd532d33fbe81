package anagram

import (
	"sort"
	"sync"
)

// Trie is a prefix tree holding the dictionary words an anagram may be built from.
// Once a search starts the trie is read-only until the search finishes.
type Trie struct {
	root       *node
	mu         sync.RWMutex
	normalised bool
	words      int
}

// node is a single letter position in a Trie. children maps the next letter to
// its node and keys holds the same letters in ascending order, so walks over
// the trie are deterministic. terminal marks the end of a complete word.
type node struct {
	letter   byte
	children map[byte]*node
	keys     []byte
	terminal bool
}

func newNode(letter byte) *node {
	return &node{letter: letter, children: make(map[byte]*node)}
}

// NewTrie creates a new empty trie. By default entries are normalised on insert,
// so accented letters are folded to their plain form (é becomes e).
func NewTrie() *Trie {
	t := new(Trie)
	t.root = newNode(0)
	t.WithNormalisation()
	return t
}

// WithNormalisation sets the Trie to fold diacritics on insert and lookup.
// For example, Jürgen will be stored as jurgen.
func (t *Trie) WithNormalisation() *Trie {
	t.normalised = true
	return t
}

// WithoutNormalisation sets the Trie to only lowercase entries, so Jürgen is
// rejected as it contains a letter outside a-z.
func (t *Trie) WithoutNormalisation() *Trie {
	t.normalised = false
	return t
}

// Insert inserts words into the Trie. Entries that are blank, or contain
// anything but letters once normalised, are skipped. Inserting a word that is
// already present changes nothing.
func (t *Trie) Insert(entries ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, entry := range entries {
		word, ok := normaliseWord(entry, t.normalised)
		if !ok {
			continue
		}
		t.insertInternal(word)
	}
}

// insertInternal performs the actual insertion without locking.
func (t *Trie) insertInternal(word string) {
	current := t.root
	for i := 0; i < len(word); i++ {
		child := current.findChild(word[i])
		if child == nil {
			child = newNode(word[i])
			current.addChild(child)
		}
		current = child
	}
	if !current.terminal {
		current.terminal = true
		t.words++
	}
}

// Contains reports whether word was inserted into the trie.
func (t *Trie) Contains(word string) bool {
	word, ok := normaliseWord(word, t.normalised)
	if !ok {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	current := t.root
	for i := 0; i < len(word); i++ {
		current = current.findChild(word[i])
		if current == nil {
			return false
		}
	}
	return current.terminal
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.words
}

// findChild returns the child for letter, or nil if there is none.
func (n *node) findChild(letter byte) *node {
	return n.children[letter]
}

func (n *node) addChild(child *node) {
	n.children[child.letter] = child
	i := sort.Search(len(n.keys), func(i int) bool { return n.keys[i] >= child.letter })
	n.keys = append(n.keys, 0)
	copy(n.keys[i+1:], n.keys[i:])
	n.keys[i] = child.letter
}
