package anagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// terminals lists every word stored under n in walk order.
func terminals(n *node, prefix string) []string {
	var words []string
	if n.terminal {
		words = append(words, prefix)
	}
	for _, k := range n.keys {
		words = append(words, terminals(n.children[k], prefix+string(k))...)
	}
	return words
}

func TestTrie(t *testing.T) {
	t.Run("Insert and Contains", func(t *testing.T) {
		tr := NewTrie()
		tr.Insert("cat", "car", "ca")
		assert.True(t, tr.Contains("cat"))
		assert.True(t, tr.Contains("ca"))
		assert.False(t, tr.Contains("c"))
		assert.False(t, tr.Contains("cats"))
		assert.Equal(t, 3, tr.Len())
	})

	t.Run("Idempotent insert", func(t *testing.T) {
		once := NewTrie()
		once.Insert("tea", "eat")
		twice := NewTrie()
		twice.Insert("tea", "eat", "tea", "TEA ")
		assert.Equal(t, once.Len(), twice.Len())
		assert.Equal(t, terminals(once.root, ""), terminals(twice.root, ""))
	})

	t.Run("Rejects blank and non-letter entries", func(t *testing.T) {
		tr := NewTrie()
		tr.Insert("", "   ", "don't", "x-ray", "abc1")
		assert.Equal(t, 0, tr.Len())
		assert.Empty(t, tr.root.children)
		assert.False(t, tr.root.terminal)
	})

	t.Run("Normalisation", func(t *testing.T) {
		tr := NewTrie()
		tr.Insert(" Jürgen\n", "Café")
		assert.True(t, tr.Contains("jurgen"))
		assert.True(t, tr.Contains("Jürgen"))
		assert.True(t, tr.Contains("cafe"))
	})

	t.Run("Without normalisation", func(t *testing.T) {
		tr := NewTrie().WithoutNormalisation()
		tr.Insert("Jürgen", "Monday")
		assert.False(t, tr.Contains("jurgen"))
		assert.True(t, tr.Contains("monday"))
		assert.Equal(t, 1, tr.Len())
	})

	t.Run("Children in letter order", func(t *testing.T) {
		tr := NewTrie()
		tr.Insert("zoo", "apple", "mango", "banana")
		assert.Equal(t, []byte("abmz"), tr.root.keys)
		assert.Equal(t, []string{"apple", "banana", "mango", "zoo"}, terminals(tr.root, ""))
	})

	t.Run("findChild", func(t *testing.T) {
		tr := NewTrie()
		tr.Insert("go")
		g := tr.root.findChild('g')
		if assert.NotNil(t, g) {
			assert.Equal(t, byte('g'), g.letter)
			assert.False(t, g.terminal)
			assert.True(t, g.findChild('o').terminal)
		}
		assert.Nil(t, tr.root.findChild('x'))
	})
}
