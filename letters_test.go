package anagram

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetters(t *testing.T) {
	l := newLetters("banana")
	assert.Equal(t, 6, l.Len())
	assert.Equal(t, "aaabnn", l.String())

	assert.True(t, l.take('b'))
	assert.False(t, l.take('b'))
	assert.False(t, l.take('z'))
	l.put('b')
	assert.Equal(t, newLetters("banana"), l)
}

func TestLettersReduce(t *testing.T) {
	tests := []struct {
		name    string
		phrase  string
		include []string
		want    string
		letter  rune
	}{
		{name: "none", phrase: "richardneal", want: "aacdehilnrr"},
		{name: "one word", phrase: "richardneal", include: []string{"dire"}, want: "aachlnr"},
		{name: "two words", phrase: "abc", include: []string{"a", "c"}, want: "b"},
		{name: "missing letter", phrase: "abc", include: []string{"ad"}, letter: 'd'},
		{name: "not enough", phrase: "abc", include: []string{"a", "a"}, letter: 'a'},
		{name: "not a letter", phrase: "abc", include: []string{"b-c"}, letter: '-'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLetters(tt.phrase)
			err := l.reduce(tt.include, "Raw "+tt.phrase)
			if tt.letter == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.want, l.String())
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInsufficientLetters))
			var lerr *InsufficientLettersError
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, tt.letter, lerr.Letter)
			assert.Equal(t, "Raw "+tt.phrase, lerr.Input)
			assert.Contains(t, err.Error(), "Raw "+tt.phrase)
			assert.Equal(t, tt.phrase, l.String(), "multiset must be untouched on failure")
		})
	}
}
