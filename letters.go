package anagram

import "strings"

// letters is a multiset of the letters a-z, counted by position in the alphabet.
type letters [26]int

func newLetters(s string) letters {
	var l letters
	for i := 0; i < len(s); i++ {
		l[s[i]-'a']++
	}
	return l
}

// take removes one letter from the multiset, reporting false if none is left.
func (l *letters) take(letter byte) bool {
	if l[letter-'a'] == 0 {
		return false
	}
	l[letter-'a']--
	return true
}

// put returns a letter previously removed by take.
func (l *letters) put(letter byte) {
	l[letter-'a']++
}

// Len returns the number of letters left.
func (l *letters) Len() int {
	n := 0
	for _, c := range l {
		n += c
	}
	return n
}

// String returns the remaining letters in alphabetical order.
func (l *letters) String() string {
	var b strings.Builder
	for i, c := range l {
		for ; c > 0; c-- {
			b.WriteByte(byte('a' + i))
		}
	}
	return b.String()
}

// reduce removes the letters of every include word from the multiset. input is
// the phrase as the user typed it and is only used to describe a failure.
// On failure the multiset is left as it was.
func (l *letters) reduce(include []string, input string) error {
	reduced := *l
	for _, word := range include {
		for _, r := range word {
			if !isLetter(r) || !reduced.take(byte(r)) {
				return &InsufficientLettersError{Letter: r, Word: word, Input: input}
			}
		}
	}
	*l = reduced
	return nil
}
