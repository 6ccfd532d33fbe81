/*
Package anagram finds every multi-word anagram of a phrase that can be built
from the words of a dictionary. The dictionary is held in a prefix trie which
is walked letter by letter, spending the letters of the phrase as it goes.
Words may be forced into every anagram, banned from all of them, and the
number of words in an anagram may be bounded.
*/
package anagram
