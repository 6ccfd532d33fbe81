// Command anagram prints every anagram of a phrase that can be made from the
// words of a dictionary file.
//
// Usage:
//
//	anagram "Richard Neal" -d english.txt --include dire --exclude card --max-words 3
//	anagram                 # prompts for the phrase and options
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
