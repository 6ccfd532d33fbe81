package anagram

import (
	"context"
	"fmt"
	"os"
	"strings"
)

func Example() {
	dict := Dictionary{Name: "pets", Words: []string{"act", "cat", "dog", "god", "tac"}}
	a, err := New("Dog, cat!", dict, Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, sol := range a.Anagrams(context.Background()) {
		fmt.Println(i, sol)
	}
	fmt.Println(a.Summary())

	// Output:
	// 1 act dog
	// 2 act god
	// 3 cat dog
	// 4 cat god
	// 5 dog tac
	// 6 god tac
	// There were 6 unique anagrams made from 'Dog, cat!' using the dictionary 'pets'.
}

func Example_include() {
	dict := Dictionary{Name: "letters", Words: []string{"a", "b", "c"}}
	a, err := New("abc", dict, Options{Include: []string{"a"}})
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, sol := range a.Anagrams(context.Background()) {
		fmt.Println(i, sol)
	}

	// Output:
	// 1 a b c
}

func ExampleReport() {
	dict, _ := ReadDictionary("words.txt", strings.NewReader("eat\nate\ntea\neta\n"))
	a, _ := New("eat", dict, Options{})
	Report(context.Background(), os.Stdout, a)

	// Output:
	//    1: ate
	//    2: eat
	//    3: eta
	//    4: tea
	// There were 4 unique anagrams made from 'eat' using the dictionary 'words.txt'.
}
