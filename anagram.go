package anagram

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"
	"time"
)

// DefaultMaxLetters is the longest phrase, in letters left after include
// words are removed, that a search accepts unless Options says otherwise.
const DefaultMaxLetters = 64

// Options configures an Anagram. The zero value finds every anagram.
type Options struct {
	// Include lists words that appear in every anagram. Their letters are
	// taken out of the phrase before searching.
	Include []string
	// Exclude lists dictionary words that may not appear in any anagram.
	Exclude []string
	// MaxWords bounds the number of words found by the search in a single
	// anagram. Include words do not count. Zero means no bound.
	MaxWords int
	// MaxLetters bounds the letters left to search, and so the recursion
	// depth. Zero means DefaultMaxLetters.
	MaxLetters int
	// KeepAccents indexes dictionary words as they are written instead of
	// folding accented letters, so an entry such as café is left out rather
	// than stored as cafe. The phrase itself is always folded.
	KeepAccents bool
	// Logger receives debug and info records. Nil discards them.
	Logger *slog.Logger
	// Metrics records search statistics. Nil records nothing.
	Metrics *Metrics
}

// Anagram finds the anagrams of one phrase in one dictionary.
type Anagram struct {
	input      string
	letters    letters
	target     int
	dictionary string
	include    []string
	maxWords   int
	trie       *Trie
	logger     *slog.Logger
	metrics    *Metrics

	started bool
	count   int
	err     error
}

// New prepares a search for the anagrams of input. It normalises the phrase,
// removes the letters of the include words and indexes every dictionary word
// that is not excluded. It fails with an *InsufficientLettersError if an
// include word cannot be spelled from the phrase.
func New(input string, dict Dictionary, opts Options) (*Anagram, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if strings.TrimSpace(input) == "" {
		return nil, ErrNoInput
	}

	phrase := normalisePhrase(input)
	available := newLetters(phrase)

	include := make([]string, 0, len(opts.Include))
	for _, word := range opts.Include {
		word = fold(strings.TrimSpace(word))
		if word != "" {
			include = append(include, word)
		}
	}
	if err := available.reduce(include, input); err != nil {
		return nil, err
	}

	maxLetters := opts.MaxLetters
	if maxLetters <= 0 {
		maxLetters = DefaultMaxLetters
	}
	target := available.Len()
	if target > maxLetters {
		return nil, fmt.Errorf("%w: %d letters to place, limit is %d", ErrInputTooLong, target, maxLetters)
	}

	trie := NewTrie()
	if opts.KeepAccents {
		trie.WithoutNormalisation()
	}

	excluded := make(map[string]struct{}, len(opts.Exclude))
	for _, word := range opts.Exclude {
		if word, ok := normaliseWord(word, trie.normalised); ok {
			excluded[word] = struct{}{}
		}
	}

	skipped := 0
	for _, entry := range dict.Words {
		if word, ok := normaliseWord(entry, trie.normalised); ok {
			if _, ok := excluded[word]; ok {
				skipped++
				continue
			}
		}
		trie.Insert(entry)
	}

	logger.Debug("anagram index built",
		slog.String("dictionary", dict.Name),
		slog.Int("entries", len(dict.Words)),
		slog.Int("words", trie.Len()),
		slog.Int("excluded", skipped),
		slog.String("letters", available.String()),
	)

	return &Anagram{
		input:      input,
		letters:    available,
		target:     target,
		dictionary: dict.Name,
		include:    include,
		maxWords:   opts.MaxWords,
		trie:       trie,
		logger:     logger,
		metrics:    opts.Metrics,
	}, nil
}

// Input returns the phrase as it was given to New.
func (a *Anagram) Input() string { return a.input }

// Letters returns the letters left to search, in alphabetical order.
func (a *Anagram) Letters() string { return a.letters.String() }

// Dictionary returns the name of the dictionary the anagrams come from.
func (a *Anagram) Dictionary() string { return a.dictionary }

// Trie returns the dictionary index. It must not be inserted into from inside
// a range over Anagrams: the search holds the trie's read lock while it
// yields, so Insert would block forever.
func (a *Anagram) Trie() *Trie { return a.trie }

// Count returns the number of anagrams found so far.
func (a *Anagram) Count() int { return a.count }

// Err returns the context error that cut the search short, if any.
func (a *Anagram) Err() error { return a.err }

// Anagrams returns the anagrams of the phrase, numbered from 1 in the order
// they are found. Words within an anagram never decrease alphabetically, so
// each set of words is reported once. The sequence can be ranged over once;
// later ranges yield nothing. Stopping early, or cancelling ctx, ends the
// search; Err reports the cancellation. The trie is read-locked until the
// range loop ends.
func (a *Anagram) Anagrams(ctx context.Context) iter.Seq2[int, Solution] {
	return func(yield func(int, Solution) bool) {
		if a.started {
			return
		}
		a.started = true
		if err := ctx.Err(); err != nil {
			a.err = err
			return
		}

		a.trie.mu.RLock()
		defer a.trie.mu.RUnlock()

		s := &search{
			ctx:      ctx,
			root:     a.trie.root,
			letters:  a.letters,
			target:   a.target,
			maxWords: a.maxWords,
			include:  a.include,
			progress: make([]byte, 0, 2*a.target),
			yield: func(i int, sol Solution) bool {
				a.count = i
				return yield(i, sol)
			},
		}

		start := time.Now()
		s.run()
		elapsed := time.Since(start)

		outcome := "complete"
		switch {
		case s.err != nil:
			a.err = s.err
			outcome = "cancelled"
		case s.stopped:
			outcome = "stopped"
		}
		a.metrics.observeSearch(outcome, s.count, s.visits, elapsed.Seconds())
		a.logger.Info("anagram search finished",
			slog.String("outcome", outcome),
			slog.Int("anagrams", s.count),
			slog.Int("visits", s.visits),
			slog.Duration("elapsed", elapsed),
		)
	}
}

// Summary describes how many anagrams were found for the phrase.
func (a *Anagram) Summary() string {
	return fmt.Sprintf("There were %d unique anagrams made from '%s' using the dictionary '%s'.",
		a.count, a.input, a.dictionary)
}
