package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	anagram "github.com/sarthakjha889/go-anagram-trie"
	"github.com/sarthakjha889/go-anagram-trie/cmd/anagram/config"
)

type flags struct {
	configPath  string
	dictionary  string
	include     []string
	exclude     []string
	maxWords    int
	maxLetters  int
	keepAccents bool
	verbose     bool
	timeout     time.Duration
	metricsFile string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "anagram [phrase...]",
		Short: "Find every anagram of a phrase in a dictionary",
		Long: `anagram lists every combination of dictionary words that uses exactly
the letters of the phrase. Words can be forced into every anagram with
--include, banned with --exclude, and the number of words bounded with
--max-words. Without a phrase the command asks for one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, f, args, stdin, stdout, stderr)
			if err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
			}
			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "config file (default $HOME/.anagram/anagram.yaml)")
	fl.StringVarP(&f.dictionary, "dict", "d", "", "dictionary file, one word per line")
	fl.StringSliceVarP(&f.include, "include", "i", nil, "words that must be in every anagram")
	fl.StringSliceVarP(&f.exclude, "exclude", "x", nil, "words that must not be in any anagram")
	fl.IntVarP(&f.maxWords, "max-words", "m", 0, "maximum number of words per anagram, 0 for no limit")
	fl.IntVar(&f.maxLetters, "max-letters", 0, "refuse phrases with more letters than this")
	fl.BoolVar(&f.keepAccents, "keep-accents", false, "skip dictionary words with accented letters instead of folding them")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log debug information to stderr")
	fl.DurationVar(&f.timeout, "timeout", 0, "give up after this long, 0 for no limit")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write search metrics in Prometheus text format to this file")
	return cmd
}

// settings merges the config file with the flags the user set explicitly.
func settings(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	fl := cmd.Flags()
	if fl.Changed("dict") {
		cfg.Dictionary = f.dictionary
	}
	if fl.Changed("include") {
		cfg.Include = f.include
	}
	if fl.Changed("exclude") {
		cfg.Exclude = f.exclude
	}
	if fl.Changed("max-words") {
		cfg.MaxWords = f.maxWords
	}
	if fl.Changed("max-letters") {
		cfg.MaxLetters = f.maxLetters
	}
	if fl.Changed("keep-accents") {
		cfg.KeepAccents = f.keepAccents
	}
	if fl.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).
		With(slog.String("run_id", uuid.NewString()))
}

func run(cmd *cobra.Command, f flags, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := settings(cmd, f)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, cfg.Verbose)

	phrase := strings.Join(args, " ")
	if strings.TrimSpace(phrase) == "" {
		p := newPrompter(stdin, stdout)
		if phrase, err = p.interview(&cfg); err != nil {
			return err
		}
	}

	dict, err := anagram.LoadDictionary(cfg.Dictionary)
	if err != nil {
		return err
	}

	var reg *prometheus.Registry
	var metrics *anagram.Metrics
	if f.metricsFile != "" {
		reg = prometheus.NewRegistry()
		metrics = anagram.NewMetrics(reg)
	}

	a, err := anagram.New(phrase, dict, anagram.Options{
		Include:     cfg.Include,
		Exclude:     cfg.Exclude,
		MaxWords:    cfg.MaxWords,
		MaxLetters:  cfg.MaxLetters,
		KeepAccents: cfg.KeepAccents,
		Logger:      logger,
		Metrics:     metrics,
	})
	if err != nil {
		return err
	}
	logger.Debug("searching",
		slog.String("phrase", phrase),
		slog.String("letters", a.Letters()),
		slog.Any("include", cfg.Include),
		slog.Int("max_words", cfg.MaxWords),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	err = newPrinter(stdout).print(ctx, a)

	if reg != nil {
		if werr := prometheus.WriteToTextfile(f.metricsFile, reg); werr != nil {
			logger.Error("failed to write metrics", slog.String("path", f.metricsFile), slog.String("error", werr.Error()))
			if err == nil {
				err = fmt.Errorf("failed to write metrics: %w", werr)
			}
		}
	}
	return err
}
