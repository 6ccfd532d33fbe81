// Package config loads the anagram command's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	anagram "github.com/sarthakjha889/go-anagram-trie"
)

// Config holds the settings a run starts from before flags are applied.
type Config struct {
	Dictionary  string   `yaml:"dictionary"`
	Include     []string `yaml:"include,omitempty"`
	Exclude     []string `yaml:"exclude,omitempty"`
	MaxWords    int      `yaml:"max_words"`
	MaxLetters  int      `yaml:"max_letters"`
	KeepAccents bool     `yaml:"keep_accents"`
	Verbose     bool     `yaml:"verbose"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Dictionary: "english.txt",
		MaxLetters: anagram.DefaultMaxLetters,
	}
}

// DefaultPath is $HOME/.anagram/anagram.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".anagram", "anagram.yaml"), nil
}

// Load reads the configuration at path on top of the defaults. An empty path
// means DefaultPath, which is allowed not to exist; an explicit path must.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings no run could use.
func (c Config) Validate() error {
	if c.Dictionary == "" {
		return errors.New("dictionary must not be empty")
	}
	if c.MaxWords < 0 {
		return fmt.Errorf("max_words must not be negative, got %d", c.MaxWords)
	}
	if c.MaxLetters < 0 {
		return fmt.Errorf("max_letters must not be negative, got %d", c.MaxLetters)
	}
	return nil
}

// Save writes c to path as YAML, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
