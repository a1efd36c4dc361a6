package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/larynjahor/brackets/pkg"
	"github.com/larynjahor/brackets/pkg/bracket"
	"github.com/larynjahor/brackets/util"
	"gopkg.in/yaml.v3"
)

// FileName is looked up in the working directory and its parents.
const FileName = ".brackets.yaml"

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Pairs      []Pair   `yaml:"pairs"`
	Extensions []string `yaml:"extensions"`
	Workers    int      `yaml:"workers"`
	Format     string   `yaml:"format"`
	Debug      bool     `yaml:"debug"`
}

type Pair struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

func Default() Config {
	return Config{
		Format: FormatText,
	}
}

// Load reads path on top of Default.
func Load(path string) (Config, error) {
	ret := Default()

	marshaled, err := os.ReadFile(path)
	if err != nil {
		return ret, err
	}

	if err := yaml.Unmarshal(marshaled, &ret); err != nil {
		return ret, fmt.Errorf("%w: %s: %w", pkg.ErrInvalidConfig, path, err)
	}

	if err := ret.Validate(); err != nil {
		return ret, fmt.Errorf("%s: %w", path, err)
	}

	return ret, nil
}

// Find returns the closest FileName in dir or its parents.
func Find(dir string) (string, bool) {
	dir = filepath.Clean(dir)

	for {
		candidate := filepath.Join(dir, FileName)

		_, err := os.Stat(candidate)
		switch {
		case err == nil:
			return candidate, true
		case !errors.Is(err, fs.ErrNotExist):
			return "", false
		}

		up := util.Up(dir)
		if up == dir || up == "" {
			return "", false
		}

		dir = up
	}
}

func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", pkg.ErrInvalidConfig, c.Format)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: negative workers %d", pkg.ErrInvalidConfig, c.Workers)
	}

	for _, p := range c.Pairs {
		if utf8.RuneCountInString(p.Open) != 1 || utf8.RuneCountInString(p.Close) != 1 {
			return fmt.Errorf("%w: pair %q %q must be single runes", pkg.ErrInvalidConfig, p.Open, p.Close)
		}
	}

	return nil
}

// Pairing returns the configured pairing, or the default one when no pairs
// are set.
func (c *Config) Pairing() (*bracket.Pairing, error) {
	if len(c.Pairs) == 0 {
		return bracket.DefaultPairing(), nil
	}

	pairs := make([]bracket.Pair, 0, len(c.Pairs))

	for _, p := range c.Pairs {
		open, _ := utf8.DecodeRuneInString(p.Open)
		closer, _ := utf8.DecodeRuneInString(p.Close)

		pairs = append(pairs, bracket.Pair{Open: open, Close: closer})
	}

	return bracket.NewPairing(pairs...)
}
