// Package yaml loads the optional configuration file.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/wikidaily"
	yamlv3 "gopkg.in/yaml.v3"
)

// Config represents the structure of the configuration file. Zero values
// mean "not set" and leave the built-in defaults in place.
type Config struct {
	Output    string         `yaml:"output"`
	BaseURL   string         `yaml:"base_url"`
	UserAgent string         `yaml:"user_agent"`
	Featured  FeaturedConfig `yaml:"featured"`
	Words     WordsConfig    `yaml:"words"`
}

// FeaturedConfig configures the featured-article pipeline.
type FeaturedConfig struct {
	Languages    []string `yaml:"languages"`
	LookbackDays *int     `yaml:"lookback_days"`
	Endpoint     string   `yaml:"endpoint"`
}

// WordsConfig configures the word-of-the-day pipeline.
type WordsConfig struct {
	Sources []wikidaily.SourceConfig `yaml:"sources"`
}

// LoadFile reads the configuration file at path. An empty path returns
// (nil, nil). A path that was given but cannot be read is an error.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates configuration. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yamlv3.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, wikidaily.Errorf(wikidaily.EINVALID, "failed to parse config file: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.Featured.LookbackDays != nil && *c.Featured.LookbackDays < 0 {
		return wikidaily.Errorf(wikidaily.EINVALID, "featured.lookback_days must not be negative")
	}
	for _, lang := range c.Featured.Languages {
		if lang == "" {
			return wikidaily.Errorf(wikidaily.EINVALID, "featured.languages contains an empty entry")
		}
	}

	seen := make(map[string]bool, len(c.Words.Sources))
	for i := range c.Words.Sources {
		src := &c.Words.Sources[i]
		if err := src.Validate(); err != nil {
			return err
		}
		if seen[src.ID] {
			return wikidaily.Errorf(wikidaily.EINVALID, "duplicate source id %q", src.ID)
		}
		seen[src.ID] = true
	}
	return nil
}

// Sources returns the configured word sources, or the defaults when the
// file lists none.
func (c *Config) Sources() []wikidaily.SourceConfig {
	if c == nil || len(c.Words.Sources) == 0 {
		return wikidaily.DefaultSources()
	}
	return c.Words.Sources
}

// Languages returns the configured featured languages, or the defaults.
func (c *Config) Languages() []string {
	if c == nil || len(c.Featured.Languages) == 0 {
		return wikidaily.DefaultLanguages()
	}
	return c.Featured.Languages
}

// LookbackDays returns the configured lookback window, or the default.
func (c *Config) LookbackDays() int {
	if c == nil || c.Featured.LookbackDays == nil {
		return wikidaily.DefaultLookbackDays
	}
	return *c.Featured.LookbackDays
}
