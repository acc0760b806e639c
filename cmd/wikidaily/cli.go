package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wikidaily"
	"github.com/fwojciec/wikidaily/fs"
	"github.com/fwojciec/wikidaily/publish"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time
	Logger *slog.Logger

	Output    *fs.Store
	Languages []string
	Sources   []wikidaily.SourceConfig
	Featured  *publish.FeaturedPublisher
	Words     *publish.WordPublisher
	Site      *publish.Site
	Converter wikidaily.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output    string        `short:"o" env:"WIKIDAILY_OUTPUT" help:"Output directory (default \"dist\")"`
	Config    string        `short:"c" env:"WIKIDAILY_CONFIG" help:"YAML configuration file"`
	UserAgent string        `name:"user-agent" help:"User-Agent header sent to Wikimedia"`
	Timeout   time.Duration `default:"0s" help:"Per-request timeout; 0 waits indefinitely"`
	Rate      float64       `default:"0" help:"Maximum requests per second; 0 disables pacing"`
	BaseURL   string        `name:"base-url" env:"WIKIDAILY_BASE_URL" help:"Public URL of the output directory; enables sitemap.xml"`
	Verbose   bool          `short:"v" help:"Log every request at debug level"`

	Run     RunCmd     `cmd:"" help:"Publish featured articles and words, then the index and manifest"`
	Tfa     TfaCmd     `cmd:"" help:"Publish featured articles only"`
	Wotd    WotdCmd    `cmd:"" help:"Publish words of the day only"`
	Preview PreviewCmd `cmd:"" help:"Fetch one word source and print it without writing files"`
	Sources SourcesCmd `cmd:"" help:"List configured word sources and featured languages"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct{}

// TfaCmd is the "tfa" subcommand.
type TfaCmd struct{}

// WotdCmd is the "wotd" subcommand.
type WotdCmd struct{}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	ID   string `arg:"" help:"Source id, e.g. en_wotd"`
	JSON bool   `help:"Print the JSON record instead of Markdown"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct{}
