package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wikidaily"
	"github.com/fwojciec/wikidaily/etree"
	"github.com/fwojciec/wikidaily/fs"
	"github.com/fwojciec/wikidaily/goquery"
	"github.com/fwojciec/wikidaily/htmltomarkdown"
	wikihttp "github.com/fwojciec/wikidaily/http"
	"github.com/fwojciec/wikidaily/publish"
	wslog "github.com/fwojciec/wikidaily/slog"
	"github.com/fwojciec/wikidaily/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// DefaultOutput is the output directory used when neither a flag nor the
// configuration file names one.
const DefaultOutput = "dist"

// Main represents the program.
type Main struct {
	// Now returns the current instant. Set before calling Run() to pin
	// the day anchor and the week-of-year clock.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Now: time.Now,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikidaily"),
		kong.Description("Publish Wikipedia featured articles and Wiktionary words of the day as JSON files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikidaily --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := yaml.LoadFile(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set WIKIDAILY_CONFIG or --config to a readable YAML file\n")
		return err
	}

	if err := m.wire(deps, cli, cfg); err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// wire resolves settings and builds the services. Flags and environment
// override the configuration file, which overrides the defaults.
func (m *Main) wire(deps *Dependencies, cli *CLI, cfg *yaml.Config) error {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	var fileOutput, fileBaseURL, fileUserAgent, fileEndpoint string
	if cfg != nil {
		fileOutput, fileBaseURL = cfg.Output, cfg.BaseURL
		fileUserAgent, fileEndpoint = cfg.UserAgent, cfg.Featured.Endpoint
	}
	output := firstNonEmpty(cli.Output, fileOutput, DefaultOutput)
	baseURL := firstNonEmpty(cli.BaseURL, fileBaseURL)
	userAgent := firstNonEmpty(cli.UserAgent, fileUserAgent, wikidaily.UserAgent)
	endpoint := firstNonEmpty(fileEndpoint, wikihttp.DefaultFeaturedEndpoint)

	deps.Languages = cfg.Languages()
	deps.Sources = cfg.Sources()

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level})

	site := publish.NewSite(nil, fs.NewIndexRenderer())
	logger := slog.New(handler).With("run", site.RunID)
	deps.Logger = logger

	deps.Output = fs.NewStore(output)
	client := wikihttp.NewClient(
		wikihttp.WithUserAgent(userAgent),
		wikihttp.WithTimeout(cli.Timeout),
		wikihttp.WithRateLimit(cli.Rate),
		wikihttp.WithFeaturedEndpoint(endpoint),
	)

	var (
		store    wikidaily.Store                 = deps.Output
		loader   wikidaily.TemplateLoader        = client
		featured wikidaily.FeaturedService       = client
		registry wikidaily.WordExtractorRegistry = goquery.NewRegistry(deps.Now)
	)
	if cli.Verbose {
		store = wslog.NewLoggingStore(store, logger)
		loader = wslog.NewLoggingTemplateLoader(loader, logger)
		featured = wslog.NewLoggingFeaturedService(featured, logger)
		registry = wslog.NewLoggingRegistry(registry, logger)
	}

	site.Store = store
	if baseURL != "" {
		site.BaseURL = baseURL
		site.Sitemap = etree.NewSitemapBuilder()
	}
	deps.Site = site

	deps.Featured = publish.NewFeaturedPublisher(featured, store, logger)
	deps.Featured.LookbackDays = cfg.LookbackDays()
	deps.Words = &publish.WordPublisher{
		Loader:   loader,
		Registry: registry,
		Store:    store,
		Logger:   logger,
	}
	deps.Converter = htmltomarkdown.NewConverter()

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
