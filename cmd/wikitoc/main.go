package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/tkondo/wikitoc"
	"github.com/tkondo/wikitoc/goquery"
	wikihttp "github.com/tkondo/wikitoc/http"
	"github.com/tkondo/wikitoc/scrape"
	wikislog "github.com/tkondo/wikitoc/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	fetcher wikitoc.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// One gate per process: every fetch this process issues shares the
	// rate budget, whichever command triggered it.
	m.fetcher = wikislog.NewFetcher(wikihttp.NewFetcher(), logger)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Scraper: &scrape.Pipeline{
			Policy:    wikitoc.DefaultPolicy(),
			Gate:      scrape.NewGate(wikitoc.MinRequestInterval),
			Fetcher:   m.fetcher,
			Extractor: goquery.NewExtractor(),
		},
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikitoc"),
		kong.Description("Wikipedia table-of-contents extractor with robots.txt compliance."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikitoc --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kongCtx.Run(deps)
}
