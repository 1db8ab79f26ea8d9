package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagelinks"
	"github.com/fwojciec/pagelinks/crawl"
	"github.com/fwojciec/pagelinks/fs"
	"github.com/fwojciec/pagelinks/goquery"
	pagehttp "github.com/fwojciec/pagelinks/http"
	pageslog "github.com/fwojciec/pagelinks/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// newParser builds the kong parser. Flag defaults are interpolated from the
// package constants so the CLI cannot drift from them.
func newParser(cli *CLI, stdout, stderr io.Writer) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("pagelinks"),
		kong.Description("Extract hyperlinks from web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"default_timeout":     pagehttp.DefaultFetchTimeout.String(),
			"default_concurrency": strconv.Itoa(crawl.DefaultConcurrency),
		},
	)
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := newParser(cli, stdout, stderr)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	userAgent := cli.UserAgent
	if userAgent == "" {
		userAgent = pagehttp.DefaultUserAgent
	}

	var fetcher pagelinks.Fetcher = pagehttp.NewFetcher(
		pagehttp.WithTimeout(cli.Timeout),
		pagehttp.WithUserAgent(userAgent),
	)
	if cli.CacheDir != "" {
		fetcher = fs.NewCachingFetcher(fetcher, fs.NewCache(cli.CacheDir))
	}
	defer fetcher.Close()

	var svc pagelinks.LinkService = pagehttp.NewLinkService(fetcher, goquery.NewExtractor())
	svc = pageslog.NewLinkService(svc, logger)

	deps := &Dependencies{
		Stdout:      stdout,
		Stderr:      stderr,
		Service:     svc,
		Limiter:     crawl.NewDomainLimiter(cli.Rate),
		Concurrency: cli.Concurrency,
	}

	return cli.Execute(ctx, deps)
}
