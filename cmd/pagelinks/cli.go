package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/pagelinks"
	"github.com/fwojciec/pagelinks/crawl"
)

// Dependencies holds the services and writers used to execute a command.
type Dependencies struct {
	Stdout io.Writer
	Stderr io.Writer

	Service     pagelinks.LinkService
	Limiter     pagelinks.DomainLimiter
	Concurrency int
}

// CLI defines the command-line interface.
type CLI struct {
	URLs []string `arg:"" name:"url" help:"Page URLs to extract links from."`

	JSON        bool          `help:"Emit results as JSON."`
	Timeout     time.Duration `default:"${default_timeout}" help:"HTTP request timeout."`
	Concurrency int           `default:"${default_concurrency}" help:"Maximum concurrent fetches."`
	Rate        float64       `default:"1" help:"Maximum requests per second per domain."`
	UserAgent   string        `name:"user-agent" help:"User-Agent header for outbound requests."`
	CacheDir    string        `name:"cache-dir" type:"path" help:"Cache fetched pages in this directory."`
	Verbose     bool          `short:"v" help:"Enable debug logging to stderr."`
}

// Execute fetches links for every URL and writes the results.
// Per-URL failures are reported without aborting the batch; an error is
// returned only if every URL failed.
func (c *CLI) Execute(ctx context.Context, deps *Dependencies) error {
	runner := &crawl.Runner{
		Service:     deps.Service,
		Limiter:     deps.Limiter,
		Concurrency: deps.Concurrency,
	}
	results := runner.Run(ctx, c.URLs, nil)

	if c.JSON {
		return c.writeJSON(deps.Stdout, results)
	}
	return c.writeText(deps.Stdout, deps.Stderr, results)
}

// pageJSON is the JSON shape for one page's results in batch mode.
type pageJSON struct {
	URL   string           `json:"url"`
	Links []pagelinks.Link `json:"links"`
	Error string           `json:"error,omitempty"`
}

func (c *CLI) writeJSON(stdout io.Writer, results []crawl.PageResult) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	// A single URL emits a flat array of links.
	if len(results) == 1 {
		r := results[0]
		if r.Err != nil {
			return r.Err
		}
		links := r.Links
		if links == nil {
			links = []pagelinks.Link{}
		}
		return enc.Encode(links)
	}

	pages := make([]pageJSON, 0, len(results))
	failed := 0
	for _, r := range results {
		p := pageJSON{URL: r.URL, Links: r.Links}
		if p.Links == nil {
			p.Links = []pagelinks.Link{}
		}
		if r.Err != nil {
			failed++
			p.Error = pagelinks.ErrorMessage(r.Err)
		}
		pages = append(pages, p)
	}
	if err := enc.Encode(pages); err != nil {
		return err
	}
	return allFailed(failed, len(results))
}

func (c *CLI) writeText(stdout, stderr io.Writer, results []crawl.PageResult) error {
	failed := 0
	for _, r := range results {
		if len(results) > 1 {
			fmt.Fprintf(stdout, "# %s\n", r.URL)
		}
		if r.Err != nil {
			failed++
			fmt.Fprintf(stderr, "error: %s: %s\n", r.URL, pagelinks.ErrorMessage(r.Err))
			continue
		}
		for _, link := range r.Links {
			fmt.Fprintf(stdout, "%s\t%s\n", link.URL, link.Text)
		}
	}
	return allFailed(failed, len(results))
}

func allFailed(failed, total int) error {
	if total > 0 && failed == total {
		return fmt.Errorf("all %d URL(s) failed", total)
	}
	return nil
}
