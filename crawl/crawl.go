package crawl

import (
	"context"
	"net/url"
	"sync/atomic"

	"github.com/fwojciec/pagelinks"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of in-flight fetches when the
// Runner's Concurrency field is unset.
const DefaultConcurrency = 3

// Runner fetches links for a batch of URLs concurrently.
// One failing URL never aborts the batch; its error is recorded in the
// corresponding PageResult instead.
type Runner struct {
	Service     pagelinks.LinkService
	Limiter     pagelinks.DomainLimiter
	Concurrency int
}

// PageResult holds the outcome for a single URL in a batch.
type PageResult struct {
	URL   string
	Links []pagelinks.Link
	Err   error
}

// ProgressFunc reports batch progress. It may be called concurrently from
// multiple workers.
type ProgressFunc func(completed, total int, url string, err error)

// Run fetches links for every URL in urls and returns one PageResult per
// URL, in input order. progress may be nil.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) []PageResult {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]PageResult, len(urls))
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			links, err := r.fetchOne(gctx, u)
			results[i] = PageResult{URL: u, Links: links, Err: err}
			if progress != nil {
				progress(int(completed.Add(1)), len(urls), u, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (r *Runner) fetchOne(ctx context.Context, rawURL string) ([]pagelinks.Link, error) {
	if r.Limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, pagelinks.Errorf(pagelinks.EINVALID, "invalid URL: %q", rawURL)
		}
		if err := r.Limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}
	return r.Service.FetchLinks(ctx, rawURL)
}
