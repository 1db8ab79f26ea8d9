package fs

import (
	"context"

	"github.com/fwojciec/pagelinks"
)

// Ensure CachingFetcher implements pagelinks.Fetcher at compile time.
var _ pagelinks.Fetcher = (*CachingFetcher)(nil)

// CachingFetcher wraps a Fetcher with an on-disk page cache.
// Hits are served from disk without touching the network; misses are
// fetched and written through. A cache write failure does not fail the
// fetch.
type CachingFetcher struct {
	next  pagelinks.Fetcher
	cache *Cache
}

// NewCachingFetcher creates a CachingFetcher over next using cache.
func NewCachingFetcher(next pagelinks.Fetcher, cache *Cache) *CachingFetcher {
	return &CachingFetcher{next: next, cache: cache}
}

// Fetch returns the cached HTML for url if present, fetching and caching
// it otherwise.
func (f *CachingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if html, ok := f.cache.Get(url); ok {
		return html, nil
	}

	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	_ = f.cache.Put(url, html)
	return html, nil
}

// Close closes the underlying Fetcher.
func (f *CachingFetcher) Close() error {
	return f.next.Close()
}
