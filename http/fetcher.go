// Package http provides the HTTP-based implementations of
// pagelinks.Fetcher and pagelinks.LinkService.
package http

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/pagelinks"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the client on outbound requests.
const DefaultUserAgent = "pagelinks/1.0 (Link Extractor)"

// Ensure Fetcher implements pagelinks.Fetcher at compile time.
var _ pagelinks.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP GET requests.
// It does not execute JavaScript; pages are taken as served.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent on requests.
// Defaults to DefaultUserAgent if not specified.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Non-200 responses and responses with a non-text media type are errors:
// ENOTFOUND for HTTP 404, EUNAVAILABLE for other statuses and transport
// failures, EINVALID for bodies that aren't text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", pagelinks.Errorf(pagelinks.EINVALID, "invalid request URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", pagelinks.Errorf(pagelinks.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", pagelinks.Errorf(pagelinks.ENOTFOUND, "HTTP 404 for %s", url)
	case resp.StatusCode != http.StatusOK:
		return "", pagelinks.Errorf(pagelinks.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	if err := checkContentType(resp.Header.Get("Content-Type")); err != nil {
		return "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pagelinks.Errorf(pagelinks.EUNAVAILABLE, "read body from %s: %v", url, err)
	}

	return string(body), nil
}

// checkContentType rejects responses whose declared media type is not text.
// A missing Content-Type header is allowed through; servers that omit it
// usually serve HTML.
func checkContentType(header string) error {
	if header == "" {
		return nil
	}

	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return pagelinks.Errorf(pagelinks.EINVALID, "unparseable Content-Type %q", header)
	}

	if strings.HasPrefix(mediaType, "text/") || mediaType == "application/xhtml+xml" {
		return nil
	}

	return pagelinks.Errorf(pagelinks.EINVALID, "non-text response type %q", mediaType)
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
