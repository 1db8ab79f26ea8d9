package pagelinks

import "context"

// Link represents a single hyperlink found on a page.
// URL is the resolved absolute target; Text is the anchor's visible label
// with runs of whitespace collapsed to single spaces.
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// LinkExtractor extracts links from HTML.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns the links it contains, in
	// document order. Relative hrefs are resolved against baseURL.
	// Anchors whose href cannot be parsed or resolved are skipped.
	// Returns EINVALID if baseURL is not an absolute URL.
	ExtractLinks(html string, baseURL string) ([]Link, error)
}

// LinkService fetches a page and returns the links it contains.
type LinkService interface {
	// FetchLinks retrieves the page at url and extracts its links,
	// using url as the base for resolving relative hrefs.
	// Returns EINVALID if url is not an absolute URL.
	FetchLinks(ctx context.Context, url string) ([]Link, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
