package http

import (
	"context"
	"net/url"

	"github.com/fwojciec/pagelinks"
)

// Ensure LinkService implements pagelinks.LinkService at compile time.
var _ pagelinks.LinkService = (*LinkService)(nil)

// LinkService fetches pages over HTTP and extracts their links.
// It owns the boundary validation: the requested URL must be absolute
// before any network I/O happens.
type LinkService struct {
	fetcher   pagelinks.Fetcher
	extractor pagelinks.LinkExtractor
}

// NewLinkService creates a LinkService from a fetcher and an extractor.
func NewLinkService(fetcher pagelinks.Fetcher, extractor pagelinks.LinkExtractor) *LinkService {
	return &LinkService{
		fetcher:   fetcher,
		extractor: extractor,
	}
}

// FetchLinks retrieves the page at rawURL and returns its links in document
// order, with relative hrefs resolved against rawURL.
// Returns EINVALID if rawURL is not an absolute URL.
func (s *LinkService) FetchLinks(ctx context.Context, rawURL string) ([]pagelinks.Link, error) {
	base, err := url.Parse(rawURL)
	if err != nil || !base.IsAbs() {
		return nil, pagelinks.Errorf(pagelinks.EINVALID, "invalid URL: %q", rawURL)
	}

	html, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	return s.extractor.ExtractLinks(html, rawURL)
}
