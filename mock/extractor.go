package mock

import "github.com/fwojciec/pagelinks"

var _ pagelinks.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of pagelinks.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]pagelinks.Link, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]pagelinks.Link, error) {
	return e.ExtractLinksFn(html, baseURL)
}
