// Package goquery provides a goquery-based implementation of
// pagelinks.LinkExtractor. Parsing is lenient per the HTML5 error-recovery
// rules, so malformed markup never fails extraction.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagelinks"
)

// Ensure Extractor implements pagelinks.LinkExtractor at compile time.
var _ pagelinks.LinkExtractor = (*Extractor)(nil)

// Extractor extracts anchor links from HTML documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractLinks parses html and returns every anchor carrying an href
// attribute, in document order. Each href is resolved against baseURL;
// anchors whose href cannot be parsed or resolved are skipped without
// aborting extraction. Duplicate targets are preserved.
//
// Returns EINVALID if baseURL is not an absolute URL.
func (e *Extractor) ExtractLinks(html string, baseURL string) ([]pagelinks.Link, error) {
	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return nil, pagelinks.Errorf(pagelinks.EINVALID, "invalid base URL: %q", baseURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagelinks.Errorf(pagelinks.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []pagelinks.Link
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}

		resolved, ok := resolveHref(base, href)
		if !ok {
			return
		}

		links = append(links, pagelinks.Link{
			URL:  resolved,
			Text: NormalizeText(sel.Text()),
		})
	})

	return links, nil
}

// resolveHref resolves an href value against a base URL and returns the
// canonical absolute string form. An href that is already an absolute URL
// is used as-is; anything else, including scheme-relative (//host/path),
// fragment-only, and query-only forms, resolves against base per RFC 3986.
// Returns ok=false if the href cannot be parsed.
func resolveHref(base *url.URL, href string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}

	resolved := base.ResolveReference(ref)
	if !resolved.IsAbs() {
		return "", false
	}

	// Canonical serialization writes an explicit path for bare-origin
	// URLs: https://example.com renders as https://example.com/.
	if resolved.Host != "" && resolved.Path == "" {
		resolved.Path = "/"
	}

	return resolved.String(), true
}

// NormalizeText collapses every run of whitespace in s to a single space
// and trims leading and trailing whitespace. Idempotent.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
