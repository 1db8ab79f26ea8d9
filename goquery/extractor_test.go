package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagelinks"
	"github.com/fwojciec/pagelinks/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	extractor := goquery.NewExtractor()

	t.Run("extracts a single absolute link", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://example.com">Link</a>`

		links, err := extractor.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/", links[0].URL)
		assert.Equal(t, "Link", links[0].Text)
	})

	t.Run("resolves relative hrefs against the base URL", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/one">Link 1</a><a href="https://google.com">Link 2</a>`

		links, err := extractor.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "https://example.com/one", links[0].URL)
		assert.Equal(t, "Link 1", links[0].Text)
		assert.Equal(t, "https://google.com/", links[1].URL)
		assert.Equal(t, "Link 2", links[1].Text)
	})

	t.Run("absolute hrefs ignore the base URL", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://other.org/page">Elsewhere</a>`

		links, err := extractor.ExtractLinks(html, "https://example.com/docs/")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://other.org/page", links[0].URL)
	})

	t.Run("skips anchors without an href attribute", func(t *testing.T) {
		t.Parallel()

		html := `<a>No href</a>`

		links, err := extractor.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("resolves fragment-only hrefs against the page URL", func(t *testing.T) {
		t.Parallel()

		html := `<a href="#section">Jump</a>`

		links, err := extractor.ExtractLinks(html, "https://example.com/page")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/page#section", links[0].URL)
		assert.Equal(t, "Jump", links[0].Text)
	})

	t.Run("empty href resolves to the page URL", func(t *testing.T) {
		t.Parallel()

		html := `<a href="">Self</a>`

		links, err := extractor.ExtractLinks(html, "https://example.com/page?q=1")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/page?q=1", links[0].URL)
		assert.Equal(t, "Self", links[0].Text)
	})

	t.Run("resolves query-only hrefs against the page URL", func(t *testing.T) {
		t.Parallel()

		html := `<a href="?page=2">Next</a>`

		links, err := extractor.ExtractLinks(html, "https://example.com/list")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/list?page=2", links[0].URL)
	})

	t.Run("resolves scheme-relative hrefs against the base scheme", func(t *testing.T) {
		t.Parallel()

		html := `<a href="//cdn.example.com/lib.js">CDN</a>`

		links, err := extractor.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://cdn.example.com/lib.js", links[0].URL)
	})

	t.Run("skips unparseable hrefs and keeps extracting", func(t *testing.T) {
		t.Parallel()

		html := `<a href="ht!tp://">Bad</a><a href="/good">Good</a>`

		links, err := extractor.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/good", links[0].URL)
		assert.Equal(t, "Good", links[0].Text)
	})

	t.Run("preserves document order", func(t *testing.T) {
		t.Parallel()

		html := `<div><a href="/a">A</a></div><p><a href="/b">B</a><a href="/c">C</a></p>`

		links, err := extractor.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 3)
		assert.Equal(t, "https://example.com/a", links[0].URL)
		assert.Equal(t, "https://example.com/b", links[1].URL)
		assert.Equal(t, "https://example.com/c", links[2].URL)
	})

	t.Run("preserves duplicate links", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/same">First</a><a href="/same">Second</a>`

		links, err := extractor.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, links[0].URL, links[1].URL)
		assert.Equal(t, "First", links[0].Text)
		assert.Equal(t, "Second", links[1].Text)
	})

	t.Run("normalizes whitespace in link text", func(t *testing.T) {
		t.Parallel()

		html := "<a href=\"/x\">  Link \n\t Two  </a>"

		links, err := extractor.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "Link Two", links[0].Text)
	})

	t.Run("concatenates descendant text in document order", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/x"><span>Read</span> the <em>docs</em></a>`

		links, err := extractor.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "Read the docs", links[0].Text)
	})

	t.Run("anchor with no text yields an empty label", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/x"><img src="/icon.png"></a>`

		links, err := extractor.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/x", links[0].URL)
		assert.Equal(t, "", links[0].Text)
	})

	t.Run("non-HTTP absolute schemes are kept", func(t *testing.T) {
		t.Parallel()

		html := `<a href="mailto:team@example.com">Mail us</a>`

		links, err := extractor.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "mailto:team@example.com", links[0].URL)
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		html := `<div><a href="/open">Unclosed<p><a href="/second">Second`

		links, err := extractor.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "https://example.com/open", links[0].URL)
		assert.Equal(t, "https://example.com/second", links[1].URL)
	})

	t.Run("empty document yields no links", func(t *testing.T) {
		t.Parallel()

		links, err := extractor.ExtractLinks("", "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("ignores non-anchor elements with hrefs", func(t *testing.T) {
		t.Parallel()

		html := `<link href="/style.css"><area href="/map"><a href="/real">Real</a>`

		links, err := extractor.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/real", links[0].URL)
	})

	t.Run("rejects an invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := extractor.ExtractLinks(`<a href="/x">X</a>`, "ht!tp://")

		require.Error(t, err)
		assert.Equal(t, pagelinks.EINVALID, pagelinks.ErrorCode(err))
	})

	t.Run("rejects a relative base URL", func(t *testing.T) {
		t.Parallel()

		_, err := extractor.ExtractLinks(`<a href="/x">X</a>`, "/just/a/path")

		require.Error(t, err)
		assert.Equal(t, pagelinks.EINVALID, pagelinks.ErrorCode(err))
	})
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	t.Run("collapses interior whitespace runs", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Link Two", goquery.NormalizeText("  Link \n Two  "))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Link Two", goquery.NormalizeText("Link Two"))
	})

	t.Run("whitespace-only input normalizes to empty", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", goquery.NormalizeText(" \t\n "))
	})
}
