// Package fs provides filesystem-backed supporting infrastructure:
// an on-disk cache of fetched pages and a Fetcher wrapper that uses it.
package fs

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Cache stores fetched HTML on disk, one file per URL.
// Filenames are the xxhash of the URL, so any URL maps to a safe path.
// There is no expiry; delete the directory to invalidate.
type Cache struct {
	dir string
}

// NewCache creates a Cache rooted at dir. The directory is created lazily
// on the first Put.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// Get returns the cached HTML for url, or ok=false on a miss.
func (c *Cache) Get(url string) (html string, ok bool) {
	b, err := os.ReadFile(c.path(url))
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Put stores the HTML for url.
func (c *Cache) Put(url, html string) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.path(url), []byte(html), 0o644)
}

func (c *Cache) path(url string) string {
	name := strconv.FormatUint(xxhash.Sum64String(url), 16) + ".html"
	return filepath.Join(c.dir, name)
}
