package pagelinks

import "context"

// Fetcher retrieves the HTML body of a URL.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body as text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the Fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
