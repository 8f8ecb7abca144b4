package wolfspider

import "context"

// Fetcher retrieves page content from URLs.
type Fetcher interface {
	// Fetch returns the page body for the URL.
	// Failures carry an application error code: ENOTFOUND for missing
	// pages, EUNAVAILABLE for transport or server failures.
	Fetch(ctx context.Context, url string) (content string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
