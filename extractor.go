package wolfspider

// LinkExtractor finds hyperlinks in page content.
type LinkExtractor interface {
	// ExtractLinks returns the href values of anchors in document order.
	// Values may be absolute or relative; resolution against the base URL
	// is the caller's responsibility. Duplicates are preserved, since
	// deduplication is the frontier's job.
	ExtractLinks(baseURL string, content string) ([]string, error)
}

// ExtractResult holds readable content pulled out of a page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML, with boilerplate
	// (nav, footer, sidebar) removed.
	ContentHTML string
}

// ContentExtractor extracts the main content of a page, removing
// boilerplate.
type ContentExtractor interface {
	Extract(html string) (*ExtractResult, error)
}
