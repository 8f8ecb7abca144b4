package wolfspider

import "context"

// Page is a fetched page awaiting rendering.
type Page struct {
	URL     string
	Content string // raw HTML
}

// Renderer persists a page as an artifact under a deterministic key.
type Renderer interface {
	// Render writes the artifact for page under key, or succeeds without
	// writing if an artifact for key already exists. The existence check
	// is what makes re-running a crawl idempotent.
	Render(ctx context.Context, page *Page, key string) error
}
