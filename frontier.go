package wolfspider

// Frontier tracks which URLs have been visited and which are pending.
// The two sets are disjoint: every URL ever accepted into the frontier is
// in exactly one of them.
type Frontier interface {
	// Offer schedules a URL for crawling.
	// Returns false if the URL is already pending or visited.
	Offer(u NormalizedURL) bool

	// Next removes and returns a pending URL. The choice of URL is
	// unspecified; the only guarantee is eventual exhaustion. The bool
	// result is false when no URLs are pending.
	Next() (NormalizedURL, bool)

	// MarkVisited records u as visited. It must be called for every URL
	// returned by Next, before further offers of u are evaluated.
	// Idempotent.
	MarkVisited(u NormalizedURL)

	// VisitedCount returns the number of visited URLs.
	VisitedCount() int

	// PendingCount returns the number of pending URLs.
	PendingCount() int
}
