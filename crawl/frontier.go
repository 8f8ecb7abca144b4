package crawl

import (
	"sync"

	wolfspider "github.com/marc-shade/wolf-spider"
)

// Compile-time interface verification.
var _ wolfspider.Frontier = (*SetFrontier)(nil)

// SetFrontier tracks visited and pending URLs as two exact, disjoint sets.
// Next returns pending URLs in unspecified order. It is safe for
// concurrent use by multiple goroutines.
type SetFrontier struct {
	mu      sync.Mutex
	visited map[wolfspider.NormalizedURL]struct{}
	pending map[wolfspider.NormalizedURL]struct{}
}

// NewSetFrontier creates an empty SetFrontier.
func NewSetFrontier() *SetFrontier {
	return &SetFrontier{
		visited: make(map[wolfspider.NormalizedURL]struct{}),
		pending: make(map[wolfspider.NormalizedURL]struct{}),
	}
}

// Offer schedules u for crawling.
// Returns false if u is already pending or visited.
func (f *SetFrontier) Offer(u wolfspider.NormalizedURL) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.visited[u]; ok {
		return false
	}
	if _, ok := f.pending[u]; ok {
		return false
	}
	f.pending[u] = struct{}{}
	return true
}

// Next removes and returns one pending URL. Map iteration makes the choice
// unspecified; the only guarantee is that repeated calls exhaust the
// pending set.
func (f *SetFrontier) Next() (wolfspider.NormalizedURL, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for u := range f.pending {
		delete(f.pending, u)
		return u, true
	}
	return wolfspider.NormalizedURL{}, false
}

// MarkVisited records u as visited, removing it from pending if present so
// the two sets stay disjoint. Idempotent.
func (f *SetFrontier) MarkVisited(u wolfspider.NormalizedURL) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pending, u)
	f.visited[u] = struct{}{}
}

// VisitedCount returns the number of visited URLs.
func (f *SetFrontier) VisitedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.visited)
}

// PendingCount returns the number of pending URLs.
func (f *SetFrontier) PendingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}
