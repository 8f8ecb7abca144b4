package mock

import (
	wolfspider "github.com/marc-shade/wolf-spider"
)

var _ wolfspider.Frontier = (*Frontier)(nil)

// Frontier is a mock implementation of wolfspider.Frontier.
type Frontier struct {
	OfferFn        func(u wolfspider.NormalizedURL) bool
	NextFn         func() (wolfspider.NormalizedURL, bool)
	MarkVisitedFn  func(u wolfspider.NormalizedURL)
	VisitedCountFn func() int
	PendingCountFn func() int
}

func (f *Frontier) Offer(u wolfspider.NormalizedURL) bool {
	return f.OfferFn(u)
}

func (f *Frontier) Next() (wolfspider.NormalizedURL, bool) {
	return f.NextFn()
}

func (f *Frontier) MarkVisited(u wolfspider.NormalizedURL) {
	f.MarkVisitedFn(u)
}

func (f *Frontier) VisitedCount() int {
	return f.VisitedCountFn()
}

func (f *Frontier) PendingCount() int {
	return f.PendingCountFn()
}
