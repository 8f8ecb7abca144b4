// Package crawl provides crawl orchestration: the loop that pops URLs from
// the frontier, fetches and renders pages, and feeds discovered links back
// into the frontier until the site is exhausted.
package crawl

import (
	"context"
	"log/slog"
	"sync"

	wolfspider "github.com/marc-shade/wolf-spider"
	"golang.org/x/sync/errgroup"
)

// State identifies where a Crawler is in its lifecycle.
type State int

// Crawler lifecycle states.
const (
	StateIdle State = iota
	StateRunning
	StateDone
)

// Crawler drives a crawl: pop a URL from the frontier, fetch it, render it
// to an artifact, extract its links, and offer in-scope candidates back to
// the frontier. A Crawler runs at most one crawl.
type Crawler struct {
	Fetcher  wolfspider.Fetcher
	Links    wolfspider.LinkExtractor
	Renderer wolfspider.Renderer
	Logger   *slog.Logger

	// Concurrency is the number of URLs fetched in parallel.
	// Values below 2 select the sequential reference loop.
	Concurrency int

	mu    sync.Mutex
	state State
}

// Result summarizes a finished crawl.
type Result struct {
	Visited  int
	Rendered int
	Failed   int
	Bytes    int
}

// ProgressEvent is emitted after each processed URL.
type ProgressEvent struct {
	URL     string
	Visited int
	Known   int // visited + pending
	Err     error
}

// ProgressFunc receives progress events.
type ProgressFunc func(ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	url      string
	links    []wolfspider.NormalizedURL
	bytes    int
	rendered bool
	err      error
}

// Run crawls site until the frontier is exhausted or ctx is canceled.
// Fetch and render failures are isolated to their URL and never stop the
// crawl. On cancellation the partial result is returned; artifacts already
// written remain valid and a re-run resumes via the renderer's existence
// checks.
func (c *Crawler) Run(ctx context.Context, site *wolfspider.Site, progress ProgressFunc) (*Result, error) {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return nil, wolfspider.Errorf(wolfspider.EINVALID, "crawl already started")
	}
	c.state = StateRunning
	c.mu.Unlock()
	defer c.setState(StateDone)

	if !site.InScope(site.Root) {
		return nil, wolfspider.Errorf(wolfspider.EINVALID, "root URL %q is out of scope", site.Root.String())
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	frontier := NewSetFrontier()
	frontier.Offer(site.Root)

	var result Result
	if c.Concurrency > 1 {
		c.runPool(ctx, site, frontier, logger, &result, progress)
	} else {
		c.runLoop(ctx, site, frontier, logger, &result, progress)
	}
	return &result, nil
}

// State returns the crawler's lifecycle state.
func (c *Crawler) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Crawler) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// runLoop is the sequential reference loop: exactly one URL is in flight
// at a time.
func (c *Crawler) runLoop(ctx context.Context, site *wolfspider.Site, frontier *SetFrontier, logger *slog.Logger, result *Result, progress ProgressFunc) {
	for ctx.Err() == nil {
		u, ok := frontier.Next()
		if !ok {
			return
		}
		frontier.MarkVisited(u)
		res := c.processURL(ctx, u, logger)
		c.handleResult(res, site, frontier, logger, result, progress)
	}
}

// runPool processes URLs with a worker pool. The coordinator owns the
// frontier: URLs are marked visited at dispatch time, before any worker
// can surface a concurrent offer for them, and discovered links are
// offered back only by the coordinator.
func (c *Crawler) runPool(ctx context.Context, site *wolfspider.Site, frontier *SetFrontier, logger *slog.Logger, result *Result, progress ProgressFunc) {
	workCh := make(chan wolfspider.NormalizedURL, c.Concurrency)
	resultCh := make(chan pageResult)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < c.Concurrency; i++ {
		g.Go(func() error {
			for u := range workCh {
				res := c.processURL(gctx, u, logger)
				select {
				case resultCh <- res:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(resultCh)
	}()

	pending := 0
	var next *wolfspider.NormalizedURL
	if u, ok := frontier.Next(); ok {
		frontier.MarkVisited(u)
		next = &u
	}

coordinatorLoop:
	for {
		if next == nil && pending == 0 {
			break coordinatorLoop
		}
		if ctx.Err() != nil {
			break coordinatorLoop
		}

		if next != nil {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case workCh <- *next:
				pending++
				next = nil
			case res := <-resultCh:
				pending--
				c.handleResult(res, site, frontier, logger, result, progress)
			}
		} else {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case res, ok := <-resultCh:
				if !ok {
					break coordinatorLoop
				}
				pending--
				c.handleResult(res, site, frontier, logger, result, progress)
			}
		}

		if next == nil {
			if u, ok := frontier.Next(); ok {
				frontier.MarkVisited(u)
				next = &u
			}
		}
	}

	// Signal workers to stop and account for results already in flight.
	close(workCh)
	for res := range resultCh {
		c.handleResult(res, site, frontier, logger, result, progress)
	}
}

// processURL fetches, renders and expands a single URL. It never touches
// the frontier; discovered links are resolved and returned for the caller
// to filter and offer.
func (c *Crawler) processURL(ctx context.Context, u wolfspider.NormalizedURL, logger *slog.Logger) pageResult {
	res := pageResult{url: u.String()}

	content, err := c.Fetcher.Fetch(ctx, res.url)
	if err != nil {
		res.err = err
		return res
	}

	page := &wolfspider.Page{URL: res.url, Content: content}
	if err := c.Renderer.Render(ctx, page, wolfspider.ArtifactKey(u)); err != nil {
		logger.Warn("render failed", "url", res.url, "err", err)
	} else {
		res.rendered = true
		res.bytes = len(content)
	}

	hrefs, err := c.Links.ExtractLinks(res.url, content)
	if err != nil {
		logger.Warn("link extraction failed", "url", res.url, "err", err)
	}
	for _, href := range hrefs {
		candidate := u.Resolve(href)
		if candidate.IsZero() {
			continue
		}
		res.links = append(res.links, candidate)
	}
	return res
}

// handleResult applies a page result to the frontier and crawl totals, and
// reports progress. Only the driving loop calls it, so frontier offers for
// a URL always observe that URL's MarkVisited.
func (c *Crawler) handleResult(res pageResult, site *wolfspider.Site, frontier *SetFrontier, logger *slog.Logger, result *Result, progress ProgressFunc) {
	result.Visited++

	if res.err != nil {
		result.Failed++
		logger.Warn("fetch failed", "url", res.url, "err", res.err)
		c.report(progress, frontier, res.url, res.err)
		return
	}

	if res.rendered {
		result.Rendered++
		result.Bytes += res.bytes
	}

	for _, candidate := range res.links {
		if !site.InScope(candidate) {
			continue
		}
		frontier.Offer(candidate)
	}

	c.report(progress, frontier, res.url, nil)
}

func (c *Crawler) report(progress ProgressFunc, frontier *SetFrontier, url string, err error) {
	if progress == nil {
		return
	}
	visited := frontier.VisitedCount()
	progress(ProgressEvent{
		URL:     url,
		Visited: visited,
		Known:   visited + frontier.PendingCount(),
		Err:     err,
	})
}
