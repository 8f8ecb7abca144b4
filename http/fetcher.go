// Package http provides an HTTP-based implementation of wolfspider.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	wolfspider "github.com/marc-shade/wolf-spider"
	"golang.org/x/net/html/charset"
)

// DefaultTimeout bounds a single page fetch.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent identifies the crawler to servers.
const DefaultUserAgent = "wolf-spider/1.0"

// Ensure Fetcher implements wolfspider.Fetcher at compile time.
var _ wolfspider.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page content over HTTP. Response bodies are decoded to
// UTF-8 using the charset declared in the Content-Type header or sniffed
// from the body.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page body for url. Missing pages map to ENOTFOUND,
// other HTTP and transport failures to EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", wolfspider.Errorf(wolfspider.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", wolfspider.Errorf(wolfspider.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", wolfspider.Errorf(wolfspider.ENOTFOUND, "HTTP 404 for %s", url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", wolfspider.Errorf(wolfspider.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", wolfspider.Errorf(wolfspider.EINTERNAL, "decode %s: %v", url, err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", wolfspider.Errorf(wolfspider.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
