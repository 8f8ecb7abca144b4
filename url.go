package wolfspider

import (
	"net/url"
	"strings"
)

// NormalizedURL is the identity of a page for crawl purposes: a URL with
// its fragment removed. Two URLs address the same page iff their
// NormalizedURL values are equal, so the type is comparable and used as a
// map key. The zero value is invalid and fails every scope check.
type NormalizedURL struct {
	Scheme   string
	Host     string
	Path     string
	RawQuery string
}

// Normalize canonicalizes an absolute URL by dropping its fragment.
// Scheme, host, path and query are preserved as-is: no trailing-slash
// collapsing, no default-port stripping, no percent-decoding changes.
// Malformed input yields the zero NormalizedURL, which downstream scope
// checks reject.
func Normalize(rawURL string) NormalizedURL {
	u, err := url.Parse(rawURL)
	if err != nil {
		return NormalizedURL{}
	}
	return NormalizedURL{
		Scheme:   u.Scheme,
		Host:     u.Host,
		Path:     u.Path,
		RawQuery: u.RawQuery,
	}
}

// Resolve interprets href relative to n using standard relative-URL
// resolution and normalizes the result. An unparseable href yields the
// zero NormalizedURL.
func (n NormalizedURL) Resolve(href string) NormalizedURL {
	ref, err := url.Parse(href)
	if err != nil {
		return NormalizedURL{}
	}
	return Normalize(n.toURL().ResolveReference(ref).String())
}

// IsZero reports whether n is the zero (invalid) NormalizedURL.
func (n NormalizedURL) IsZero() bool {
	return n == NormalizedURL{}
}

// String reassembles the URL without its fragment.
func (n NormalizedURL) String() string {
	return n.toURL().String()
}

func (n NormalizedURL) toURL() *url.URL {
	return &url.URL{
		Scheme:   n.Scheme,
		Host:     n.Host,
		Path:     n.Path,
		RawQuery: n.RawQuery,
	}
}

// ArtifactKey derives the deterministic artifact name for a page from its
// path: leading and trailing slashes trimmed, interior slashes replaced
// with underscores, the empty path mapped to "index". Distinct pages can
// collide on a key; the renderer's existence check turns a collision into
// a skip rather than an error.
func ArtifactKey(u NormalizedURL) string {
	p := strings.Trim(u.Path, "/")
	if p == "" {
		return "index"
	}
	return strings.ReplaceAll(p, "/", "_")
}
