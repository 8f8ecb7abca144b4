package wolfspider

// Site describes a crawl target: the normalized root URL and the scope
// domain derived from it. A Site is created once at crawl start and never
// mutated.
type Site struct {
	// Root is the normalized URL the crawl starts from.
	Root NormalizedURL

	// Domain is the host component of the root URL. Only URLs whose host
	// matches it exactly are in scope.
	Domain string
}

// NewSite derives a Site from a root URL.
// Returns EINVALID if the URL is not an absolute http(s) URL.
func NewSite(rawRoot string) (*Site, error) {
	root := Normalize(rawRoot)
	if root.Scheme != "http" && root.Scheme != "https" {
		return nil, Errorf(EINVALID, "root URL %q must use http or https", rawRoot)
	}
	if root.Host == "" {
		return nil, Errorf(EINVALID, "root URL %q has no host", rawRoot)
	}
	return &Site{Root: root, Domain: root.Host}, nil
}

// InScope reports whether u is eligible for crawling: an http(s) URL whose
// host equals the scope domain exactly. Subdomains are out of scope, and
// the zero NormalizedURL is always rejected.
func (s *Site) InScope(u NormalizedURL) bool {
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host == s.Domain
}

// Namespace returns the output namespace artifacts for this site are
// stored under.
func (s *Site) Namespace() string {
	return s.Domain
}
