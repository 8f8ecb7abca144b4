// Package goquery extracts anchor links from HTML using CSS selection.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	wolfspider "github.com/marc-shade/wolf-spider"
)

// Ensure LinkExtractor implements wolfspider.LinkExtractor at compile time.
var _ wolfspider.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor finds anchor hrefs in HTML documents.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks returns the href of every anchor in document order.
// Hrefs are returned as written, absolute or relative; non-navigational
// schemes (javascript:, mailto:, tel:, data:) are skipped. Duplicates are
// preserved.
func (e *LinkExtractor) ExtractLinks(baseURL string, content string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, wolfspider.Errorf(wolfspider.EINVALID, "parse HTML for %s: %v", baseURL, err)
	}

	var hrefs []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if isNonHTTPLink(href) {
			return
		}
		hrefs = append(hrefs, href)
	})
	return hrefs, nil
}

// isNonHTTPLink reports whether a href uses a scheme that never leads to a page.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
