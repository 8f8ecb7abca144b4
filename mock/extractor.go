package mock

import (
	wolfspider "github.com/marc-shade/wolf-spider"
)

var _ wolfspider.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of wolfspider.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(baseURL string, content string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(baseURL string, content string) ([]string, error) {
	return e.ExtractLinksFn(baseURL, content)
}

var _ wolfspider.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of wolfspider.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*wolfspider.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*wolfspider.ExtractResult, error) {
	return e.ExtractFn(html)
}
