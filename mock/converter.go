package mock

import (
	wolfspider "github.com/marc-shade/wolf-spider"
)

var _ wolfspider.Converter = (*Converter)(nil)

// Converter is a mock implementation of wolfspider.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
