package mock

import (
	"context"

	wolfspider "github.com/marc-shade/wolf-spider"
)

var _ wolfspider.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of wolfspider.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, page *wolfspider.Page, key string) error
}

func (r *Renderer) Render(ctx context.Context, page *wolfspider.Page, key string) error {
	return r.RenderFn(ctx, page, key)
}
