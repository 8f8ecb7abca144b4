package slog

import (
	"context"
	"log/slog"
	"time"

	wolfspider "github.com/marc-shade/wolf-spider"
)

// Ensure LoggingRenderer implements wolfspider.Renderer.
var _ wolfspider.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with structured logging.
type LoggingRenderer struct {
	next   wolfspider.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next wolfspider.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs the outcome.
func (r *LoggingRenderer) Render(ctx context.Context, page *wolfspider.Page, key string) (err error) {
	defer func(begin time.Time) {
		r.logger.Info("render",
			"url", page.URL,
			"key", key,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(ctx, page, key)
}
