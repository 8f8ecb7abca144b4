package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	wolfspider "github.com/marc-shade/wolf-spider"
	"github.com/marc-shade/wolf-spider/mock"
	spiderslog "github.com/marc-shade/wolf-spider/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("logs render with key and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Renderer{
			RenderFn: func(ctx context.Context, page *wolfspider.Page, key string) error {
				return nil
			},
		}

		renderer := spiderslog.NewLoggingRenderer(inner, logger)
		page := &wolfspider.Page{URL: "http://a.com/docs", Content: "<html></html>"}
		err := renderer.Render(context.Background(), page, "docs")

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "render")
		assert.Contains(t, output, "url=http://a.com/docs")
		assert.Contains(t, output, "key=docs")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Renderer{
			RenderFn: func(ctx context.Context, page *wolfspider.Page, key string) error {
				return wolfspider.Errorf(wolfspider.EINTERNAL, "disk full")
			},
		}

		renderer := spiderslog.NewLoggingRenderer(inner, logger)
		page := &wolfspider.Page{URL: "http://a.com/docs", Content: ""}
		err := renderer.Render(context.Background(), page, "docs")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "disk full")
	})
}
