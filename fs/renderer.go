// Package fs persists page artifacts as markdown files on disk.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	wolfspider "github.com/marc-shade/wolf-spider"
)

// Ensure Renderer implements wolfspider.Renderer at compile time.
var _ wolfspider.Renderer = (*Renderer)(nil)

// Renderer writes one markdown artifact per page under a namespace
// directory. An existing artifact short-circuits rendering, which is what
// makes re-running a crawl against the same site idempotent: the on-disk
// files are the only cross-run state.
type Renderer struct {
	baseDir   string
	namespace string
	converter wolfspider.Converter
	extractor wolfspider.ContentExtractor
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithContentExtractor narrows artifacts to readable content extracted
// from the page before markdown conversion. Without it the full page is
// converted.
func WithContentExtractor(e wolfspider.ContentExtractor) Option {
	return func(r *Renderer) {
		r.extractor = e
	}
}

// NewRenderer creates a Renderer storing artifacts under baseDir/namespace.
func NewRenderer(baseDir, namespace string, converter wolfspider.Converter, opts ...Option) *Renderer {
	r := &Renderer{
		baseDir:   baseDir,
		namespace: namespace,
		converter: converter,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the artifact path for a key.
func (r *Renderer) Path(key string) string {
	return filepath.Join(r.baseDir, r.namespace, key+".md")
}

// Render converts the page to markdown and writes it to the key's path.
// A no-op success if the artifact already exists.
func (r *Renderer) Render(ctx context.Context, page *wolfspider.Page, key string) error {
	path := r.Path(key)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	var title string
	html := page.Content
	if r.extractor != nil {
		// Fall back to the full page when extraction finds nothing.
		if extracted, err := r.extractor.Extract(page.Content); err == nil && extracted.ContentHTML != "" {
			title = extracted.Title
			html = extracted.ContentHTML
		}
	}

	markdown, err := r.converter.Convert(html)
	if err != nil {
		return wolfspider.Errorf(wolfspider.EINTERNAL, "convert %s: %v", page.URL, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(formatArtifact(page.URL, title, markdown)), 0644)
}

// formatArtifact wraps markdown content in YAML frontmatter.
func formatArtifact(sourceURL, title, markdown string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(sourceURL)
	if title != "" {
		b.WriteString("\ntitle: ")
		b.WriteString(title)
	}
	b.WriteString("\nhash: ")
	b.WriteString(fmt.Sprintf("%x", xxhash.Sum64String(markdown)))
	b.WriteString("\ncrawled: ")
	b.WriteString(time.Now().Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)
	return b.String()
}
