package goquery_test

import (
	"testing"

	"github.com/marc-shade/wolf-spider/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("returns hrefs in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/first">1</a>
			<p><a href="second">2</a></p>
			<a href="http://a.com/third">3</a>
		</body></html>`

		e := goquery.NewLinkExtractor()
		hrefs, err := e.ExtractLinks("http://a.com/", html)
		require.NoError(t, err)

		assert.Equal(t, []string{"/first", "second", "http://a.com/third"}, hrefs)
	})

	t.Run("preserves duplicates", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/page">a</a><a href="/page">b</a>`

		e := goquery.NewLinkExtractor()
		hrefs, err := e.ExtractLinks("http://a.com/", html)
		require.NoError(t, err)

		assert.Equal(t, []string{"/page", "/page"}, hrefs)
	})

	t.Run("skips non-navigational schemes", func(t *testing.T) {
		t.Parallel()

		html := `<body>
			<a href="javascript:void(0)">js</a>
			<a href="mailto:x@a.com">mail</a>
			<a href="tel:+123">tel</a>
			<a href="data:text/plain,hi">data</a>
			<a href="/real">real</a>
		</body>`

		e := goquery.NewLinkExtractor()
		hrefs, err := e.ExtractLinks("http://a.com/", html)
		require.NoError(t, err)

		assert.Equal(t, []string{"/real"}, hrefs)
	})

	t.Run("ignores anchors without hrefs", func(t *testing.T) {
		t.Parallel()

		html := `<a name="top">anchor</a><a href="">empty</a><a href="/x">x</a>`

		e := goquery.NewLinkExtractor()
		hrefs, err := e.ExtractLinks("http://a.com/", html)
		require.NoError(t, err)

		assert.Equal(t, []string{"/x"}, hrefs)
	})

	t.Run("keeps fragment-only links for the caller to resolve", func(t *testing.T) {
		t.Parallel()

		html := `<a href="#section">jump</a>`

		e := goquery.NewLinkExtractor()
		hrefs, err := e.ExtractLinks("http://a.com/docs", html)
		require.NoError(t, err)

		assert.Equal(t, []string{"#section"}, hrefs)
	})

	t.Run("tolerates malformed HTML", func(t *testing.T) {
		t.Parallel()

		html := `<div><a href="/ok">unclosed`

		e := goquery.NewLinkExtractor()
		hrefs, err := e.ExtractLinks("http://a.com/", html)
		require.NoError(t, err)

		assert.Equal(t, []string{"/ok"}, hrefs)
	})
}
