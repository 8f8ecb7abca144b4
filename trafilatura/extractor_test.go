package trafilatura_test

import (
	"strings"
	"testing"

	wolfspider "github.com/marc-shade/wolf-spider"
	"github.com/marc-shade/wolf-spider/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and main content", func(t *testing.T) {
		t.Parallel()

		paragraph := strings.Repeat("This sentence pads the article body so content detection has enough text to work with. ", 6)
		html := `<html><head><title>Test Article</title></head><body>
			<nav><a href="/">Home</a><a href="/about">About</a></nav>
			<article><h1>Test Article</h1><p>` + paragraph + `</p></article>
			<footer>Copyright</footer>
		</body></html>`

		e := trafilatura.NewExtractor()
		result, err := e.Extract(html)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Contains(t, result.Title, "Test Article")
		assert.Contains(t, result.ContentHTML, "pads the article body")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		e := trafilatura.NewExtractor()
		_, err := e.Extract("")
		require.Error(t, err)
		assert.Equal(t, wolfspider.EINVALID, wolfspider.ErrorCode(err))
	})
}
