package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/newsgrab"
	"github.com/fwojciec/newsgrab/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().ExtractText("")

		require.Error(t, err)
		assert.Equal(t, newsgrab.EINVALID, newsgrab.ErrorCode(err))
	})

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Harbour festival</title></head>
<body>
<nav><a href="/">Home</a><a href="/news">News</a></nav>
<article>
<h1>Harbour festival draws record crowds</h1>
<p>More than forty thousand visitors attended the harbour festival over the weekend, organisers said on Sunday evening.</p>
<p>Food stalls and evening fireworks were the most popular attractions, and the city plans to extend the event next year.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2026</footer>
</body>
</html>`

		text, err := trafilatura.NewExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.Contains(t, text, "forty thousand visitors")
		assert.Contains(t, text, "evening fireworks")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/about">About</a></li>
<li><a href="/contact">Contact the newsroom</a></li>
</ul>
</nav>
<main>
<h1>Council approves budget</h1>
<p>The city council approved next year's budget on Thursday, including new funding for school repairs and bus routes.</p>
</main>
</body>
</html>`

		text, err := trafilatura.NewExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.Contains(t, text, "approved next year's budget")
		assert.NotContains(t, text, "Contact the newsroom")
	})

	t.Run("returns plain text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>The library extended its opening hours for the exam season, staying open until midnight on weekdays.</p></article></body></html>`

		text, err := trafilatura.NewExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.NotContains(t, text, "<p>")
	})
}
