package htmltomarkdown_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/newsgrab"
	"github.com/fwojciec/newsgrab/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and links", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<h2><a href="https://news.example.jp/news/1">Story</a></h2><p>Body</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "## [Story](https://news.example.jp/news/1)")
		assert.Contains(t, md, "Body")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ")

		require.Error(t, err)
		assert.Equal(t, newsgrab.EINVALID, newsgrab.ErrorCode(err))
	})
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders items as linked headings", func(t *testing.T) {
		t.Parallel()

		page := &newsgrab.Page{
			Title: "テストニュース",
			Items: []newsgrab.NewsItem{
				{Title: "First", Link: "https://news.example.jp/news/1", Content: "本文です", Date: "2026/1/5"},
				{Title: "Second", Link: "https://news.example.jp/news/2", Content: newsgrab.PendingContent, Date: "2026/1/5"},
			},
		}

		var buf bytes.Buffer
		require.NoError(t, htmltomarkdown.NewRenderer().Render(&buf, page))

		md := buf.String()
		assert.Contains(t, md, "# テストニュース")
		assert.Contains(t, md, "## [First](https://news.example.jp/news/1)")
		assert.Contains(t, md, "## [Second](https://news.example.jp/news/2)")
		assert.Contains(t, md, "本文です")
		assert.Contains(t, md, "2026/1/5")
		assert.NotContains(t, md, "<article")
	})

	t.Run("renders not-found message for empty page", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, htmltomarkdown.NewRenderer().Render(&buf, &newsgrab.Page{}))

		assert.Contains(t, buf.String(), newsgrab.NotFoundMessage)
	})

	t.Run("declares markdown content type", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "text/markdown; charset=utf-8", htmltomarkdown.NewRenderer().ContentType())
	})
}
