package newsgrab_test

import (
	"testing"

	"github.com/fwojciec/newsgrab"
	"github.com/stretchr/testify/assert"
)

func TestFormatItems(t *testing.T) {
	t.Parallel()

	t.Run("formats single item with link and date", func(t *testing.T) {
		t.Parallel()

		items := []newsgrab.NewsItem{
			{Title: "地震速報", Link: "https://example.jp/news/1", Content: "本文です。", Date: "2026/10/18"},
		}

		result := newsgrab.FormatItems(items)

		expected := "## 地震速報\nhttps://example.jp/news/1\n2026/10/18\n本文です。"
		assert.Equal(t, expected, result)
	})

	t.Run("omits empty link for sentinel item", func(t *testing.T) {
		t.Parallel()

		items := []newsgrab.NewsItem{
			{Title: newsgrab.SentinelTitle, Content: newsgrab.SentinelContent, Date: "2026/10/18"},
		}

		result := newsgrab.FormatItems(items)

		assert.Equal(t, "## エラー\n2026/10/18\n"+newsgrab.SentinelContent, result)
	})

	t.Run("separates items with blank line", func(t *testing.T) {
		t.Parallel()

		items := []newsgrab.NewsItem{
			{Title: "A", Link: "https://example.jp/a", Content: "a"},
			{Title: "B", Link: "https://example.jp/b", Content: "b"},
		}

		result := newsgrab.FormatItems(items)

		assert.Equal(t, "## A\nhttps://example.jp/a\na\n\n## B\nhttps://example.jp/b\nb", result)
	})

	t.Run("returns not-found message for empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, newsgrab.NotFoundMessage, newsgrab.FormatItems(nil))
	})
}
