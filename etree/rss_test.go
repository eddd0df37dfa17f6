package etree_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/fwojciec/newsgrab"
	"github.com/fwojciec/newsgrab/etree"
	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderFeed(t *testing.T, page *newsgrab.Page) (*gofeed.Feed, string) {
	t.Helper()

	r := &etree.RSSRenderer{Location: time.UTC}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page))

	feed, err := gofeed.NewParser().ParseString(buf.String())
	require.NoError(t, err)
	return feed, buf.String()
}

func TestRSSRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders a parseable feed", func(t *testing.T) {
		t.Parallel()

		feed, _ := renderFeed(t, &newsgrab.Page{
			Title:     "テストニュース",
			SourceURL: "https://news.example.jp/",
			Items: []newsgrab.NewsItem{
				{Title: "First & foremost", Link: "https://news.example.jp/news/1", Content: "本文 <b>です</b>", Date: "2026/1/5"},
				{Title: "Second", Link: "https://news.example.jp/news/2", Content: newsgrab.PendingContent, Date: "2026/1/5"},
			},
		})

		assert.Equal(t, "rss", feed.FeedType)
		assert.Equal(t, "テストニュース", feed.Title)
		assert.Equal(t, "https://news.example.jp/", feed.Link)
		require.Len(t, feed.Items, 2)
		assert.Equal(t, "First & foremost", feed.Items[0].Title)
		assert.Equal(t, "https://news.example.jp/news/1", feed.Items[0].Link)
		assert.Equal(t, "https://news.example.jp/news/1", feed.Items[0].GUID)
		assert.Equal(t, newsgrab.PendingContent, feed.Items[1].Description)
		require.NotNil(t, feed.Items[0].PublishedParsed)
		assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), feed.Items[0].PublishedParsed.UTC())
	})

	t.Run("escapes content", func(t *testing.T) {
		t.Parallel()

		_, raw := renderFeed(t, &newsgrab.Page{
			Items: []newsgrab.NewsItem{{Title: "A", Link: "https://news.example.jp/news/1", Content: "x <b>y</b>", Date: "2026/1/5"}},
		})

		assert.Contains(t, raw, "x &lt;b&gt;y&lt;/b&gt;")
	})

	t.Run("omits link for sentinel item", func(t *testing.T) {
		t.Parallel()

		feed, raw := renderFeed(t, &newsgrab.Page{
			Items: []newsgrab.NewsItem{newsgrab.SentinelItem(time.Now())},
		})

		require.Len(t, feed.Items, 1)
		assert.Equal(t, newsgrab.SentinelTitle, feed.Items[0].Title)
		assert.Equal(t, newsgrab.SentinelContent, feed.Items[0].Description)
		assert.NotContains(t, raw, "<guid")
		assert.Equal(t, newsgrab.DefaultTitle, feed.Title)
	})

	t.Run("describes empty channel as not found", func(t *testing.T) {
		t.Parallel()

		feed, _ := renderFeed(t, &newsgrab.Page{Title: "T"})

		assert.Empty(t, feed.Items)
		assert.Equal(t, newsgrab.NotFoundMessage, feed.Description)
	})

	t.Run("skips pubDate for unparseable dates", func(t *testing.T) {
		t.Parallel()

		_, raw := renderFeed(t, &newsgrab.Page{
			Items: []newsgrab.NewsItem{{Title: "A", Content: "c", Date: "yesterday"}},
		})

		assert.NotContains(t, raw, "<pubDate>")
	})
}
