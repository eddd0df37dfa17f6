package newsgrab_test

import (
	"testing"
	"time"

	"github.com/fwojciec/newsgrab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSite_SetDefaults(t *testing.T) {
	t.Parallel()

	t.Run("derives origin from listing URL", func(t *testing.T) {
		t.Parallel()

		site := &newsgrab.Site{ListingURL: "https://news.example.jp/list/domestic"}
		site.SetDefaults()

		assert.Equal(t, "https://news.example.jp", site.Origin)
		assert.Equal(t, newsgrab.DefaultUserAgent, site.UserAgent)
		assert.Equal(t, newsgrab.DefaultLinkCascade(), site.LinkPatterns)
		assert.Equal(t, newsgrab.DefaultContentCascade(), site.ContentPatterns)
		assert.Equal(t, 5*time.Minute, site.ListingTTL)
		assert.Equal(t, time.Hour, site.ArticleTTL)
	})

	t.Run("keeps explicit origin", func(t *testing.T) {
		t.Parallel()

		site := &newsgrab.Site{
			ListingURL: "https://mirror.example.jp/list",
			Origin:     "https://news.example.jp",
		}
		site.SetDefaults()

		assert.Equal(t, "https://news.example.jp", site.Origin)
	})
}

func TestSite_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts defaults with origin", func(t *testing.T) {
		t.Parallel()

		site := newsgrab.NewSite()
		site.Origin = "https://news.example.jp"

		require.NoError(t, site.Validate())
	})

	t.Run("requires origin", func(t *testing.T) {
		t.Parallel()

		err := newsgrab.NewSite().Validate()

		assert.Equal(t, newsgrab.EINVALID, newsgrab.ErrorCode(err))
		assert.Equal(t, "site origin required", newsgrab.ErrorMessage(err))
	})

	t.Run("rejects relative origin", func(t *testing.T) {
		t.Parallel()

		site := newsgrab.NewSite()
		site.Origin = "news.example.jp"

		assert.Equal(t, newsgrab.EINVALID, newsgrab.ErrorCode(site.Validate()))
	})

	t.Run("rejects blank selectors", func(t *testing.T) {
		t.Parallel()

		site := newsgrab.NewSite()
		site.Origin = "https://news.example.jp"
		site.LinkPatterns = newsgrab.Cascade{{Name: "broken"}}

		err := site.Validate()

		assert.Equal(t, newsgrab.EINVALID, newsgrab.ErrorCode(err))
		assert.Contains(t, newsgrab.ErrorMessage(err), "link patterns")
	})
}

func TestSentinelItem(t *testing.T) {
	t.Parallel()

	item := newsgrab.SentinelItem(time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, "エラー", item.Title)
	assert.Empty(t, item.Link)
	assert.NotEmpty(t, item.Content)
	assert.Equal(t, "2026/1/5", item.Date)
	assert.True(t, item.IsSentinel())
}
