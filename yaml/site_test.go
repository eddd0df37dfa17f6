package yaml_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/newsgrab"
	"github.com/fwojciec/newsgrab/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSite(t *testing.T) {
	t.Parallel()

	t.Run("loads a full site definition", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, `
title: 地域ニュース
listing_url: https://news.example.jp/latest
origin: https://cdn.example.jp
user_agent: test-agent/1.0
link_patterns:
  - name: headline
    selector: .headline a
content_patterns:
  - name: story
    selector: .story-body
listing_ttl: 2m
article_ttl: 30m
`)

		site, err := yaml.LoadSite(path)

		require.NoError(t, err)
		assert.Equal(t, "地域ニュース", site.Title)
		assert.Equal(t, "https://news.example.jp/latest", site.ListingURL)
		assert.Equal(t, "https://cdn.example.jp", site.Origin)
		assert.Equal(t, "test-agent/1.0", site.UserAgent)
		assert.Equal(t, newsgrab.Cascade{{Name: "headline", Selector: ".headline a"}}, site.LinkPatterns)
		assert.Equal(t, newsgrab.Cascade{{Name: "story", Selector: ".story-body"}}, site.ContentPatterns)
		assert.Equal(t, 2*time.Minute, site.ListingTTL)
		assert.Equal(t, 30*time.Minute, site.ArticleTTL)
	})

	t.Run("fills defaults for omitted fields", func(t *testing.T) {
		t.Parallel()

		site, err := yaml.LoadSite(writeFile(t, "listing_url: https://news.example.jp/\n"))

		require.NoError(t, err)
		assert.Equal(t, "https://news.example.jp", site.Origin)
		assert.Equal(t, newsgrab.DefaultTitle, site.Title)
		assert.Equal(t, newsgrab.DefaultUserAgent, site.UserAgent)
		assert.Equal(t, newsgrab.DefaultLinkCascade(), site.LinkPatterns)
		assert.Equal(t, newsgrab.DefaultContentCascade(), site.ContentPatterns)
		assert.Equal(t, newsgrab.DefaultListingTTL, site.ListingTTL)
	})

	t.Run("reports missing file as not found", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadSite(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Equal(t, newsgrab.ENOTFOUND, newsgrab.ErrorCode(err))
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadSite(writeFile(t, "listing_url: https://news.example.jp/\nlink_pattern: []\n"))

		assert.Equal(t, newsgrab.EINVALID, newsgrab.ErrorCode(err))
	})

	t.Run("rejects a site without origin", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadSite(writeFile(t, "title: x\n"))

		assert.Equal(t, newsgrab.EINVALID, newsgrab.ErrorCode(err))
	})

	t.Run("rejects empty selectors", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadSite(writeFile(t, `
listing_url: https://news.example.jp/
link_patterns:
  - name: blank
    selector: ""
`))

		assert.Equal(t, newsgrab.EINVALID, newsgrab.ErrorCode(err))
		assert.Contains(t, newsgrab.ErrorMessage(err), "link patterns")
	})
}

func TestMarshalSite(t *testing.T) {
	t.Parallel()

	site := newsgrab.NewSite()
	site.ListingURL = "https://news.example.jp/"
	site.SetDefaults()

	data, err := yaml.MarshalSite(site)
	require.NoError(t, err)
	assert.Contains(t, string(data), "listing_ttl: 5m0s")

	got, err := yaml.ParseSite(data)
	require.NoError(t, err)
	assert.Equal(t, site, got)
}
