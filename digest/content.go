package digest

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/newsgrab"
)

var _ newsgrab.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor fetches an article and reduces it to a bounded,
// whitespace-normalized excerpt.
type ContentExtractor struct {
	Fetcher   newsgrab.Fetcher
	Extractor newsgrab.TextExtractor

	// Logger receives absorbed failures at warn level. Optional.
	Logger *slog.Logger
}

// Extract returns the article excerpt, FetchErrorContent when the page
// could not be fetched, or EmptyContent when no text survived.
func (e *ContentExtractor) Extract(ctx context.Context, articleURL string) string {
	logger := loggerOrDiscard(e.Logger)

	html, err := e.Fetcher.Fetch(ctx, articleURL)
	if err != nil {
		logger.Warn("article fetch failed", "url", articleURL, "err", err)
		return newsgrab.FetchErrorContent
	}

	text, err := e.Extractor.ExtractText(html)
	if err != nil {
		logger.Warn("article extraction failed", "url", articleURL, "err", err)
		text = ""
	}

	content := newsgrab.NormalizeContent(text)
	if strings.TrimSpace(content) == "" {
		return newsgrab.EmptyContent
	}
	return content
}
