package mock

import (
	"context"

	"github.com/fwojciec/newsgrab"
)

var _ newsgrab.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of newsgrab.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

var _ newsgrab.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of newsgrab.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(ctx context.Context, articleURL string) string
}

func (e *ContentExtractor) Extract(ctx context.Context, articleURL string) string {
	return e.ExtractFn(ctx, articleURL)
}

var _ newsgrab.Discoverer = (*Discoverer)(nil)

// Discoverer is a mock implementation of newsgrab.Discoverer.
type Discoverer struct {
	DiscoverFn func(ctx context.Context, listingURL string) []newsgrab.NewsItem
}

func (d *Discoverer) Discover(ctx context.Context, listingURL string) []newsgrab.NewsItem {
	return d.DiscoverFn(ctx, listingURL)
}
