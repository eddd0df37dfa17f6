package newsgrab

import "context"

// TextExtractor pulls the readable body text out of an article page.
type TextExtractor interface {
	// ExtractText parses raw HTML and returns the visible text of the main
	// content region, trimmed but not otherwise normalized.
	ExtractText(html string) (string, error)
}

// ContentExtractor turns an article URL into a display-ready excerpt.
type ContentExtractor interface {
	// Extract fetches the article and returns its normalized content.
	// It never fails: errors resolve to FetchErrorContent or EmptyContent,
	// so the result is never the empty string.
	Extract(ctx context.Context, articleURL string) string
}

// Discoverer runs the whole pipeline for one listing page.
type Discoverer interface {
	// Discover returns at most MaxCandidates items in document order. A
	// failed listing fetch yields exactly one sentinel item; a listing with
	// no usable anchors yields an empty slice.
	Discover(ctx context.Context, listingURL string) []NewsItem
}
