package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsgrab"
)

// Ensure LoggingDiscoverer implements newsgrab.Discoverer.
var _ newsgrab.Discoverer = (*LoggingDiscoverer)(nil)

// LoggingDiscoverer wraps a Discoverer with logging. Each call gets a new
// run id unless the context already carries one.
type LoggingDiscoverer struct {
	next   newsgrab.Discoverer
	logger *slog.Logger
}

// NewLoggingDiscoverer creates a new LoggingDiscoverer.
func NewLoggingDiscoverer(next newsgrab.Discoverer, logger *slog.Logger) *LoggingDiscoverer {
	return &LoggingDiscoverer{next: next, logger: logger}
}

// Discover delegates to the wrapped discoverer and logs the outcome.
func (d *LoggingDiscoverer) Discover(ctx context.Context, listingURL string) (items []newsgrab.NewsItem) {
	if _, ok := RunID(ctx); !ok {
		ctx = WithRunID(ctx, NewRunID())
	}
	defer func(begin time.Time) {
		sentinel := len(items) == 1 && items[0].IsSentinel()
		withRun(ctx, d.logger).Info("discover",
			"url", listingURL,
			"count", len(items),
			"sentinel", sentinel,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return d.next.Discover(ctx, listingURL)
}

// Ensure LoggingContentExtractor implements newsgrab.ContentExtractor.
var _ newsgrab.ContentExtractor = (*LoggingContentExtractor)(nil)

// LoggingContentExtractor wraps a ContentExtractor with logging.
type LoggingContentExtractor struct {
	next   newsgrab.ContentExtractor
	logger *slog.Logger
}

// NewLoggingContentExtractor creates a new LoggingContentExtractor.
func NewLoggingContentExtractor(next newsgrab.ContentExtractor, logger *slog.Logger) *LoggingContentExtractor {
	return &LoggingContentExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
// Placeholder results are logged as such.
func (e *LoggingContentExtractor) Extract(ctx context.Context, articleURL string) (content string) {
	defer func(begin time.Time) {
		withRun(ctx, e.logger).Info("extract",
			"url", articleURL,
			"runes", len([]rune(content)),
			"placeholder", content == newsgrab.FetchErrorContent || content == newsgrab.EmptyContent,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(ctx, articleURL)
}
