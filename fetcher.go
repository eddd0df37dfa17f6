package newsgrab

import (
	"context"
	"time"
)

// Fetcher retrieves raw HTML from URLs.
// Implementations only handle static HTML; scripts are never executed.
type Fetcher interface {
	// Fetch performs a single GET and returns the decoded body.
	// Non-success statuses and transport failures are errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}

// Cache stores fetched HTML for a bounded freshness window.
// A miss is reported as ok == false with a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (html string, ok bool, err error)
	Set(ctx context.Context, key string, html string, ttl time.Duration) error
}
