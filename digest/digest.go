// Package digest wires fetching, link discovery and content extraction
// into the news pipeline. It is the boundary where collaborator errors
// become placeholder values: nothing in this package returns an error.
package digest

import (
	"log/slog"
	"time"
)

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}

func nowOrDefault(now func() time.Time) time.Time {
	if now == nil {
		return time.Now()
	}
	return now()
}
