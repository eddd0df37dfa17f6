// Package slog provides log/slog decorators for the newsgrab interfaces.
package slog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type runIDKey struct{}

// WithRunID returns a context carrying id. Decorators add it to every
// record they emit so one page load can be followed across fetches.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunID returns the run id stored in ctx, if any.
func RunID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// NewRunID returns a fresh random run id.
func NewRunID() string {
	return uuid.NewString()
}

func withRun(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if id, ok := RunID(ctx); ok {
		return logger.With("run_id", id)
	}
	return logger
}
