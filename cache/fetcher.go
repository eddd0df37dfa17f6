// Package cache provides a caching decorator for newsgrab.Fetcher and an
// in-process newsgrab.Cache store.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/newsgrab"
)

var _ newsgrab.Fetcher = (*Fetcher)(nil)

// Fetcher serves pages from a store while they are inside their freshness
// window and fetches through to the wrapped Fetcher otherwise.
//
// Only successful fetches are stored. Store failures are treated as
// misses so a broken cache never turns into a failed fetch.
type Fetcher struct {
	next      newsgrab.Fetcher
	store     newsgrab.Cache
	ttl       time.Duration
	namespace string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithNamespace prefixes every key written by this Fetcher. Listing and
// article fetchers sharing one store use different namespaces.
func WithNamespace(ns string) Option {
	return func(f *Fetcher) {
		f.namespace = ns
	}
}

// NewFetcher wraps next with store. A ttl <= 0 disables caching.
func NewFetcher(next newsgrab.Fetcher, store newsgrab.Cache, ttl time.Duration, opts ...Option) *Fetcher {
	f := &Fetcher{
		next:      next,
		store:     store,
		ttl:       ttl,
		namespace: "page",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the cached body for url or fetches it.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.ttl <= 0 {
		return f.next.Fetch(ctx, url)
	}

	key := f.Key(url)
	if html, ok, err := f.store.Get(ctx, key); err == nil && ok {
		return html, nil
	}

	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	_ = f.store.Set(ctx, key, html, f.ttl)
	return html, nil
}

// Close closes the wrapped Fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}

// Key returns the store key used for url.
func (f *Fetcher) Key(url string) string {
	return f.namespace + ":" + strconv.FormatUint(xxhash.Sum64String(url), 16)
}
