package mock

import (
	"context"
	"time"

	"github.com/fwojciec/newsgrab"
)

var _ newsgrab.Cache = (*Cache)(nil)

// Cache is a mock implementation of newsgrab.Cache.
type Cache struct {
	GetFn func(ctx context.Context, key string) (string, bool, error)
	SetFn func(ctx context.Context, key string, html string, ttl time.Duration) error
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	return c.GetFn(ctx, key)
}

func (c *Cache) Set(ctx context.Context, key string, html string, ttl time.Duration) error {
	return c.SetFn(ctx, key, html, ttl)
}
