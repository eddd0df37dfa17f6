// Package redis implements newsgrab.Cache on top of Redis so several
// newsgrab processes can share freshness windows.
package redis

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/fwojciec/newsgrab"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultPrefix is prepended to every key.
const DefaultPrefix = "newsgrab:"

var _ newsgrab.Cache = (*Store)(nil)

// Store is a Redis-backed newsgrab.Cache.
type Store struct {
	client *goredis.Client
	prefix string
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix overrides DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// NewStore creates a Store for the server at addr, given either as
// host:port or as a redis:// or rediss:// URL. The connection is
// established lazily on first use.
func NewStore(addr string, opts ...Option) (*Store, error) {
	if addr == "" {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "redis address required")
	}
	options, err := parseAddr(addr)
	if err != nil {
		return nil, err
	}
	s := &Store{
		client: goredis.NewClient(options),
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func parseAddr(addr string) (*goredis.Options, error) {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		options, err := goredis.ParseURL(addr)
		if err != nil {
			return nil, newsgrab.Errorf(newsgrab.EINVALID, "invalid redis URL %q: %v", addr, err)
		}
		return options, nil
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "invalid redis address %q: %v", addr, err)
	}
	return &goredis.Options{Addr: addr}, nil
}

// Ping verifies the server is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return newsgrab.Errorf(newsgrab.EUNAVAILABLE, "redis ping failed: %v", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	html, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return html, true, nil
}

func (s *Store) Set(ctx context.Context, key string, html string, ttl time.Duration) error {
	if ttl <= 0 {
		return newsgrab.Errorf(newsgrab.EINVALID, "cache ttl must be positive")
	}
	if err := s.client.Set(ctx, s.prefix+key, html, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
