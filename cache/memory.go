package cache

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/newsgrab"
)

var _ newsgrab.Cache = (*MemoryStore)(nil)

// SweepInterval is the minimum time between full scans for expired entries.
const SweepInterval = time.Minute

// MemoryStore is a per-process newsgrab.Cache. Expired entries are
// dropped when read, and Set scans for them at most once per SweepInterval
// so keys that are never read again do not accumulate.
type MemoryStore struct {
	mu        sync.Mutex
	entries   map[string]entry
	lastSweep time.Time

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

type entry struct {
	html    string
	expires time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		Now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}
	if !s.Now().Before(e.expires) {
		delete(s.entries, key)
		return "", false, nil
	}
	return e.html, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, html string, ttl time.Duration) error {
	if ttl <= 0 {
		return newsgrab.Errorf(newsgrab.EINVALID, "cache ttl must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	if now.Sub(s.lastSweep) >= SweepInterval {
		s.sweep(now)
	}
	s.entries[key] = entry{html: html, expires: now.Add(ttl)}
	return nil
}

// sweep deletes every entry expired at now. Callers hold s.mu.
func (s *MemoryStore) sweep(now time.Time) {
	for k, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, k)
		}
	}
	s.lastSweep = now
}

// Len reports the number of stored entries, including expired ones not
// yet evicted.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
