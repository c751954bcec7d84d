// Package ratelimit implements a fixed-window request counter keyed by
// caller identity. It guards the expensive AI calls.
package ratelimit

import (
	"sync"
	"time"
)

type bucket struct {
	count   int
	resetAt time.Time
}

// Limiter allows up to limit calls per key within a fixed window. It is a
// fixed-window counter, not a token bucket: a burst of up to 2× limit across
// a window boundary is possible and accepted. Buckets are never evicted, so
// memory grows with the number of distinct keys for the life of the process.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	buckets map[string]*bucket
}

// New returns a limiter permitting limit calls per window for each key.
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

// Allow consumes one call for key if the budget permits. When denied, the
// second return value is the time remaining until the window resets.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok || !now.Before(b.resetAt) {
		l.buckets[key] = &bucket{count: 1, resetAt: now.Add(l.window)}
		return true, 0
	}
	if b.count < l.limit {
		b.count++
		return true, 0
	}
	return false, b.resetAt.Sub(now)
}

// Keys reports the number of tracked buckets, including stale ones.
func (l *Limiter) Keys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
