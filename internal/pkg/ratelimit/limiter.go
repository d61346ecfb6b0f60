package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter is an abuse throttle over a rolling time window. Allow reports
// whether the caller identified by key may perform another operation now
// and, if so, records it. It is not a correctness guarantee: losing the
// recorded state (process restart) simply resets the counters.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Clock abstracts time.Now so window behavior is testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall-clock Clock used outside of tests.
var SystemClock Clock = systemClock{}

// MemoryLimiter is a per-key sliding-window limiter held in process memory.
// Suitable for single-process deployments; use RedisLimiter when multiple
// processes must share one counter.
type MemoryLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	clock  Clock
	hits   map[string][]time.Time
}

// NewMemoryLimiter creates a MemoryLimiter allowing limit operations per key
// within any rolling window.
func NewMemoryLimiter(limit int, window time.Duration, clock Clock) *MemoryLimiter {
	if clock == nil {
		clock = SystemClock
	}
	return &MemoryLimiter{
		limit:  limit,
		window: window,
		clock:  clock,
		hits:   make(map[string][]time.Time),
	}
}

// Allow prunes entries older than the window, then admits the call iff fewer
// than limit entries remain. An admitted call is recorded; a rejected call
// leaves no trace beyond the counter itself.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := l.clock.Now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.limit {
		l.hits[key] = recent
		return false, nil
	}

	l.hits[key] = append(recent, now)
	return true, nil
}
