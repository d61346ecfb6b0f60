package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryLimiterAllowsUpToLimit(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 4, 23, 12, 0, 0, 0, time.UTC)}
	limiter := NewMemoryLimiter(10, time.Minute, clock)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		allowed, err := limiter.Allow(ctx, "jane@uni.edu")
		require.NoError(t, err)
		assert.True(t, allowed, "operation %d should be admitted", i+1)
	}

	allowed, err := limiter.Allow(ctx, "jane@uni.edu")
	require.NoError(t, err)
	assert.False(t, allowed, "11th operation must be rejected")
}

func TestMemoryLimiterWindowSlides(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 4, 23, 12, 0, 0, 0, time.UTC)}
	limiter := NewMemoryLimiter(10, time.Minute, clock)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		allowed, err := limiter.Allow(ctx, "jane@uni.edu")
		require.NoError(t, err)
		require.True(t, allowed)
		clock.Advance(time.Second)
	}

	// 10 hits over the first 10 seconds. 51 seconds later the first hit
	// falls outside the rolling window and exactly one slot opens up.
	allowed, err := limiter.Allow(ctx, "jane@uni.edu")
	require.NoError(t, err)
	assert.False(t, allowed)

	clock.Advance(51 * time.Second)
	allowed, err = limiter.Allow(ctx, "jane@uni.edu")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLimiterRejectionLeavesNoTrace(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 4, 23, 12, 0, 0, 0, time.UTC)}
	limiter := NewMemoryLimiter(2, time.Minute, clock)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		limiter.Allow(ctx, "jane@uni.edu")
	}

	// Only the two admitted hits occupy the window; once they expire the
	// rejected attempts must not extend the lockout.
	clock.Advance(61 * time.Second)
	allowed, err := limiter.Allow(ctx, "jane@uni.edu")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 4, 23, 12, 0, 0, 0, time.UTC)}
	limiter := NewMemoryLimiter(1, time.Minute, clock)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "jane@uni.edu")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "jane@uni.edu")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "joe@uni.edu")
	require.NoError(t, err)
	assert.True(t, allowed, "another user's budget is untouched")
}
