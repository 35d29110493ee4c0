package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestNewRejectsInvalidArgs(t *testing.T) {
	assert.Nil(t, New(0, 10, 0))
	assert.Nil(t, New(1, 0, 0))

	var l *Limiter
	assert.True(t, l.Allow("1.2.3.4", t0).Allowed, "nil limiter allows everything")
	assert.Zero(t, l.Len())
}

func TestBurstThenReject(t *testing.T) {
	l := New(1, 3, time.Minute)
	require.NotNil(t, l)

	for i := 0; i < 3; i++ {
		d := l.Allow("1.2.3.4", t0)
		assert.True(t, d.Allowed, "request %d", i)
		assert.Equal(t, 3, d.Limit)
		assert.Equal(t, 2-i, d.Remaining)
	}

	d := l.Allow("1.2.3.4", t0)
	assert.False(t, d.Allowed)
	assert.Equal(t, time.Second, d.RetryAfter)

	t.Run("other keys have their own bucket", func(t *testing.T) {
		assert.True(t, l.Allow("5.6.7.8", t0).Allowed)
	})

	t.Run("tokens refill over time", func(t *testing.T) {
		assert.True(t, l.Allow("1.2.3.4", t0.Add(time.Second)).Allowed)
	})
}

func TestEmptyKeyIsNotThrottled(t *testing.T) {
	l := New(1, 1, time.Minute)
	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow("  ", t0).Allowed)
	}
	assert.Zero(t, l.Len())
}

func TestEvict(t *testing.T) {
	l := New(1, 1, time.Minute)
	l.Allow("a", t0)
	l.Allow("b", t0.Add(90*time.Second))
	require.Equal(t, 2, l.Len())

	l.Evict(t0.Add(2 * time.Minute))
	assert.Equal(t, 1, l.Len())
}

func TestConcurrentAllow(t *testing.T) {
	l := New(1, 50, time.Minute)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("shared", t0).Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, allowed)
}
