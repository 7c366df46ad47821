package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
}

func newTestCache(t *testing.T, capacity int, ttl time.Duration) (*TTL[string, int], *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}
	c := NewTTL[string, int](capacity, ttl)
	c.now = clock.Now
	t.Cleanup(c.Stop)
	return c, clock
}

func TestTTL_GetSet(t *testing.T) {
	c, _ := newTestCache(t, 4, time.Minute)

	_, ok := c.Get("NA")
	assert.False(t, ok)

	c.Set("NA", 1)
	v, ok := c.Get("NA")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	c.Set("NA", 2)
	v, _ = c.Get("NA")
	assert.Equal(t, 2, v)

	m := c.Metrics()
	assert.Equal(t, int64(2), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 1, m.Size)
}

func TestTTL_Expiry(t *testing.T) {
	c, clock := newTestCache(t, 4, time.Minute)

	c.Set("ZA", 7)
	clock.Advance(59 * time.Second)
	_, ok := c.Get("ZA")
	assert.True(t, ok)

	clock.Advance(2 * time.Second)
	_, ok = c.Get("ZA")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Metrics().Size)
}

func TestTTL_EvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newTestCache(t, 2, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	_, okC := c.Get("c")
	assert.True(t, okA)
	assert.False(t, okB)
	assert.True(t, okC)
	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestTTL_InvalidateAndClear(t *testing.T) {
	c, _ := newTestCache(t, 4, time.Minute)

	c.Set("NA", 1)
	c.Set("ZA", 2)
	c.Invalidate("NA")
	c.Invalidate("missing")

	_, ok := c.Get("NA")
	assert.False(t, ok)
	_, ok = c.Get("ZA")
	assert.True(t, ok)

	c.Clear()
	m := c.Metrics()
	assert.Equal(t, 0, m.Size)
	assert.Zero(t, m.Hits)
}

func TestTTL_RemoveExpired(t *testing.T) {
	c, clock := newTestCache(t, 4, time.Minute)

	c.Set("a", 1)
	clock.Advance(30 * time.Second)
	c.Set("b", 2)
	clock.Advance(45 * time.Second)

	c.removeExpired()
	assert.Equal(t, 1, c.Metrics().Size)
}

func TestTTL_StopIsIdempotent(t *testing.T) {
	c := NewTTL[int, int](1, time.Second)
	c.Stop()
	assert.NotPanics(t, c.Stop)
}

func TestTTL_Concurrent(t *testing.T) {
	c, _ := newTestCache(t, 8, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%4))
			c.Set(key, i)
			c.Get(key)
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Metrics().Size, 4)
}

var _ CacheWithMetrics[string, int] = (*TTL[string, int])(nil)
