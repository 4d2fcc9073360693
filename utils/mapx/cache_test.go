// File: cache_test.go
// Title: Lazy Cache Tests
// Description: Tests for once-only factory execution, error caching, expiry,
//              capacity, the janitor and the Prometheus collector.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-08
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-08 v0.1.0: Initial tests
// - 2026-10-14 v0.2.0: Concurrency, collector and janitor tests

package mapx

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	exterr "github.com/msto63/extkit/core/error"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeClock lets expiry tests advance time without sleeping
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestCacheGetOrAddRunsFactoryOnce(t *testing.T) {
	c := NewCache[string, int]()

	var calls atomic.Int32
	release := make(chan struct{})
	factory := func(key string) (int, error) {
		calls.Add(1)
		<-release
		return len(key), nil
	}

	const workers = 32
	var wg sync.WaitGroup
	results := make([]int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.GetOrAdd("hello", factory)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		assert.Equal(t, 5, v)
	}

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, uint64(workers-1), stats.Hits)
	assert.Equal(t, 1, stats.Entries)
}

func TestCacheCachesFactoryErrors(t *testing.T) {
	c := NewCache[int, string]()
	boom := errors.New("boom")

	var calls int
	factory := func(int) (string, error) {
		calls++
		return "", boom
	}

	_, err := c.GetOrAdd(1, factory)
	require.ErrorIs(t, err, boom)
	_, err = c.GetOrAdd(1, factory)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)

	_, ok := c.Get(1)
	assert.False(t, ok)

	assert.True(t, c.Remove(1))
	v, err := c.GetOrAdd(1, func(int) (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestCacheNilFactory(t *testing.T) {
	c := NewCache[string, int]()
	_, err := c.GetOrAdd("k", nil)
	require.Error(t, err)
	assert.True(t, exterr.HasCode(err, exterr.CodeNilArgument))
}

func TestCacheExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewCache[string, int](CacheOptions{TTL: time.Minute})
	c.now = clock.Now

	var calls int
	factory := func(string) (int, error) {
		calls++
		return calls, nil
	}

	v, _ := c.GetOrAdd("a", factory)
	assert.Equal(t, 1, v)

	clock.Advance(30 * time.Second)
	v, _ = c.GetOrAdd("a", factory)
	assert.Equal(t, 1, v)

	clock.Advance(31 * time.Second)
	assert.False(t, c.Contains("a"))
	v, _ = c.GetOrAdd("a", factory)
	assert.Equal(t, 2, v)
	assert.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestCachePurge(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	c := NewCache[int, int](CacheOptions{TTL: time.Second})
	c.now = clock.Now

	for i := 0; i < 5; i++ {
		c.Set(i, i)
	}
	clock.Advance(2 * time.Second)
	c.Set(99, 99)

	assert.Equal(t, 5, c.Purge())
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []int{99}, c.Keys())
}

func TestCacheMaxEntries(t *testing.T) {
	c := NewCache[int, int](CacheOptions{MaxEntries: 3})
	for i := 0; i < 10; i++ {
		_, err := c.GetOrAdd(i, func(k int) (int, error) { return k * k, nil })
		require.NoError(t, err)
	}

	assert.LessOrEqual(t, c.Len(), 3)
	assert.True(t, c.Contains(9), "most recent key is kept")
	assert.Equal(t, uint64(c.Stats().Misses)-uint64(c.Len()), c.Stats().Evictions)
}

func TestCacheSetGetClear(t *testing.T) {
	c := NewCache[string, string]()
	c.Set("a", "1")
	c.Set("a", "2")
	c.Set("b", "3")

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("missing")
	assert.False(t, ok)

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Remove("a"))
}

func TestCacheJanitorStops(t *testing.T) {
	c := NewCache[int, int](CacheOptions{TTL: time.Millisecond})
	c.Set(1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.RunJanitor(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestCacheStatsHitRate(t *testing.T) {
	assert.Equal(t, 0.0, CacheStats{}.HitRate())
	assert.Equal(t, 75.0, CacheStats{Hits: 3, Misses: 1}.HitRate())
}

func TestCacheCollector(t *testing.T) {
	c := NewCache[string, int]()
	_, _ = c.GetOrAdd("a", func(string) (int, error) { return 1, nil })
	_, _ = c.GetOrAdd("a", func(string) (int, error) { return 1, nil })

	collector := NewCacheCollector("extkit")
	collector.Register("regex", c)

	expected := `
# HELP extkit_cache_entries Number of entries currently stored.
# TYPE extkit_cache_entries gauge
extkit_cache_entries{cache="regex"} 1
# HELP extkit_cache_hits_total Number of lookups answered from the cache.
# TYPE extkit_cache_hits_total counter
extkit_cache_hits_total{cache="regex"} 1
# HELP extkit_cache_misses_total Number of lookups that had to create a value.
# TYPE extkit_cache_misses_total counter
extkit_cache_misses_total{cache="regex"} 1
`
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected),
		"extkit_cache_entries", "extkit_cache_hits_total", "extkit_cache_misses_total")
	require.NoError(t, err)

	collector.Unregister("regex")
	assert.Equal(t, 0, testutil.CollectAndCount(collector))
}
