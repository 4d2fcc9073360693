// File: cache.go
// Title: Concurrent Lazy Cache
// Description: Implements Cache, a concurrent map whose GetOrAdd runs the value
//              factory at most once per live key. Entries hold a once-only lazy
//              value inserted with an atomic load-or-store, so concurrent callers
//              for the same key wait for a single computation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-08
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-08 v0.1.0: Initial TTL cache with hit/miss metrics
// - 2026-10-14 v0.2.0: Lazy once-only entries on sync.Map, janitor, capacity

package mapx

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/msto63/extkit/core/errors"
	"github.com/msto63/extkit/core/log"
)

// CacheOptions configures a Cache. The zero value is an unbounded cache
// without expiry.
type CacheOptions struct {
	TTL        time.Duration // entry lifetime, zero disables expiry
	MaxEntries int           // soft limit, zero disables eviction
	Logger     *log.Logger   // receives factory failures at debug level
}

// CacheStats is a snapshot of cache counters
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Entries   int
}

// HitRate returns hits as a percentage of all lookups
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

type cacheEntry[V any] struct {
	get     func() (V, error)
	created time.Time
}

// Cache is safe for concurrent use. A factory error is cached like a value
// and returned to every caller until the key is removed or expires.
type Cache[K comparable, V any] struct {
	entries sync.Map // K -> *cacheEntry[V]
	size    atomic.Int64

	ttl        time.Duration
	maxEntries int
	logger     *log.Logger
	now        func() time.Time

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// NewCache creates a cache; at most one CacheOptions value is honoured
func NewCache[K comparable, V any](opts ...CacheOptions) *Cache[K, V] {
	var o CacheOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Logger == nil {
		o.Logger = log.Discard()
	}
	return &Cache[K, V]{
		ttl:        o.TTL,
		maxEntries: o.MaxEntries,
		logger:     o.Logger.WithField("component", "mapx.Cache"),
		now:        time.Now,
	}
}

// GetOrAdd returns the value for key, running factory to create it when the
// key is absent or expired. Concurrent callers for the same key share one
// factory call.
func (c *Cache[K, V]) GetOrAdd(key K, factory func(K) (V, error)) (V, error) {
	if factory == nil {
		var zero V
		return zero, errors.NilArgument(errors.ModuleMapx, "GetOrAdd", "factory")
	}

	for {
		if v, ok := c.entries.Load(key); ok {
			e := v.(*cacheEntry[V])
			if c.expired(e) {
				c.evict(key, e)
				continue
			}
			c.hits.Add(1)
			return e.get()
		}

		e := c.newEntry(key, factory)
		if _, loaded := c.entries.LoadOrStore(key, e); loaded {
			continue
		}
		c.misses.Add(1)
		c.size.Add(1)
		c.trim(key)
		return e.get()
	}
}

func (c *Cache[K, V]) newEntry(key K, factory func(K) (V, error)) *cacheEntry[V] {
	return &cacheEntry[V]{
		created: c.now(),
		get: sync.OnceValues(func() (V, error) {
			v, err := factory(key)
			if err != nil {
				c.logger.Debug("cache factory failed", log.Fields{"key": key, "error": err.Error()})
			}
			return v, err
		}),
	}
}

// Get returns the value for key when it is present, unexpired and was created
// without error. It waits for an in-flight factory call.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	v, ok := c.entries.Load(key)
	if !ok {
		c.misses.Add(1)
		return zero, false
	}
	e := v.(*cacheEntry[V])
	if c.expired(e) {
		c.evict(key, e)
		c.misses.Add(1)
		return zero, false
	}
	val, err := e.get()
	if err != nil {
		c.misses.Add(1)
		return zero, false
	}
	c.hits.Add(1)
	return val, true
}

// Set stores value for key, replacing any existing entry
func (c *Cache[K, V]) Set(key K, value V) {
	e := &cacheEntry[V]{
		created: c.now(),
		get:     func() (V, error) { return value, nil },
	}
	if _, loaded := c.entries.Swap(key, e); !loaded {
		c.size.Add(1)
		c.trim(key)
	}
}

// Remove deletes key and reports whether it was present
func (c *Cache[K, V]) Remove(key K) bool {
	if _, loaded := c.entries.LoadAndDelete(key); loaded {
		c.size.Add(-1)
		return true
	}
	return false
}

// Contains reports whether an unexpired entry exists for key
func (c *Cache[K, V]) Contains(key K) bool {
	v, ok := c.entries.Load(key)
	return ok && !c.expired(v.(*cacheEntry[V]))
}

// Keys returns the keys currently stored, in no particular order
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.Len())
	c.entries.Range(func(k, _ any) bool {
		keys = append(keys, k.(K))
		return true
	})
	return keys
}

// Len returns the number of stored entries, including expired ones not yet purged
func (c *Cache[K, V]) Len() int {
	return int(c.size.Load())
}

// Clear removes every entry; counters are kept
func (c *Cache[K, V]) Clear() {
	c.entries.Range(func(k, _ any) bool {
		if _, loaded := c.entries.LoadAndDelete(k); loaded {
			c.size.Add(-1)
		}
		return true
	})
}

// Purge removes expired entries and returns how many were dropped
func (c *Cache[K, V]) Purge() int {
	if c.ttl <= 0 {
		return 0
	}
	purged := 0
	c.entries.Range(func(k, v any) bool {
		e := v.(*cacheEntry[V])
		if c.expired(e) && c.evict(k.(K), e) {
			purged++
		}
		return true
	})
	return purged
}

// RunJanitor purges expired entries every interval until ctx is done
func (c *Cache[K, V]) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.Purge(); n > 0 {
				c.logger.Trace("purged expired entries", log.Fields{"count": n})
			}
		}
	}
}

// Stats returns a snapshot of the cache counters
func (c *Cache[K, V]) Stats() CacheStats {
	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Entries:   c.Len(),
	}
}

func (c *Cache[K, V]) expired(e *cacheEntry[V]) bool {
	return c.ttl > 0 && c.now().Sub(e.created) >= c.ttl
}

// evict removes e only if it is still the entry stored under key
func (c *Cache[K, V]) evict(key K, e *cacheEntry[V]) bool {
	if c.entries.CompareAndDelete(key, e) {
		c.size.Add(-1)
		c.evictions.Add(1)
		return true
	}
	return false
}

// trim drops arbitrary entries other than keep while the cache is over capacity
func (c *Cache[K, V]) trim(keep K) {
	if c.maxEntries <= 0 || c.Len() <= c.maxEntries {
		return
	}
	c.entries.Range(func(k, v any) bool {
		if c.Len() <= c.maxEntries {
			return false
		}
		if k.(K) == keep {
			return true
		}
		c.evict(k.(K), v.(*cacheEntry[V]))
		return true
	})
}
