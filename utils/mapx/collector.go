// File: collector.go
// Title: Cache Metrics Collector
// Description: Exposes the counters of one or more caches as Prometheus
//              metrics, labelled by cache name.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package mapx

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// StatsProvider is implemented by every Cache instantiation
type StatsProvider interface {
	Stats() CacheStats
}

// CacheCollector is a prometheus.Collector reporting cache statistics
type CacheCollector struct {
	mu     sync.RWMutex
	caches map[string]StatsProvider

	hits      *prometheus.Desc
	misses    *prometheus.Desc
	evictions *prometheus.Desc
	entries   *prometheus.Desc
}

// NewCacheCollector creates a collector whose metric names start with namespace
func NewCacheCollector(namespace string) *CacheCollector {
	labels := []string{"cache"}
	return &CacheCollector{
		caches: make(map[string]StatsProvider),
		hits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "hits_total"),
			"Number of lookups answered from the cache.", labels, nil),
		misses: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "misses_total"),
			"Number of lookups that had to create a value.", labels, nil),
		evictions: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "evictions_total"),
			"Number of entries dropped by expiry or capacity.", labels, nil),
		entries: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "entries"),
			"Number of entries currently stored.", labels, nil),
	}
}

// Register adds a cache under name, replacing any cache with that name
func (c *CacheCollector) Register(name string, cache StatsProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.caches[name] = cache
}

// Unregister removes the cache registered under name
func (c *CacheCollector) Unregister(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.caches, name)
}

// Describe implements prometheus.Collector
func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
	ch <- c.entries
}

// Collect implements prometheus.Collector
func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	names := make([]string, 0, len(c.caches))
	for name := range c.caches {
		names = append(names, name)
	}
	sort.Strings(names)
	snapshot := make([]CacheStats, len(names))
	for i, name := range names {
		snapshot[i] = c.caches[name].Stats()
	}
	c.mu.RUnlock()

	for i, name := range names {
		s := snapshot[i]
		ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits), name)
		ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses), name)
		ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(s.Evictions), name)
		ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(s.Entries), name)
	}
}
