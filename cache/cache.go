package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// DefaultMaxCost is used when New is called with a non-positive max cost.
const DefaultMaxCost = 1 << 24

// Cache is a typed, string-keyed wrapper around ristretto.
type Cache[T any] struct {
	impl      *ristretto.Cache[string, T]
	cacheType string
}

// New creates a cache named cacheType bounded by maxCost, using costFunc to
// weigh values stored with a zero cost.
func New[T any](costFunc func(T) int64, cacheType string, maxCost int64) (*Cache[T], error) {
	if maxCost <= 0 {
		maxCost = DefaultMaxCost
	}
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e4, // few keys; one per source identifier
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl:      impl,
		cacheType: cacheType,
	}, nil
}

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value without expiry. It reports whether the value was
// accepted; call Wait before relying on a following Get.
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.SetWithTTL(key, value, cost, 0)
}

// SetWithTTL stores a value in the cache with a specific TTL; zero means no expiry.
func (c *Cache[T]) SetWithTTL(key string, value T, cost int64, ttl time.Duration) bool {
	return c.impl.SetWithTTL(key, value, cost, ttl)
}

// Delete removes a single key.
func (c *Cache[T]) Delete(key string) {
	c.impl.Del(key)
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered writes have been applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

// Close stops the cache's background goroutines.
func (c *Cache[T]) Close() {
	c.impl.Close()
}

// Type returns the display name given to New.
func (c *Cache[T]) Type() string {
	return c.cacheType
}

// GetItemCount returns the current number of items in the cache
func (c *Cache[T]) GetItemCount() int64 {
	return int64(c.impl.Metrics.KeysAdded() - c.impl.Metrics.KeysEvicted())
}

// Stats returns cache statistics for admin monitoring
func (c *Cache[T]) Stats() map[string]interface{} {
	metrics := c.impl.Metrics

	memoryUsed := metrics.CostAdded() - metrics.CostEvicted()

	hitRate := 0.0
	totalRequests := metrics.Hits() + metrics.Misses()
	if totalRequests > 0 {
		hitRate = float64(metrics.Hits()) / float64(totalRequests) * 100
	}

	return map[string]interface{}{
		"cache_type":       c.cacheType,
		"hits":             metrics.Hits(),
		"misses":           metrics.Misses(),
		"sets":             metrics.KeysAdded(),
		"total_requests":   totalRequests,
		"hit_rate":         hitRate,
		"cost_added":       metrics.CostAdded(),
		"cost_evicted":     metrics.CostEvicted(),
		"sets_dropped":     metrics.SetsDropped(),
		"sets_rejected":    metrics.SetsRejected(),
		"memory_used":      memoryUsed,
		"memory_used_kb":   float64(memoryUsed) / 1024,
		"total_added_kb":   float64(metrics.CostAdded()) / 1024,
		"total_evicted_kb": float64(metrics.CostEvicted()) / 1024,
		"current_items":    c.GetItemCount(),
	}
}
