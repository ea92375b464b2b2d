package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStringCache(t *testing.T, name string) *Cache[string] {
	t.Helper()
	c, err := New[string](func(value string) int64 {
		return int64(len(value))
	}, name, 0)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestNewCache(t *testing.T) {
	cache := newStringCache(t, "Test Cache")

	testValue := "test string"
	assert.True(t, cache.Set("test-key", testValue, int64(len(testValue))))
	cache.Wait()

	value, found := cache.Get("test-key")
	require.True(t, found, "Expected to find cached value")
	assert.Equal(t, testValue, value)
	assert.Equal(t, "Test Cache", cache.Type())
}

func TestNewCacheWithSlice(t *testing.T) {
	cache, err := New[[]float64](func(value []float64) int64 {
		return int64(len(value) * 8)
	}, "Test Slice Cache", 1<<20)
	require.NoError(t, err)
	defer cache.Close()

	testValue := []float64{1.0, 2.0, 3.0}
	cache.Set("test-key", testValue, 0)
	cache.Wait()

	value, found := cache.Get("test-key")
	require.True(t, found)
	assert.Equal(t, testValue, value)
}

func TestDeleteAndClear(t *testing.T) {
	cache := newStringCache(t, "Test Cache")

	cache.Set("a", "1", 1)
	cache.Set("b", "2", 1)
	cache.Wait()

	cache.Delete("a")
	cache.Wait()
	_, found := cache.Get("a")
	assert.False(t, found)

	cache.Clear()
	_, found = cache.Get("b")
	assert.False(t, found)
}

func TestCacheStats(t *testing.T) {
	cache := newStringCache(t, "Test Cache")

	testValue := "test string"
	cache.Set("key1", testValue, int64(len(testValue)))
	cache.Set("key2", testValue, int64(len(testValue)))
	cache.Wait()

	cache.Get("key1") // Hit
	cache.Get("key2") // Hit
	cache.Get("key3") // Miss

	stats := cache.Stats()

	expectedKeys := []string{
		"cache_type", "hits", "misses", "sets", "total_requests",
		"hit_rate", "cost_added", "cost_evicted", "sets_dropped",
		"sets_rejected", "memory_used", "memory_used_kb",
		"total_added_kb", "total_evicted_kb", "current_items",
	}
	for _, key := range expectedKeys {
		assert.Contains(t, stats, key, "Expected key %s in stats", key)
	}

	assert.Equal(t, "Test Cache", stats["cache_type"])
	assert.Equal(t, uint64(2), stats["hits"])
	assert.Equal(t, uint64(1), stats["misses"])

	hitRate := stats["hit_rate"].(float64)
	assert.InDelta(t, 66.6, hitRate, 0.1)
}

func TestCacheStatsEmptyCache(t *testing.T) {
	cache := newStringCache(t, "Empty Cache")

	stats := cache.Stats()

	assert.Equal(t, "Empty Cache", stats["cache_type"])
	assert.Equal(t, uint64(0), stats["hits"])
	assert.Equal(t, uint64(0), stats["misses"])
	assert.Equal(t, uint64(0), stats["sets"])
	assert.Equal(t, uint64(0), stats["total_requests"])
	assert.Equal(t, 0.0, stats["hit_rate"])
}

func BenchmarkCacheStats(b *testing.B) {
	cache, err := New[string](func(value string) int64 {
		return int64(len(value))
	}, "Benchmark Cache", 0)
	if err != nil {
		b.Fatal(err)
	}
	defer cache.Close()

	testValue := "test string"
	for i := 0; i < 100; i++ {
		cache.Set(fmt.Sprintf("key%d", i), testValue, int64(len(testValue)))
	}
	cache.Wait()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if stats := cache.Stats(); stats == nil {
			b.Fatal("Stats is nil")
		}
	}
}
