package cache

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := New[string, int](100)
	require.NotNil(t, c)
	assert.Equal(t, 100, c.Capacity())
	assert.Equal(t, 0, c.Len())
}

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 42)

	val, ok := c.Get("key1")
	require.True(t, ok)
	assert.Equal(t, 42, val)

	_, ok = c.Get("nonexistent")
	assert.False(t, ok)

	c.Set("key1", 100)
	val, _ = c.Get("key1")
	assert.Equal(t, 100, val)
	assert.Equal(t, 1, c.Len())
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, string](3)
	c.Set(1, "a")
	c.Set(2, "b")
	c.Set(3, "c")

	// Touch 1 so that 2 becomes the oldest.
	_, _ = c.Get(1)
	c.Set(4, "d")

	_, ok := c.Get(2)
	assert.False(t, ok, "2 should have been evicted")
	for _, k := range []int{1, 3, 4} {
		_, ok := c.Get(k)
		assert.True(t, ok, "%d should still be cached", k)
	}
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestCacheZeroCapacity(t *testing.T) {
	c := New[string, int](0)
	c.Set("a", 1)
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCacheClear(t *testing.T) {
	c := New[string, int](8)
	for i := 0; i < 5; i++ {
		c.Set(strconv.Itoa(i), i)
	}
	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("0")
	assert.False(t, ok)

	// The cache stays usable after Clear.
	c.Set("x", 7)
	val, ok := c.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 7, val)
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	_, _ = c.Get("a")
	_, _ = c.Get("b")

	s := c.Stats()
	assert.Equal(t, uint64(1), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.Equal(t, 1, s.Len)
	assert.Equal(t, 4, s.Capacity)
}

func BenchmarkCacheGet(b *testing.B) {
	c := New[string, int](1000)
	for i := 0; i < 100; i++ {
		c.Set(strconv.Itoa(i), i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("50")
	}
}
