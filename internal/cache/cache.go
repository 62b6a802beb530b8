package cache

// Cache is a generic LRU cache holding at most capacity entries.
// A capacity of 0 disables caching: Set is a no-op and Get always misses.
type Cache[K comparable, V any] struct {
	entries  map[K]*lruNode[K, V]
	order    lruList[K, V]
	capacity int
	stats    Stats
}

// Stats contains cache statistics.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// New creates a cache holding at most capacity entries.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Cache[K, V]{
		entries:  make(map[K]*lruNode[K, V]),
		capacity: capacity,
	}
}

// Get retrieves a value and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	node, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}
	c.stats.Hits++
	c.order.moveToFront(node)
	return node.value, true
}

// Set stores a value, evicting the least recently used entry when full.
func (c *Cache[K, V]) Set(key K, value V) {
	if c.capacity == 0 {
		return
	}
	if node, ok := c.entries[key]; ok {
		node.value = value
		c.order.moveToFront(node)
		return
	}
	if c.order.len >= c.capacity {
		if oldest := c.order.removeOldest(); oldest != nil {
			delete(c.entries, oldest.key)
			c.stats.Evictions++
		}
	}
	c.entries[key] = c.order.pushFront(key, value)
}

// Clear removes all entries. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]*lruNode[K, V])
	c.order = lruList[K, V]{}
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	s := c.stats
	s.Len = len(c.entries)
	s.Capacity = c.capacity
	return s
}
