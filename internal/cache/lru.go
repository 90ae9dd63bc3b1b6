package cache

import (
	"container/list"
	"sync"
	"time"
)

// Stats counts lookups and removals since the cache was created.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Expired   uint64
}

// LRUCache keeps at most maxSize values, dropping the least recently used
// one on overflow. Values older than ttl are treated as missing.
type LRUCache[T any] struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	now     func() time.Time
	index   map[string]*list.Element
	order   *list.List // front is most recently used
	stats   Stats
}

type lruEntry[T any] struct {
	key      string
	value    T
	storedAt time.Time
}

// NewLRUCache creates a cache. A maxSize below 1 is treated as 1.
func NewLRUCache[T any](maxSize int, ttl time.Duration) *LRUCache[T] {
	return &LRUCache[T]{
		maxSize: max(maxSize, 1),
		ttl:     ttl,
		now:     time.Now,
		index:   make(map[string]*list.Element),
		order:   list.New(),
	}
}

func (c *LRUCache[T]) expired(e *lruEntry[T], now time.Time) bool {
	return now.Sub(e.storedAt) > c.ttl
}

func (c *LRUCache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		c.stats.Misses++
		var zero T
		return zero, false
	}
	e := el.Value.(*lruEntry[T])
	if c.expired(e, c.now()) {
		c.drop(el)
		c.stats.Expired++
		c.stats.Misses++
		var zero T
		return zero, false
	}

	c.order.MoveToFront(el)
	c.stats.Hits++
	return e.value, true
}

func (c *LRUCache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := &lruEntry[T]{key: key, value: value, storedAt: c.now()}
	if el, ok := c.index[key]; ok {
		el.Value = e
		c.order.MoveToFront(el)
		return
	}

	c.index[key] = c.order.PushFront(e)
	for c.order.Len() > c.maxSize {
		c.drop(c.order.Back())
		c.stats.Evictions++
	}
}

func (c *LRUCache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		c.drop(el)
	}
}

func (c *LRUCache[T]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.index)
	c.order.Init()
}

// CleanExpired drops every expired value and returns how many were dropped.
func (c *LRUCache[T]) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	// Oldest values sit at the back; walk from there.
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if c.expired(el.Value.(*lruEntry[T]), now) {
			c.drop(el)
			n++
		}
		el = prev
	}
	c.stats.Expired += uint64(n)
	return n
}

func (c *LRUCache[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns a snapshot of the counters.
func (c *LRUCache[T]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *LRUCache[T]) drop(el *list.Element) {
	delete(c.index, el.Value.(*lruEntry[T]).key)
	c.order.Remove(el)
}
