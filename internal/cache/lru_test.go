package cache

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func newTestCache(size int, ttl time.Duration) (*LRUCache[[]byte], *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := NewLRUCache[[]byte](size, ttl)
	c.now = clock.now
	return c, clock
}

func TestLRUCacheGetSet(t *testing.T) {
	c, _ := newTestCache(2, time.Minute)

	c.Set("msj:entries", []byte("[]"))
	got, ok := c.Get("msj:entries")
	if !ok || string(got) != "[]" {
		t.Fatalf("expected hit, got %q ok=%v", got, ok)
	}

	if _, ok := c.Get("msj:notes"); ok {
		t.Fatal("expected miss")
	}
}

func TestLRUCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newTestCache(2, time.Minute)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	c.Get("a") // a is now most recent
	c.Set("c", []byte("3"))

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should still be cached")
	}
	if c.Size() != 2 {
		t.Errorf("expected size 2, got %d", c.Size())
	}
}

func TestLRUCacheExpiry(t *testing.T) {
	c, clock := newTestCache(4, time.Second)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	clock.t = clock.t.Add(2 * time.Second)

	if _, ok := c.Get("a"); ok {
		t.Error("a should have expired")
	}
	if n := c.CleanExpired(); n != 1 {
		t.Errorf("expected 1 expired entry cleaned, got %d", n)
	}
	if c.Size() != 0 {
		t.Errorf("expected empty cache, got %d", c.Size())
	}
}

func TestLRUCacheDeleteAndPurge(t *testing.T) {
	c, _ := newTestCache(4, time.Minute)
	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("a should be deleted")
	}

	c.Purge()
	if c.Size() != 0 {
		t.Errorf("expected purge to empty the cache, got %d", c.Size())
	}
	c.Set("c", []byte("3"))
	if _, ok := c.Get("c"); !ok {
		t.Error("cache should be usable after purge")
	}
}

func TestLRUCacheStats(t *testing.T) {
	c, clock := newTestCache(1, time.Second)

	c.Set("a", []byte("1"))
	c.Get("a")
	c.Get("missing")
	c.Set("b", []byte("2")) // evicts a
	clock.t = clock.t.Add(2 * time.Second)
	c.Get("b")

	want := Stats{Hits: 1, Misses: 2, Evictions: 1, Expired: 1}
	if got := c.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestManagerSweep(t *testing.T) {
	c, clock := newTestCache(4, time.Second)
	c.Set("a", []byte("1"))

	m := NewManager(nil)
	m.Register(c)
	clock.t = clock.t.Add(time.Minute)

	if n := m.Sweep(); n != 1 {
		t.Fatalf("expected 1 swept entry, got %d", n)
	}

	m.StartCleanup(10 * time.Millisecond)
	m.Stop()
	m.Stop() // second stop is a no-op
}
