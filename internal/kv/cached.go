package kv

import (
	"context"

	"mindful/internal/cache"
)

// CachedStore is a read-through, write-through cache in front of another
// store. Another process writing the same backend is only observed once the
// cached value expires.
type CachedStore struct {
	inner Store
	cache cache.Cache[[]byte]
}

var (
	_ Store       = (*CachedStore)(nil)
	_ Invalidator = (*CachedStore)(nil)
)

func NewCachedStore(inner Store, c cache.Cache[[]byte]) *CachedStore {
	return &CachedStore{inner: inner, cache: c}
}

func (s *CachedStore) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := s.cache.Get(key); ok {
		return append([]byte(nil), v...), nil
	}
	v, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, append([]byte(nil), v...))
	return v, nil
}

func (s *CachedStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.inner.Set(ctx, key, value); err != nil {
		s.cache.Delete(key)
		return err
	}
	s.cache.Set(key, append([]byte(nil), value...))
	return nil
}

// Invalidate drops the cached values of keys, or of every key when none are
// given, so the next reads hit the backend.
func (s *CachedStore) Invalidate(keys ...string) {
	if len(keys) == 0 {
		s.cache.Purge()
		return
	}
	for _, k := range keys {
		s.cache.Delete(k)
	}
}

func (s *CachedStore) Close() error {
	s.cache.Purge()
	return s.inner.Close()
}
