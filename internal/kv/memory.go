package kv

import (
	"context"
	"sync"
)

// MemoryStore keeps values in process memory. Values are copied on the way in
// and out so callers never share buffers with the store.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

// NewMemoryStoreFrom seeds a memory store with raw values, e.g. in tests.
func NewMemoryStoreFrom(values map[string]string) *MemoryStore {
	s := NewMemoryStore()
	for k, v := range values {
		s.items[k] = []byte(v)
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = append([]byte(nil), value...)
	return nil
}

// Keys returns the stored keys in no particular order.
func (s *MemoryStore) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.items))
	for k := range s.items {
		out = append(out, k)
	}
	return out
}

func (s *MemoryStore) Close() error { return nil }
