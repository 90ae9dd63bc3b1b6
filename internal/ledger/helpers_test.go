package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"mindful/internal/kv"
)

var errBoom = errors.New("boom")

// flakyStore fails writes to the keys listed in failSet.
type flakyStore struct {
	*kv.MemoryStore
	failSet map[string]bool
	sets    []string
}

func newFlakyStore() *flakyStore {
	return &flakyStore{MemoryStore: kv.NewMemoryStore(), failSet: map[string]bool{}}
}

func (s *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	if s.failSet[key] {
		return errBoom
	}
	s.sets = append(s.sets, key)
	return s.MemoryStore.Set(ctx, key, value)
}

type recordingNotifier struct {
	changes []Change
	err     error
}

func (n *recordingNotifier) Notify(_ context.Context, c Change) error {
	n.changes = append(n.changes, c)
	return n.err
}

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

var keys = kv.NewKeys(kv.DefaultPrefix)

func openJournal(t *testing.T, store kv.Store, opts ...Option) (*Journal, *testClock) {
	t.Helper()
	clock := &testClock{t: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	opts = append([]Option{WithClock(clock.now), WithIDs(sequentialIDs())}, opts...)
	j, err := Open(context.Background(), store, opts...)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	return j, clock
}
