package redis

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"

	"mindful/internal/kv"
)

// Runs against a real server only when REDIS_ADDR is set.
func TestRedisStoreIntegration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	s, err := New(Config{Addr: addr})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	keys := kv.NewKeys("test-" + uuid.NewString())

	if _, err := s.Get(ctx, keys.Notes()); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := kv.Save(ctx, s, keys.Notes(), map[string]string{"2024-03": "ok"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	notes, status, err := kv.Load[map[string]string](ctx, s, keys.Notes())
	if err != nil || status != kv.Valid || notes["2024-03"] != "ok" {
		t.Fatalf("load = %v, %v, %v", notes, status, err)
	}
	s.client.Del(keys.Notes())
}

func TestNewFailsWithoutServer(t *testing.T) {
	if _, err := New(Config{Addr: "127.0.0.1:1"}); err == nil {
		t.Fatal("expected connection error")
	}
}
