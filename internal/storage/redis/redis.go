// Package redis stores journal documents as plain Redis string values.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	goredis "github.com/go-redis/redis"

	"mindful/internal/kv"
)

// Config holds connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Store is a kv.Store backed by GET/SET on a Redis server.
type Store struct {
	client *goredis.Client
}

var _ kv.Store = (*Store)(nil)

// New connects to Redis and verifies the connection with PING.
func New(cfg Config) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping().Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return &Store{client: client}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.WithContext(ctx).Get(key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.WithContext(ctx).Set(key, value, 0).Err(); err != nil {
		slog.ErrorContext(ctx, "Unable to set value", "component", "storage", "key", key, "error", err)
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
