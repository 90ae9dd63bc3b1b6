// Package kv is the persistence contract of the journal: JSON documents stored
// under namespaced keys, read back leniently.
//
// A value that is missing reads as Absent and a value that cannot be decoded
// reads as Malformed. Neither is an error; callers fall back to defaults. Only
// backend I/O failures surface as errors. There is no atomicity across keys.
package kv

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Store.Get when no value is stored under the key.
var ErrNotFound = errors.New("kv: key not found")

// Store is a byte-oriented key-value backend. Set is all-or-nothing per key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Invalidator is implemented by stores that may serve stale values, such as
// a cache in front of a shared backend.
type Invalidator interface {
	Invalidate(keys ...string)
}

// Status tells a caller what Load found under a key.
type Status int

const (
	Absent Status = iota
	Malformed
	Valid
)

func (s Status) String() string {
	switch s {
	case Malformed:
		return "malformed"
	case Valid:
		return "valid"
	default:
		return "absent"
	}
}

// Load reads and decodes the JSON document under key.
//
// A missing key or a stored JSON null is Absent; undecodable bytes are
// Malformed. In both cases the zero T is returned with a nil error.
func Load[T any](ctx context.Context, s Store, key string) (T, Status, error) {
	var zero T

	data, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return zero, Absent, nil
	}
	if err != nil {
		return zero, Absent, fmt.Errorf("load %s: %w", key, err)
	}

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return zero, Absent, nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, Malformed, nil
	}
	return v, Valid, nil
}

// Occupied reports whether key holds a parseable JSON value that is not
// falsy. Missing keys, unparseable bytes, null, false, 0 and "" are all
// unoccupied. Any other value, even one of the wrong shape, occupies the key.
func Occupied(ctx context.Context, s Store, key string) (bool, error) {
	data, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return false, nil
	}
	switch x := v.(type) {
	case nil:
		return false, nil
	case bool:
		return x, nil
	case float64:
		return x != 0, nil
	case string:
		return x != "", nil
	default:
		return true, nil
	}
}

// Save encodes value as JSON and stores it under key.
func Save[T any](ctx context.Context, s Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
