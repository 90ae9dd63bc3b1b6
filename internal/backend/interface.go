// Package backend builds the kv.Store selected by configuration.
package backend

import (
	"context"

	"mindful/internal/kv"
)

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// BackendResult contains the store and the cleanup that releases it
type BackendResult struct {
	Store   kv.Store
	Cleanup CleanupFunc
}

// Close runs the cleanup, if any.
func (r *BackendResult) Close() error {
	if r == nil || r.Cleanup == nil {
		return nil
	}
	return r.Cleanup()
}

// Factory creates stores based on configuration
type Factory interface {
	// CreateBackend creates a store for the provided config
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}
