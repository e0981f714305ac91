package repository

import (
	"context"
	"time"
)

// KeyInfo describes a stored entry without its value.
type KeyInfo struct {
	Key       string
	Size      int64
	UpdatedAt time.Time
}

// KeyValueRepository stores opaque values by string key.
// Writes are atomic per key.
type KeyValueRepository interface {
	// Get returns the stored value, or nil with no error when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put inserts or replaces the value for key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every stored key ordered by name.
	List(ctx context.Context) ([]KeyInfo, error)
}
