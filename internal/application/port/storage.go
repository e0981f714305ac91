package port

import (
	"context"

	"github.com/bnema/tabmaster/internal/domain/entity"
)

// LocalStorage is a typed gateway over the key-value store.
type LocalStorage interface {
	// Load decodes the value stored under key into v. It returns false when
	// the key is absent or its value cannot be decoded.
	Load(ctx context.Context, key entity.StorageKey, v any) bool

	// Save encodes v and stores it under key.
	Save(ctx context.Context, key entity.StorageKey, v any) error

	// Delete removes key.
	Delete(ctx context.Context, key entity.StorageKey) error
}
