// Package storage is the typed JSON gateway over the local key-value store.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/tabmaster/internal/application/port"
	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/domain/repository"
	"github.com/bnema/tabmaster/internal/logging"
)

// Gateway loads and saves named data domains as JSON.
type Gateway struct {
	repo repository.KeyValueRepository
}

var _ port.LocalStorage = (*Gateway)(nil)

// NewGateway wraps repo.
func NewGateway(repo repository.KeyValueRepository) *Gateway {
	return &Gateway{repo: repo}
}

// Load decodes the value under key into v. Absent, unreadable and malformed
// values all return false; the last two are logged.
func (g *Gateway) Load(ctx context.Context, key entity.StorageKey, v any) bool {
	log := logging.FromContext(ctx)

	raw, err := g.repo.Get(ctx, string(key))
	if err != nil {
		log.Warn().Err(err).Str("key", string(key)).Msg("failed to read from local storage")
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Warn().Err(err).Str("key", string(key)).Msg("ignoring malformed local storage value")
		return false
	}
	return true
}

// Save encodes v and writes it under key. Failures are returned, not retried.
func (g *Gateway) Save(ctx context.Context, key entity.StorageKey, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := g.repo.Put(ctx, string(key), raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (g *Gateway) Delete(ctx context.Context, key entity.StorageKey) error {
	if err := g.repo.Delete(ctx, string(key)); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Keys lists stored entries.
func (g *Gateway) Keys(ctx context.Context) ([]repository.KeyInfo, error) {
	return g.repo.List(ctx)
}
