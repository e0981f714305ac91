package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/tabmaster/internal/application/port"
	"github.com/bnema/tabmaster/internal/domain/repository"
	"github.com/bnema/tabmaster/internal/logging"
)

type kvRepo struct {
	provider port.DatabaseProvider
}

// NewKeyValueRepository creates a key-value repository backed by the kv_store table.
func NewKeyValueRepository(provider port.DatabaseProvider) repository.KeyValueRepository {
	return &kvRepo{provider: provider}
}

func (r *kvRepo) Get(ctx context.Context, key string) ([]byte, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	var value string
	err = db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return []byte(value), nil
}

func (r *kvRepo) Put(ctx context.Context, key string, value []byte) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().
		Str("key", key).
		Int("bytes", len(value)).
		Msg("writing key")

	_, err = db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (r *kvRepo) Delete(ctx context.Context, key string) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (r *kvRepo) List(ctx context.Context) ([]repository.KeyInfo, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT key, length(CAST(value AS BLOB)), updated_at FROM kv_store ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var infos []repository.KeyInfo
	for rows.Next() {
		var (
			info    repository.KeyInfo
			updated any
		)
		if err := rows.Scan(&info.Key, &info.Size, &updated); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		info.UpdatedAt = parseUpdatedAt(updated)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// parseUpdatedAt accepts the forms the driver may hand back for a DATETIME
// column: a decoded time, text, or a unix timestamp.
func parseUpdatedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.DateTime} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	case []byte:
		return parseUpdatedAt(string(t))
	case int64:
		return time.Unix(t, 0).UTC()
	}
	return time.Time{}
}
