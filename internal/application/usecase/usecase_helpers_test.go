package usecase_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/tabmaster/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabmaster/internal/infrastructure/storage"
	"github.com/bnema/tabmaster/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newSQLiteGateway(t *testing.T) *storage.Gateway {
	t.Helper()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "tabmaster.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })
	return storage.NewGateway(sqlite.NewKeyValueRepository(lazy))
}

func sequentialIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

// fixedClock returns a clock that can be moved forward.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func (c *fixedClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
