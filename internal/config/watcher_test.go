package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_WatchReloadsExternalChange(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var latest atomic.Int64
	mgr.OnConfigChange(func(c *Config) {
		latest.Store(int64(c.History.MaxUndoSteps))
	})
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch(), "second Watch is a no-op")

	cfg := mgr.Get()
	cfg.History.MaxUndoSteps = 12
	data, err := EncodeTOML(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	require.Eventually(t, func() bool {
		return latest.Load() == 12
	}, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, 12, mgr.Get().History.MaxUndoSteps)
}
