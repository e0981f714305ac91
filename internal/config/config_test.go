package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestDefaultConfig_IsValid(t *testing.T) {
	isolateXDG(t)
	cfg := DefaultConfig()

	require.NoError(t, validateConfig(cfg))
	assert.Equal(t, 3000*time.Millisecond, cfg.Toast.Duration.Std())
	assert.Equal(t, 24*time.Hour, cfg.Review.GracePeriod.Std())
	assert.Equal(t, 72*time.Hour, cfg.Review.Cooldown.Std())
	assert.Equal(t, time.Second, cfg.Persistence.Debounce.Std())
	assert.Equal(t, 50, cfg.History.MaxUndoSteps)
	assert.Equal(t, "#4ade80", cfg.Appearance.Accent)
}

func TestSetDefaults(t *testing.T) {
	isolateXDG(t)
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.Equal(t, "3s", mgr.viper.GetString("toast.duration"))
	assert.True(t, mgr.viper.GetBool("persistence.auto_flush"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	path := filepath.Join(root, "config", appName, configName)
	assert.Equal(t, path, mgr.ConfigFile())
	assert.FileExists(t, path)
	assert.FileExists(t, filepath.Join(root, "config", appName, schemaName))

	cfg := mgr.Get()
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), cfg.Database.Path)
	assert.Equal(t, 3*time.Second, cfg.Toast.Duration.Std())
}

func TestManager_LoadReadsFileAndEnv(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	content := `
[database]
path = '/tmp/tabs.sqlite'

[toast]
duration = '1500ms'

[review]
grace_period = '2h'
cooldown = '6h'
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("TABMASTER_LOG_LEVEL", "DEBUG")
	t.Setenv("TABMASTER_HISTORY_MAX_UNDO_STEPS", "7")

	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "/tmp/tabs.sqlite", cfg.Database.Path)
	assert.Equal(t, 1500*time.Millisecond, cfg.Toast.Duration.Std())
	assert.Equal(t, 2*time.Hour, cfg.Review.GracePeriod.Std())
	assert.Equal(t, 6*time.Hour, cfg.Review.Cooldown.Std())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 7, cfg.History.MaxUndoSteps)
	// untouched keys keep their defaults
	assert.Equal(t, time.Second, cfg.Persistence.Debounce.Std())
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[history]\nmax_undo_steps = 0\n"), 0o644))

	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.max_undo_steps")
}

func TestManager_LoadRejectsInvalidPalette(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[appearance]\naccent = 'green'\n"), 0o644))

	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appearance.accent must be a hex color")
}

func TestManager_SaveRoundTrip(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Toast.Duration = Duration(4 * time.Second)
	require.NoError(t, mgr.Save(cfg))

	reloaded, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 4*time.Second, reloaded.Get().Toast.Duration.Std())

	bad := mgr.Get()
	bad.Toast.Duration = 0
	assert.Error(t, mgr.Save(bad))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantKey: "logging.level"},
		{name: "format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantKey: "logging.format"},
		{name: "debounce", mutate: func(c *Config) { c.Persistence.Debounce = Duration(time.Millisecond) }, wantKey: "persistence.debounce"},
		{name: "toast", mutate: func(c *Config) { c.Toast.Duration = Duration(-time.Second) }, wantKey: "toast.duration"},
		{name: "cooldown", mutate: func(c *Config) { c.Review.Cooldown = Duration(-time.Hour) }, wantKey: "review.cooldown"},
		{name: "history", mutate: func(c *Config) { c.History.MaxUndoSteps = 0 }, wantKey: "history.max_undo_steps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("90s")))
	assert.Equal(t, 90*time.Second, d.Std())

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(text))

	assert.Error(t, d.UnmarshalText([]byte("soon")))
}

func TestSchema_DescribesKeys(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"database", "logging", "persistence", "toast", "review", "history", "appearance"} {
		assert.Contains(t, props, key)
	}
	assert.True(t, strings.Contains(string(data), "Go duration string"))
}

func TestSortTOMLSections(t *testing.T) {
	input := `[toast]
duration = '3s'

[history]
max_undo_steps = 50

[review]
cooldown = '72h0m0s'
`
	result := sortTOMLSections(input)

	var sections []string
	for _, line := range strings.Split(result, "\n") {
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	assert.Equal(t, []string{"[history]", "[review]", "[toast]"}, sections)
}
