package config

import (
	"path/filepath"
	"time"
)

const (
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	defaultMaxSizeMB    = 10
	defaultMaxBackups   = 3
	defaultDebounce     = time.Second
	defaultToast        = 3000 * time.Millisecond
	defaultGracePeriod  = 24 * time.Hour
	defaultCooldown     = 72 * time.Hour
	defaultMaxUndoSteps = 50
)

func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return filepath.Join(".", "logs")
	}
	return logDir
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			LogDir:     getDefaultLogDir(),
			MaxSizeMB:  defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
		},
		Persistence: PersistenceConfig{
			AutoFlush: true,
			Debounce:  Duration(defaultDebounce),
		},
		Toast: ToastConfig{
			Duration: Duration(defaultToast),
		},
		Review: ReviewConfig{
			GracePeriod: Duration(defaultGracePeriod),
			Cooldown:    Duration(defaultCooldown),
		},
		History: HistoryConfig{
			MaxUndoSteps: defaultMaxUndoSteps,
		},
		Appearance: AppearanceConfig{
			Background:     "#0a0a0b",
			Surface:        "#1a1a1b",
			SurfaceVariant: "#2d2d2d",
			Text:           "#ffffff",
			Muted:          "#909090",
			Accent:         "#4ade80",
			Border:         "#333333",
		},
	}
}
