// Package config loads, validates and watches the tabmaster configuration.
package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/invopop/jsonschema"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Config represents the complete configuration for tabmaster.
type Config struct {
	Database    DatabaseConfig    `mapstructure:"database" toml:"database" json:"database"`
	Logging     LoggingConfig     `mapstructure:"logging" toml:"logging" json:"logging"`
	Persistence PersistenceConfig `mapstructure:"persistence" toml:"persistence" json:"persistence"`
	Toast       ToastConfig       `mapstructure:"toast" toml:"toast" json:"toast"`
	Review      ReviewConfig      `mapstructure:"review" toml:"review" json:"review"`
	History     HistoryConfig     `mapstructure:"history" toml:"history" json:"history"`
	Appearance  AppearanceConfig  `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// DatabaseConfig locates the local storage database.
type DatabaseConfig struct {
	// Path to the sqlite file. Empty means $XDG_DATA_HOME/tabmaster/tabmaster.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path" jsonschema:"description=Path to the sqlite database file"`
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}

// PersistenceConfig controls when dirty tab data is written.
type PersistenceConfig struct {
	// AutoFlush writes dirty tab data after Debounce of inactivity.
	AutoFlush bool     `mapstructure:"auto_flush" toml:"auto_flush" json:"auto_flush"`
	Debounce  Duration `mapstructure:"debounce" toml:"debounce" json:"debounce"`
}

// ToastConfig holds the toast auto-dismiss delay.
type ToastConfig struct {
	Duration Duration `mapstructure:"duration" toml:"duration" json:"duration"`
}

// ReviewConfig tunes the rate-and-review prompt.
type ReviewConfig struct {
	GracePeriod Duration `mapstructure:"grace_period" toml:"grace_period" json:"grace_period"`
	Cooldown    Duration `mapstructure:"cooldown" toml:"cooldown" json:"cooldown"`
}

// HistoryConfig bounds the undo stack.
type HistoryConfig struct {
	MaxUndoSteps int `mapstructure:"max_undo_steps" toml:"max_undo_steps" json:"max_undo_steps" jsonschema:"minimum=1"`
}

// AppearanceConfig is the terminal color palette, as #RRGGBB values.
type AppearanceConfig struct {
	Background     string `mapstructure:"background" toml:"background" json:"background" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Surface        string `mapstructure:"surface" toml:"surface" json:"surface" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" json:"surface_variant" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Text           string `mapstructure:"text" toml:"text" json:"text" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Muted          string `mapstructure:"muted" toml:"muted" json:"muted" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Accent         string `mapstructure:"accent" toml:"accent" json:"accent" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Border         string `mapstructure:"border" toml:"border" json:"border" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
}

// Duration is a time.Duration written as a Go duration string ("1s", "72h").
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalJSON writes the duration string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON reads a duration string.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// JSONSchema describes Duration as a string.
func (Duration) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     `^([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`,
		Description: "Go duration string, e.g. 1s or 72h",
	}
}
