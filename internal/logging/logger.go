// Package logging wires zerolog loggers through context.Context.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"

	// EnvLevel and EnvFormat override the configured values when set.
	EnvLevel  = "TABMASTER_LOG_LEVEL"
	EnvFormat = "TABMASTER_LOG_FORMAT"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Output     io.Writer // defaults to os.Stderr
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output = out
	if cfg.Format != FormatJSON {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromConfigValues builds a logger from the string values found in the
// config file. Unknown levels fall back to info, unknown formats to console.
func NewFromConfigValues(level, format string) zerolog.Logger {
	return New(configFromValues(level, format, nil))
}

// NewWithOutput is NewFromConfigValues writing to w instead of stderr.
func NewWithOutput(level, format string, w io.Writer) zerolog.Logger {
	return New(configFromValues(level, format, w))
}

// NewFromEnv creates a logger based on environment variables.
// TABMASTER_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// TABMASTER_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv(EnvLevel), os.Getenv(EnvFormat))
}

func configFromValues(level, format string, w io.Writer) Config {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		cfg.Format = FormatJSON
	default:
		cfg.Format = FormatConsole
	}
	cfg.Output = w
	return cfg
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
