package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/tabmaster/internal/domain/validation"
	"github.com/bnema/tabmaster/internal/logging"
)

// validateConfig reports every invalid value at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validatePersistence(config)...)
	validationErrors = append(validationErrors, validateToast(config)...)
	validationErrors = append(validationErrors, validateReview(config)...)
	validationErrors = append(validationErrors, validateHistory(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, "logging.level must be one of trace, debug, info, warn, error")
	}
	switch strings.ToLower(config.Logging.Format) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validatePersistence(config *Config) []string {
	if config.Persistence.Debounce.Std() < 10*time.Millisecond {
		return []string{"persistence.debounce must be at least 10ms"}
	}
	return nil
}

func validateToast(config *Config) []string {
	if config.Toast.Duration.Std() <= 0 {
		return []string{"toast.duration must be positive"}
	}
	return nil
}

func validateReview(config *Config) []string {
	var validationErrors []string
	if config.Review.GracePeriod.Std() < 0 {
		validationErrors = append(validationErrors, "review.grace_period must be non-negative")
	}
	if config.Review.Cooldown.Std() < 0 {
		validationErrors = append(validationErrors, "review.cooldown must be non-negative")
	}
	return validationErrors
}

func validateHistory(config *Config) []string {
	if config.History.MaxUndoSteps < 1 {
		return []string{"history.max_undo_steps must be at least 1"}
	}
	return nil
}

func validateAppearance(config *Config) []string {
	a := config.Appearance
	return validation.ValidatePaletteHex(
		"appearance",
		a.Background,
		a.Surface,
		a.SurfaceVariant,
		a.Text,
		a.Muted,
		a.Accent,
		a.Border,
	)
}
