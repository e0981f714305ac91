// Package review decides when to ask the user to rate the extension.
//
// Recording the install time and deciding whether to prompt are separate
// steps: EnsureInstallTime mutates (idempotently), ShouldPromptReview does not.
package review

import (
	"time"

	"github.com/bnema/tabmaster/internal/domain/entity"
)

const (
	DefaultGracePeriod = 24 * time.Hour
	DefaultCooldown    = 3 * DefaultGracePeriod
)

// Policy holds the prompt timing rules.
type Policy struct {
	// GracePeriod is the minimum time since install before the first prompt.
	GracePeriod time.Duration
	// Cooldown is the minimum time between two prompts.
	Cooldown time.Duration
}

// DefaultPolicy returns a one day grace period and a three day cooldown.
func DefaultPolicy() Policy {
	return Policy{GracePeriod: DefaultGracePeriod, Cooldown: DefaultCooldown}
}

// EnsureInstallTime sets ExtensionInstalledTime to now when it is missing or
// unparsable. It reports whether settings changed.
func EnsureInstallTime(settings entity.Settings, now time.Time) (entity.Settings, bool) {
	if _, ok := settings.InstalledAt(); ok {
		return settings, false
	}
	settings.ExtensionInstalledTime = entity.FormatTimestamp(now)
	return settings, true
}

// ShouldPromptReview reports whether the rate-and-review prompt should be
// shown at now. Callers that act on true must record LastReviewRequestTime.
func ShouldPromptReview(settings entity.Settings, now time.Time, policy Policy) bool {
	if settings.IsUserRatedAndReviewed || settings.IsNeverAskAgainToRate {
		return false
	}

	installed, ok := settings.InstalledAt()
	if !ok {
		// first run: never prompt on install day
		return false
	}
	if now.Sub(installed) < policy.GracePeriod {
		return false
	}

	if last, ok := settings.LastReviewRequestAt(); ok && now.Sub(last) < policy.Cooldown {
		return false
	}

	return true
}
