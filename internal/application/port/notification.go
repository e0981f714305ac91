package port

import (
	"context"
	"time"
)

// Notifier shows a single transient message. A new message replaces the
// current one.
type Notifier interface {
	// Show displays text for duration; zero uses the configured default.
	Show(ctx context.Context, text string, duration time.Duration)
}
