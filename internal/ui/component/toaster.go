// Package component provides presentation-independent UI components.
package component

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/tabmaster/internal/application/port"
	"github.com/bnema/tabmaster/internal/logging"
	"github.com/bnema/tabmaster/internal/store"
)

// DefaultToastDuration is the single auto-dismiss default used by every caller.
const DefaultToastDuration = 3 * time.Second

type stopper interface {
	Stop() bool
}

type afterFunc func(d time.Duration, f func()) stopper

func realAfterFunc(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

// ToasterOption configures a Toaster.
type ToasterOption func(*Toaster)

// WithDefaultDuration sets the duration used when Show gets zero.
func WithDefaultDuration(d time.Duration) ToasterOption {
	return func(t *Toaster) {
		if d > 0 {
			t.defaultDuration = d
		}
	}
}

// Toaster drives the single toast held in the global slice.
// A new Show cancels the pending dismissal; at most one timer is live.
type Toaster struct {
	state           port.StateStore
	defaultDuration time.Duration
	after           afterFunc

	mu         sync.Mutex
	timer      stopper
	generation uint64
}

var _ port.Notifier = (*Toaster)(nil)

// NewToaster creates a toaster dispatching into state.
func NewToaster(state port.StateStore, opts ...ToasterOption) *Toaster {
	t := &Toaster{
		state:           state,
		defaultDuration: DefaultToastDuration,
		after:           realAfterFunc,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Show sets the toast text, opens it and schedules its dismissal.
// Empty text is ignored.
func (t *Toaster) Show(ctx context.Context, text string, duration time.Duration) {
	if text == "" {
		return
	}
	if duration <= 0 {
		duration = t.defaultDuration
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked()

	t.state.Dispatch(store.SetToastText{Text: text})
	t.state.Dispatch(store.OpenToast{})

	t.generation++
	gen := t.generation
	t.timer = t.after(duration, func() { t.dismiss(ctx, gen) })

	logging.FromContext(ctx).Debug().
		Str("toast_message", text).
		Dur("duration", duration).
		Msg("toast shown")
}

// dismiss closes the toast unless a newer Show superseded gen.
func (t *Toaster) dismiss(ctx context.Context, gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.generation || t.timer == nil {
		return
	}
	t.timer = nil
	t.state.Dispatch(store.CloseToast{})
	logging.FromContext(ctx).Debug().Msg("toast auto-dismissed")
}

// Hide closes the toast now and cancels its timer.
func (t *Toaster) Hide() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer == nil {
		return
	}
	t.cancelLocked()
	t.state.Dispatch(store.CloseToast{})
}

// Stop cancels any pending dismissal without touching the state.
func (t *Toaster) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
}

func (t *Toaster) cancelLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.generation++
}
