package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/tabmaster/internal/logging"
)

type phase struct {
	name string
	took time.Duration
}

// StartupTimer records how long each startup phase took.
type StartupTimer struct {
	mu     sync.Mutex
	start  time.Time
	last   time.Time
	phases []phase
	now    func() time.Time
}

// NewStartupTimer creates a timer that starts now.
func NewStartupTimer() *StartupTimer {
	t := time.Now()
	return &StartupTimer{start: t, last: t, now: time.Now}
}

// Mark closes the current phase under name.
func (t *StartupTimer) Mark(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.phases = append(t.phases, phase{name: name, took: now.Sub(t.last)})
	t.last = now
}

// Total returns the time since the timer was created.
func (t *StartupTimer) Total() time.Duration {
	return t.now().Sub(t.start)
}

// Phases returns the phase names in the order they were marked.
func (t *StartupTimer) Phases() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	names := make([]string, len(t.phases))
	for i, p := range t.phases {
		names[i] = p.name
	}
	return names
}

// Log writes one debug event with every phase duration.
func (t *StartupTimer) Log(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).Debug().Dur("total", t.now().Sub(t.start))
	for _, p := range t.phases {
		event = event.Dur(p.name, p.took)
	}
	event.Msg("startup timing")
}
