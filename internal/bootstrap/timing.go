package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/dumbvim/internal/logging"
)

// StartupTimer tracks how long each attach phase took.
type StartupTimer struct {
	start  time.Time
	last   time.Time
	phases []phase
	mu     sync.Mutex
}

type phase struct {
	name string
	dur  time.Duration
}

// NewStartupTimer creates a new timer starting from now.
func NewStartupTimer() *StartupTimer {
	now := time.Now()
	return &StartupTimer{start: now, last: now}
}

// Mark records the duration since the last mark (or start) for the given phase.
func (t *StartupTimer) Mark(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.phases = append(t.phases, phase{name: name, dur: now.Sub(t.last)})
	t.last = now
}

// LogDebug outputs all phases at debug level.
func (t *StartupTimer) LogDebug(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).Debug().Dur("total", time.Since(t.start))
	for _, p := range t.phases {
		event = event.Dur(p.name, p.dur)
	}
	event.Msg("startup timing")
}
