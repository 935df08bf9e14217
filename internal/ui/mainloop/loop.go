// Package mainloop provides the single UI execution context and helpers to
// schedule work on it.
package mainloop

import (
	"context"
	"sync"
)

// Loop runs posted tasks one at a time, in posting order, on the goroutine
// that called Run.
type Loop struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []func()
	stopped bool
}

func NewLoop() *Loop {
	l := &Loop{}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Post enqueues fn. It never blocks. Tasks posted after Stop are dropped.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	l.queue = append(l.queue, fn)
	l.cond.Signal()
}

// Run executes tasks until ctx is done or Stop is called. Tasks still queued
// at that point are discarded.
func (l *Loop) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, l.Stop)
	defer stop()

	for {
		l.mu.Lock()
		for len(l.queue) == 0 && !l.stopped {
			l.cond.Wait()
		}
		if l.stopped {
			l.queue = nil
			l.mu.Unlock()
			return ctx.Err()
		}
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		fn()
	}
}

// Stop makes Run return after the task currently executing.
func (l *Loop) Stop() {
	l.mu.Lock()
	l.stopped = true
	l.cond.Broadcast()
	l.mu.Unlock()
}
