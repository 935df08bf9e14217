package mainloop

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestLoopRunsTasksInPostingOrder(t *testing.T) {
	l := NewLoop()

	var (
		mu  sync.Mutex
		got []int
	)
	for i := 0; i < 100; i++ {
		v := i
		l.Post(func() {
			mu.Lock()
			got = append(got, v)
			mu.Unlock()
		})
	}
	l.Post(l.Stop)

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 100 {
		t.Fatalf("expected 100 tasks to run, got %d", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("task %d ran at position %d", v, i)
		}
	}
}

func TestLoopSerializesTasks(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	var (
		wg      sync.WaitGroup
		running int
		overlap bool
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go l.Post(func() {
			defer wg.Done()
			running++
			if running > 1 {
				overlap = true
			}
			time.Sleep(time.Microsecond)
			running--
		})
	}
	wg.Wait()

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if overlap {
		t.Fatalf("expected tasks to never overlap")
	}
}

func TestLoopDropsTasksAfterStop(t *testing.T) {
	l := NewLoop()
	l.Stop()

	ran := false
	l.Post(func() { ran = true })

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ran {
		t.Fatalf("expected task posted after Stop to be dropped")
	}
}
