package progress

import (
	"context"
	"time"
)

// Run drives t on a timer until it completes or ctx ends. onTick, if
// set, receives a snapshot after Start and after every tick. The timer
// is released on every return path.
func Run(ctx context.Context, t Task, onTick func(Snapshot)) error {
	timer := time.NewTimer(t.Start())
	defer timer.Stop()
	if onTick != nil {
		onTick(t.Snapshot())
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			next, done := t.Tick()
			if onTick != nil {
				onTick(t.Snapshot())
			}
			if done {
				return nil
			}
			timer.Reset(next)
		}
	}
}

// Handle controls a task started with Go.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Go runs t in its own goroutine. The task must not be touched by the
// caller until Done is closed.
func Go(ctx context.Context, t Task, onTick func(Snapshot)) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		defer cancel()
		h.err = Run(ctx, t, onTick)
	}()
	return h
}

// Stop cancels the task and waits for its goroutine to exit.
func (h *Handle) Stop() {
	h.cancel()
	<-h.done
}

func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait blocks until the task finishes and returns its result.
func (h *Handle) Wait() error {
	<-h.done
	return h.err
}
