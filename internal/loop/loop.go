// Package loop provides an owned animation loop with an explicit
// start/stop/dispose contract, in place of a free-running self-rescheduling
// frame callback.
package loop

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrDisposed = errors.New("loop: disposed")

// TickFunc is invoked once per frame with the seconds elapsed since Start.
type TickFunc func(t float64)

// Loop drives a tick function at a fixed rate on its own goroutine. Stop
// pauses, Start resumes, Dispose is terminal. All methods are safe for
// concurrent use; the tick function itself always runs on the loop
// goroutine.
type Loop struct {
	interval time.Duration
	tick     TickFunc

	mu       sync.Mutex
	running  bool
	disposed bool
	cancel   chan struct{}
	done     chan struct{}
	elapsed  time.Duration
}

// New creates a stopped loop at the given frame rate.
func New(fps int, tick TickFunc) (*Loop, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", fps)
	}
	if tick == nil {
		return nil, errors.New("tick func must not be nil")
	}
	return &Loop{
		interval: time.Second / time.Duration(fps),
		tick:     tick,
	}, nil
}

// Start begins (or resumes) ticking. Starting a running loop is a no-op;
// starting a disposed loop returns ErrDisposed.
func (l *Loop) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.disposed {
		return ErrDisposed
	}
	if l.running {
		return nil
	}
	l.running = true
	l.cancel = make(chan struct{})
	l.done = make(chan struct{})
	go l.run(l.cancel, l.done)
	return nil
}

func (l *Loop) run(cancel <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-cancel:
			return
		case <-ticker.C:
			l.mu.Lock()
			l.elapsed += l.interval
			t := l.elapsed.Seconds()
			l.mu.Unlock()
			l.tick(t)
		}
	}
}

// Stop pauses the loop, waiting for any in-flight tick to finish. Elapsed
// time is retained so a later Start resumes the clock. Stopping a stopped
// loop is a no-op.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.running = false
	cancel, done := l.cancel, l.done
	l.mu.Unlock()

	close(cancel)
	<-done
}

// Running reports whether the loop is ticking.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Elapsed returns the accumulated tick time.
func (l *Loop) Elapsed() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.elapsed
}

// Dispose stops the loop and makes it unusable. Idempotent.
func (l *Loop) Dispose() {
	l.Stop()
	l.mu.Lock()
	l.disposed = true
	l.mu.Unlock()
}

// Disposed reports whether Dispose has been called.
func (l *Loop) Disposed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.disposed
}
