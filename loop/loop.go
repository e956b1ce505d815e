// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/vizcanvas"
)

// DefaultFrameInterval is the tick period used by Run: 60 frames per second.
const DefaultFrameInterval = time.Second / 60

// FrameID identifies a pending frame callback.
type FrameID uint64

// FrameFunc is called once on the frame it was requested for, with the
// frame's timestamp.
type FrameFunc func(now time.Time)

// Loop runs posted tasks and frame callbacks on a single goroutine.
//
// Post, RequestFrame and CancelFrame are safe for concurrent use. Run and
// Step must not be called concurrently with each other.
type Loop struct {
	interval time.Duration

	mu     sync.Mutex
	tasks  []func()
	frames map[FrameID]FrameFunc
	order  []FrameID
	nextID FrameID
	wake   chan struct{}
}

// Option configures a Loop.
type Option func(*Loop)

// WithFrameInterval sets the tick period used by Run. Non-positive values
// keep the default.
func WithFrameInterval(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// New creates a loop.
func New(opts ...Option) *Loop {
	l := &Loop{
		interval: DefaultFrameInterval,
		frames:   make(map[FrameID]FrameFunc),
		nextID:   1,
		wake:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FrameInterval returns the tick period used by Run.
func (l *Loop) FrameInterval() time.Duration {
	return l.interval
}

// Post queues fn to run on the loop goroutine. Tasks run in the order they
// were posted, before the next frame batch.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// RequestFrame schedules fn for the next frame batch. A frame requested
// while a batch is running goes to the following batch.
func (l *Loop) RequestFrame(fn FrameFunc) FrameID {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID
	l.nextID++
	l.frames[id] = fn
	l.order = append(l.order, id)
	return id
}

// CancelFrame removes a pending frame callback. Once CancelFrame returns the
// callback will not run. Cancelling an unknown or already run frame is a
// no-op.
func (l *Loop) CancelFrame(id FrameID) {
	l.mu.Lock()
	delete(l.frames, id)
	l.mu.Unlock()
}

// Pending returns the number of frame callbacks waiting for a batch.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.frames)
}

// RunTasks runs the tasks queued so far and returns how many ran. Tasks
// posted by those tasks wait for the next call.
func (l *Loop) RunTasks() int {
	l.mu.Lock()
	tasks := l.tasks
	l.tasks = nil
	l.mu.Unlock()

	for _, fn := range tasks {
		fn()
	}
	return len(tasks)
}

// Step runs queued tasks, then one frame batch stamped now. It returns the
// number of frame callbacks that ran.
func (l *Loop) Step(now time.Time) int {
	l.RunTasks()

	l.mu.Lock()
	batch := l.order
	l.order = nil
	l.mu.Unlock()

	ran := 0
	for _, id := range batch {
		l.mu.Lock()
		fn, ok := l.frames[id]
		delete(l.frames, id)
		l.mu.Unlock()
		// Cancelled, possibly by an earlier callback in this batch.
		if !ok {
			continue
		}
		fn(now)
		ran++
	}
	return ran
}

// Run drives the loop until ctx is done: queued tasks run as soon as they
// are posted and frame batches run every frame interval. Run returns
// ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	log := vizcanvas.Logger()
	log.Debug("loop started", slog.Duration("interval", l.interval))
	defer log.Debug("loop stopped")

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
			l.RunTasks()
		case now := <-ticker.C:
			l.Step(now)
		}
	}
}
