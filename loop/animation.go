// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

import (
	"sync"
	"time"
)

// Animation repeatedly schedules a step function on a Loop until the step
// reports it is finished or the animation is cancelled.
type Animation struct {
	loop *Loop
	step func(now time.Time) bool

	mu       sync.Mutex
	pending  FrameID
	finished bool
	done     chan struct{}
}

// Animate starts an animation: step runs once per frame for as long as it
// returns true. Typical steps advance the widget's state and redraw.
func Animate(l *Loop, step func(now time.Time) bool) *Animation {
	a := &Animation{
		loop: l,
		step: step,
		done: make(chan struct{}),
	}
	a.mu.Lock()
	a.pending = l.RequestFrame(a.tick)
	a.mu.Unlock()
	return a
}

func (a *Animation) tick(now time.Time) {
	a.mu.Lock()
	if a.finished {
		a.mu.Unlock()
		return
	}
	a.pending = 0
	a.mu.Unlock()

	more := a.step(now)

	a.mu.Lock()
	defer a.mu.Unlock()
	// The step may have cancelled us.
	if a.finished {
		return
	}
	if !more {
		a.finishLocked()
		return
	}
	a.pending = a.loop.RequestFrame(a.tick)
}

// Cancel stops the animation and deregisters its pending frame, so the step
// never runs again. Cancel is idempotent and may be called from the step.
func (a *Animation) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finished {
		return
	}
	if a.pending != 0 {
		a.loop.CancelFrame(a.pending)
		a.pending = 0
	}
	a.finishLocked()
}

func (a *Animation) finishLocked() {
	a.finished = true
	close(a.done)
}

// Done is closed when the animation finishes or is cancelled.
func (a *Animation) Done() <-chan struct{} {
	return a.done
}

// Running reports whether the animation still has frames to run.
func (a *Animation) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return !a.finished
}
