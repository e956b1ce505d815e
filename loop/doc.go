// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package loop is a single-threaded event loop for visualizations.
//
// All drawing happens on the goroutine that runs the loop. Other goroutines
// hand work to it with [Loop.Post]. Animations schedule one-shot frame
// callbacks with [Loop.RequestFrame] and must cancel the pending one on
// teardown so nothing draws into a released surface; [Animate] wraps that
// pattern with an explicit cancellation handle.
//
// A loop is driven either by [Loop.Run], which ticks at the frame interval
// until its context ends, or by a host that owns the tick and calls
// [Loop.Step] itself (ebiten's Update, tests).
package loop
