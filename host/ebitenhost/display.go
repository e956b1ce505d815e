// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenhost provides a desktop window host for vizcanvas surfaces.
//
// A Window is a vizcanvas.Host whose device pixel ratio is the monitor scale
// factor reported by ebiten. The window steps a loop.Loop once per tick, so
// frame callbacks and posted tasks run on the ebiten update goroutine, and
// blits the presented surface to the screen on every draw.
//
// The surface starts NotReady: the window only attaches once ebiten calls
// Layout for the first time, which fires a resize and lets the surface
// create its backing store at the real ratio.
package ebitenhost

import (
	"image"
	"image/draw"
	"log/slog"
	"math"
	"sync"

	"github.com/gogpu/vizcanvas"
	"github.com/gogpu/vizcanvas/loop"
)

// Window is a vizcanvas.Host backed by an ebiten window.
//
// Host methods are safe for concurrent use.
type Window struct {
	title  string
	width  int
	height int
	loop   *loop.Loop
	scale  func() float64

	mu        sync.Mutex
	dpr       float64
	outW      int
	outH      int
	attached  bool
	nextID    uint64
	listeners map[uint64]func()
	present   *vizcanvas.Surface

	frame *image.RGBA
}

// Ensure Window implements vizcanvas.Host.
var _ vizcanvas.Host = (*Window)(nil)

// Option configures a Window.
type Option func(*Window)

// WithLoop sets the loop stepped once per window tick.
func WithLoop(l *loop.Loop) Option {
	return func(w *Window) {
		w.loop = l
	}
}

// WithScaleFunc overrides where the device pixel ratio comes from.
func WithScaleFunc(fn func() float64) Option {
	return func(w *Window) {
		if fn != nil {
			w.scale = fn
		}
	}
}

// New creates a window of the given size in logical pixels. The window is
// not shown until Run is called.
func New(title string, width, height int, opts ...Option) *Window {
	w := &Window{
		title:     title,
		width:     width,
		height:    height,
		scale:     monitorScale,
		dpr:       1,
		listeners: make(map[uint64]func()),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Present selects the surface shown by the window. A nil surface clears the
// window to black.
func (w *Window) Present(s *vizcanvas.Surface) {
	w.mu.Lock()
	w.present = s
	w.mu.Unlock()
}

// DevicePixelRatio implements vizcanvas.Host.
func (w *Window) DevicePixelRatio() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dpr
}

// Attached implements vizcanvas.Host.
func (w *Window) Attached() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.attached
}

// OnResize implements vizcanvas.Host.
func (w *Window) OnResize(fn func()) func() {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn
	w.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.listeners, id)
			w.mu.Unlock()
		})
	}
}

// layout records the outside size and ratio and returns the screen size in
// device pixels. Listeners fire when anything changed, including the first
// call, which attaches the window.
func (w *Window) layout(outW, outH int) (int, int) {
	dpr := w.scale()
	if !(dpr > 0) || math.IsInf(dpr, 0) {
		dpr = 1
	}

	w.mu.Lock()
	changed := !w.attached || dpr != w.dpr || outW != w.outW || outH != w.outH
	w.attached = true
	w.dpr = dpr
	w.outW, w.outH = outW, outH
	var fns []func()
	if changed {
		fns = make([]func(), 0, len(w.listeners))
		for _, fn := range w.listeners {
			fns = append(fns, fn)
		}
	}
	w.mu.Unlock()

	if changed {
		vizcanvas.Logger().Debug("window layout changed",
			slog.Int("width", outW),
			slog.Int("height", outH),
			slog.Float64("ratio", dpr))
		for _, fn := range fns {
			fn()
		}
	}
	return deviceDim(outW, dpr), deviceDim(outH, dpr)
}

// snapshot copies the presented surface into the reusable frame buffer.
// It returns nil when there is nothing to show.
func (w *Window) snapshot() *image.RGBA {
	w.mu.Lock()
	s := w.present
	w.mu.Unlock()
	if s == nil {
		return nil
	}
	img := s.Image()
	if img == nil {
		return nil
	}
	b := img.Bounds()
	if w.frame == nil || w.frame.Bounds().Size() != b.Size() {
		w.frame = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	draw.Draw(w.frame, w.frame.Bounds(), img, b.Min, draw.Src)
	return w.frame
}

// fit returns the uniform scale and offset that center a src-sized image
// inside dst.
func fit(srcW, srcH, dstW, dstH int) (scale, dx, dy float64) {
	if srcW <= 0 || srcH <= 0 {
		return 1, 0, 0
	}
	scale = math.Min(float64(dstW)/float64(srcW), float64(dstH)/float64(srcH))
	dx = (float64(dstW) - float64(srcW)*scale) / 2
	dy = (float64(dstH) - float64(srcH)*scale) / 2
	return scale, dx, dy
}

func deviceDim(n int, dpr float64) int {
	d := int(math.Ceil(float64(n) * dpr))
	if d < 1 {
		return 1
	}
	return d
}
