// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gogpuhost provides a gogpu window host for vizcanvas surfaces.
//
// The presented surface is rasterized on the CPU by gg as usual and uploaded
// each frame through a ggcanvas.Canvas, which draws it into the window with
// the GPU. The window's device pixel ratio is the framebuffer width over the
// window width reported by the draw context.
//
// Architecture:
//
//	vizcanvas.Surface (draw) → ggcanvas.Canvas → gogpu.Context (GPU) → Window
//
// The window attaches on its first draw, which fires a resize and lets the
// surface create its backing store at the real ratio. The loop is stepped
// once per draw, after the resize check and before the surface is
// presented.
package gogpuhost

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/vizcanvas"
	"github.com/gogpu/vizcanvas/loop"
)

// Window is a vizcanvas.Host backed by a gogpu window.
//
// Host methods are safe for concurrent use. Drawing happens on the gogpu
// draw callback.
type Window struct {
	title  string
	width  int
	height int
	loop   *loop.Loop

	mu        sync.Mutex
	dpr       float64
	outW      int
	outH      int
	attached  bool
	nextID    uint64
	listeners map[uint64]func()
	present   *vizcanvas.Surface

	canvas *ggcanvas.Canvas
	anim   *gogpu.AnimationToken
}

// Ensure Window implements vizcanvas.Host.
var _ vizcanvas.Host = (*Window)(nil)

// Option configures a Window.
type Option func(*Window)

// WithLoop sets the loop stepped once per drawn frame.
func WithLoop(l *loop.Loop) Option {
	return func(w *Window) {
		w.loop = l
	}
}

// New creates a window of the given size in logical pixels. The window is
// not shown until Run is called.
func New(title string, width, height int, opts ...Option) *Window {
	w := &Window{
		title:     title,
		width:     width,
		height:    height,
		dpr:       1,
		listeners: make(map[uint64]func()),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Present selects the surface shown by the window.
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

// Run shows the window and blocks until it is closed.
func (w *Window) Run() error {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(w.title).
		WithSize(w.width, w.height).
		WithContinuousRender(false))

	app.OnDraw(func(dc *gogpu.Context) {
		if w.anim == nil {
			// Keep drawing at VSync so the loop is stepped every frame.
			w.anim = app.StartAnimation()
		}
		sw, sh := dc.SurfaceSize()
		w.frame(dc.Width(), dc.Height(), int(sw), int(sh))
		if w.loop != nil {
			w.loop.Step(time.Now())
		}

		provider := app.GPUContextProvider()
		if provider == nil {
			return
		}
		if err := w.show(provider, dc.AsTextureDrawer()); err != nil {
			vizcanvas.Logger().Warn("present failed", slog.Any("err", err))
		}
	})

	app.OnClose(func() {
		if w.anim != nil {
			w.anim.Stop()
			w.anim = nil
		}
		if err := w.close(); err != nil {
			vizcanvas.Logger().Warn("canvas close failed", slog.Any("err", err))
		}
	})

	vizcanvas.Logger().Info("window opened",
		slog.String("title", w.title),
		slog.Int("width", w.width),
		slog.Int("height", w.height))
	return app.Run()
}

// frame records the window size and ratio for a drawn frame. Listeners fire
// when anything changed, including the first frame, which attaches the
// window.
func (w *Window) frame(width, height, surfaceW, surfaceH int) {
	if width <= 0 || height <= 0 {
		return
	}
	dpr := float64(surfaceW) / float64(width)
	if !(dpr > 0) || math.IsInf(dpr, 0) {
		dpr = 1
	}

	w.mu.Lock()
	changed := !w.attached || dpr != w.dpr || width != w.outW || height != w.outH
	w.attached = true
	w.dpr = dpr
	w.outW, w.outH = width, height
	var fns []func()
	if changed {
		fns = make([]func(), 0, len(w.listeners))
		for _, fn := range w.listeners {
			fns = append(fns, fn)
		}
	}
	w.mu.Unlock()

	if changed {
		vizcanvas.Logger().Debug("window frame changed",
			slog.Int("width", width),
			slog.Int("height", height),
			slog.Int("surface_width", surfaceW),
			slog.Int("surface_height", surfaceH),
			slog.Float64("ratio", dpr))
		for _, fn := range fns {
			fn()
		}
	}
}

// show copies the presented surface into the GPU canvas and draws it. The
// canvas is created on first use and follows the surface's backing size.
func (w *Window) show(provider gpucontext.DeviceProvider, drawer gpucontext.TextureDrawer) error {
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
	bw, bh := img.Bounds().Dx(), img.Bounds().Dy()

	if w.canvas == nil {
		c, err := ggcanvas.New(provider, bw, bh)
		if err != nil {
			return fmt.Errorf("gogpuhost: canvas: %w", err)
		}
		w.canvas = c
	} else if cw, ch := w.canvas.Size(); cw != bw || ch != bh {
		if err := w.canvas.Resize(bw, bh); err != nil {
			return fmt.Errorf("gogpuhost: canvas resize: %w", err)
		}
	}

	buf := gg.ImageBufFromImage(img)
	if err := w.canvas.Draw(func(cc *gg.Context) {
		cc.Clear()
		cc.DrawImage(buf, 0, 0)
	}); err != nil {
		return fmt.Errorf("gogpuhost: canvas draw: %w", err)
	}
	if drawer == nil {
		return nil
	}
	return w.canvas.RenderTo(drawer)
}

func (w *Window) close() error {
	if w.canvas == nil {
		return nil
	}
	err := w.canvas.Close()
	w.canvas = nil
	return err
}
