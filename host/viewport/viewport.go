// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package viewport provides a vizcanvas.Host backed by a small YAML file.
//
// The file describes the display a surface is shown on:
//
//	device_pixel_ratio: 2
//	attached: true
//
// The host watches the file with fsnotify and notifies resize listeners
// whenever a saved change alters the ratio or the attachment. This makes it
// possible to exercise high-density rendering and resize handling from the
// command line without a window system.
package viewport

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/vizcanvas"
)

// DefaultDebounce is how long the watcher waits for a burst of file events
// to settle before reloading.
const DefaultDebounce = 100 * time.Millisecond

// ErrClosed is returned by operations on a closed Host.
var ErrClosed = errors.New("viewport: host closed")

// Config is the viewport description.
type Config struct {
	DevicePixelRatio float64
	Attached         bool
}

// fileConfig is the on-disk form; attached defaults to true.
type fileConfig struct {
	DevicePixelRatio float64 `yaml:"device_pixel_ratio"`
	Attached         *bool   `yaml:"attached"`
}

// Parse decodes a viewport document. A missing ratio means 1 and a missing
// attached flag means true.
func Parse(data []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("viewport: parse: %w", err)
	}
	cfg := Config{DevicePixelRatio: fc.DevicePixelRatio, Attached: true}
	if cfg.DevicePixelRatio == 0 {
		cfg.DevicePixelRatio = 1
	}
	if r := cfg.DevicePixelRatio; r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return Config{}, fmt.Errorf("viewport: device_pixel_ratio %v must be positive and finite", r)
	}
	if fc.Attached != nil {
		cfg.Attached = *fc.Attached
	}
	return cfg, nil
}

// Load reads and parses the viewport file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("viewport: %w", err)
	}
	return Parse(data)
}

// Host is a vizcanvas.Host whose state comes from a watched viewport file.
// It is safe for concurrent use.
type Host struct {
	path     string
	dispatch func(func())
	debounce time.Duration

	mu        sync.Mutex
	cfg       Config
	nextID    uint64
	listeners map[uint64]func()
	closed    bool

	watcher *fsnotify.Watcher
	done    chan struct{}
	stopped chan struct{}
}

// Ensure Host implements vizcanvas.Host.
var _ vizcanvas.Host = (*Host)(nil)

// Option configures a Host.
type Option func(*Host)

// WithDispatcher sets how resize notifications are delivered. Listeners are
// called from the watcher goroutine by default; pass a loop's Post to run
// them on the loop instead.
func WithDispatcher(dispatch func(func())) Option {
	return func(h *Host) {
		h.dispatch = dispatch
	}
}

// WithDebounce sets how long file events must settle before a reload.
func WithDebounce(d time.Duration) Option {
	return func(h *Host) {
		if d > 0 {
			h.debounce = d
		}
	}
}

// Open loads the viewport file at path and starts watching it. Close the
// host to stop the watcher.
func Open(path string, opts ...Option) (*Host, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("viewport: %w", err)
	}
	cfg, err := Load(abs)
	if err != nil {
		return nil, err
	}

	h := &Host{
		path:      abs,
		dispatch:  func(fn func()) { fn() },
		debounce:  DefaultDebounce,
		cfg:       cfg,
		listeners: make(map[uint64]func()),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("viewport: watcher: %w", err)
	}
	// Editors often replace the file instead of writing it, so watch the
	// directory and filter by name.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("viewport: watch %s: %w", filepath.Dir(abs), err)
	}
	h.watcher = w
	go h.watch()

	vizcanvas.Logger().Info("viewport opened",
		slog.String("path", abs),
		slog.Float64("ratio", cfg.DevicePixelRatio),
		slog.Bool("attached", cfg.Attached))
	return h, nil
}

// Path returns the absolute path of the watched file.
func (h *Host) Path() string {
	return h.path
}

// Config returns the current viewport description.
func (h *Host) Config() Config {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cfg
}

// DevicePixelRatio implements vizcanvas.Host.
func (h *Host) DevicePixelRatio() float64 {
	return h.Config().DevicePixelRatio
}

// Attached implements vizcanvas.Host.
func (h *Host) Attached() bool {
	return h.Config().Attached
}

// OnResize implements vizcanvas.Host.
func (h *Host) OnResize(fn func()) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.listeners, id)
			h.mu.Unlock()
		})
	}
}

// Reload re-reads the file and notifies listeners if the description
// changed. It reports whether a notification was sent.
func (h *Host) Reload() (bool, error) {
	cfg, err := Load(h.path)
	if err != nil {
		return false, err
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return false, ErrClosed
	}
	changed := cfg != h.cfg
	h.cfg = cfg
	fns := make([]func(), 0, len(h.listeners))
	if changed {
		for _, fn := range h.listeners {
			fns = append(fns, fn)
		}
	}
	h.mu.Unlock()

	if !changed {
		return false, nil
	}
	vizcanvas.Logger().Debug("viewport changed",
		slog.Float64("ratio", cfg.DevicePixelRatio),
		slog.Bool("attached", cfg.Attached),
		slog.Int("listeners", len(fns)))
	for _, fn := range fns {
		h.dispatch(fn)
	}
	return true, nil
}

// Close stops watching. Listeners are not called after Close returns.
func (h *Host) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.done)
	err := h.watcher.Close()
	<-h.stopped
	return err
}

func (h *Host) watch() {
	defer close(h.stopped)

	debounce := time.NewTimer(h.debounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	log := vizcanvas.Logger()
	for {
		select {
		case <-h.done:
			return
		case ev, ok := <-h.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != h.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(h.debounce)
		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("viewport watcher error", slog.Any("err", err))
		case <-debounce.C:
			if _, err := h.Reload(); err != nil && !errors.Is(err, ErrClosed) {
				log.Warn("viewport reload failed", slog.String("path", h.path), slog.Any("err", err))
			}
		}
	}
}
