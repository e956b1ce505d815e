package vizcanvas

import (
	"math"
	"slices"
	"sync"
)

// Host is the rendering environment a Surface lives in.
//
// It answers the device pixel ratio, reports whether a drawing context can
// be obtained at all, and notifies listeners when the viewport is resized
// or the ratio changes.
type Host interface {
	// DevicePixelRatio returns the number of device pixels per logical unit.
	DevicePixelRatio() float64

	// Attached reports whether the host can currently back a drawing
	// context (for a browser canvas: whether it is in the visible tree).
	Attached() bool

	// OnResize registers fn to be called after every viewport resize or
	// ratio change. The returned function removes the registration; calling
	// it more than once is safe.
	OnResize(fn func()) (remove func())
}

// normalizeRatio maps unusable ratios to 1.
func normalizeRatio(dpr float64) float64 {
	if dpr <= 0 || math.IsNaN(dpr) || math.IsInf(dpr, 0) {
		return 1
	}
	return dpr
}

// HeadlessHost is an in-memory Host for offline rendering and tests.
// Resize notifications are delivered synchronously on the caller's goroutine.
//
// HeadlessHost is safe for concurrent use.
type HeadlessHost struct {
	mu        sync.Mutex
	dpr       float64
	attached  bool
	nextID    uint64
	listeners map[uint64]func()
}

// Ensure HeadlessHost implements Host.
var _ Host = (*HeadlessHost)(nil)

// NewHeadlessHost creates an attached host with the given device pixel ratio.
func NewHeadlessHost(dpr float64) *HeadlessHost {
	return &HeadlessHost{
		dpr:       dpr,
		attached:  true,
		listeners: make(map[uint64]func()),
	}
}

// DevicePixelRatio implements Host.
func (h *HeadlessHost) DevicePixelRatio() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dpr
}

// Attached implements Host.
func (h *HeadlessHost) Attached() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.attached
}

// OnResize implements Host.
func (h *HeadlessHost) OnResize(fn func()) func() {
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

// Listeners returns the number of registered resize listeners.
func (h *HeadlessHost) Listeners() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// SetDevicePixelRatio changes the ratio and notifies listeners.
func (h *HeadlessHost) SetDevicePixelRatio(dpr float64) {
	h.mu.Lock()
	h.dpr = dpr
	h.mu.Unlock()
	h.Resize()
}

// Attach marks the host as attached and notifies listeners, so surfaces
// that were waiting become ready.
func (h *HeadlessHost) Attach() {
	h.mu.Lock()
	h.attached = true
	h.mu.Unlock()
	h.Resize()
}

// Detach marks the host as detached. Surfaces that are already ready keep
// their context; new acquisitions stay NotReady.
func (h *HeadlessHost) Detach() {
	h.mu.Lock()
	h.attached = false
	h.mu.Unlock()
}

// Resize simulates a viewport resize: every registered listener is called
// once, in registration order.
func (h *HeadlessHost) Resize() {
	h.mu.Lock()
	ids := make([]uint64, 0, len(h.listeners))
	for id := range h.listeners {
		ids = append(ids, id)
	}
	h.mu.Unlock()

	slices.Sort(ids)
	for _, id := range ids {
		h.mu.Lock()
		fn, ok := h.listeners[id]
		h.mu.Unlock()
		// A listener may remove another one while we iterate.
		if ok {
			fn()
		}
	}
}
