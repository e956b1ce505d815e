package vizcanvas

import (
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
)

// Surface is a drawable region of a fixed logical size bound to a Host.
//
// When scaling is enabled the backing store is logical size times the
// host's device pixel ratio and the context carries a matching uniform
// scale, so drawing code never reasons about device pixels.
//
// Surface is NOT safe for concurrent use.
type Surface struct {
	host    Host
	opts    surfaceOptions
	width   float64 // logical
	height  float64 // logical
	dpr     float64 // ratio currently applied
	dc      *gg.Context
	state   State
	remove  func()
	manager *Manager
}

// Acquire creates a surface of the given logical size on host and registers
// its resize listener. The surface is Ready immediately if the host is
// attached; otherwise it stays NotReady and Context returns nil until the
// host attaches.
//
// Every successful Acquire must be paired with Release.
func Acquire(host Host, width, height float64, opts ...SurfaceOption) (*Surface, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	if err := validateSize(width, height); err != nil {
		return nil, err
	}

	options := defaultSurfaceOptions()
	for _, opt := range opts {
		opt(&options)
	}

	s := &Surface{
		host:   host,
		opts:   options,
		width:  width,
		height: height,
		dpr:    1,
		state:  StateNotReady,
	}
	s.remove = host.OnResize(s.handleResize)
	s.tryReady()

	s.logger().Info("surface acquired",
		slog.Float64("width", width),
		slog.Float64("height", height),
		slog.Bool("scaling", options.scaling),
		slog.String("state", s.state.String()))
	return s, nil
}

func validateSize(width, height float64) error {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: width=%v, height=%v", ErrInvalidDimensions, width, height)
	}
	return nil
}

// Context returns the drawing context, or nil when the surface is not ready
// or released. A nil context means "skip this frame", not failure.
func (s *Surface) Context() *gg.Context {
	if s.state == StateNotReady {
		s.tryReady()
	}
	if s.state != StateReady {
		return nil
	}
	return s.dc
}

// Draw calls fn with the drawing context if the surface is ready.
// It returns ErrNotReady or ErrSurfaceReleased without calling fn otherwise.
func (s *Surface) Draw(fn func(dc *gg.Context)) error {
	dc := s.Context()
	if dc == nil {
		if s.state == StateReleased {
			return ErrSurfaceReleased
		}
		return ErrNotReady
	}
	fn(dc)
	return nil
}

// Release removes the resize listener and closes the context. After Release
// the surface must not be drawn to. Release is idempotent.
func (s *Surface) Release() {
	if s.state == StateReleased {
		return
	}
	if s.remove != nil {
		s.remove()
		s.remove = nil
	}
	if s.dc != nil {
		_ = s.dc.Close()
		s.dc = nil
	}
	s.state = StateReleased
	if s.manager != nil {
		s.manager.forget(s)
		s.manager = nil
	}
	s.logger().Info("surface released")
}

// SetLogicalSize changes the logical size and re-lays the backing store.
func (s *Surface) SetLogicalSize(width, height float64) error {
	if s.state == StateReleased {
		return ErrSurfaceReleased
	}
	if err := validateSize(width, height); err != nil {
		return err
	}
	s.width, s.height = width, height
	if s.state == StateReady {
		s.applyScale()
	}
	return nil
}

// State returns the lifecycle state.
func (s *Surface) State() State {
	return s.state
}

// LogicalWidth returns the width in logical units.
func (s *Surface) LogicalWidth() float64 {
	return s.width
}

// LogicalHeight returns the height in logical units.
func (s *Surface) LogicalHeight() float64 {
	return s.height
}

// DevicePixelRatio returns the ratio currently applied to the context.
// It is always 1 when scaling is disabled.
func (s *Surface) DevicePixelRatio() float64 {
	return s.dpr
}

// BackingSize returns the backing store size in device pixels, or zeros
// when the surface has no context.
func (s *Surface) BackingSize() (width, height int) {
	if s.dc == nil {
		return 0, 0
	}
	return s.dc.Width(), s.dc.Height()
}

// Image returns a snapshot of the backing store, or nil when the surface
// has no context.
func (s *Surface) Image() image.Image {
	if s.dc == nil {
		return nil
	}
	return s.dc.Image()
}

// SavePNG writes the backing store to path.
func (s *Surface) SavePNG(path string) error {
	if s.state == StateReleased {
		return ErrSurfaceReleased
	}
	if s.dc == nil {
		return ErrNotReady
	}
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("vizcanvas: save png: %w", err)
	}
	return nil
}

// tryReady creates the context if the host is attached.
func (s *Surface) tryReady() {
	if s.state != StateNotReady || !s.host.Attached() {
		return
	}
	s.applyScale()
	s.state = StateReady
}

// handleResize is the host resize listener.
func (s *Surface) handleResize() {
	switch s.state {
	case StateNotReady:
		s.tryReady()
	case StateReady:
		s.applyScale()
	}
}

// applyScale sizes the backing store from the current ratio and resets the
// transform to a single uniform scale.
func (s *Surface) applyScale() {
	dpr := 1.0
	if s.opts.scaling {
		raw := s.host.DevicePixelRatio()
		dpr = normalizeRatio(raw)
		if dpr != raw {
			s.logger().Warn("unusable device pixel ratio, using 1", slog.Float64("ratio", raw))
		}
	}

	bw, bh := backingDim(s.width, dpr), backingDim(s.height, dpr)
	if s.dc == nil {
		s.dc = gg.NewContext(bw, bh)
	} else if err := s.dc.Resize(bw, bh); err != nil {
		s.logger().Warn("backing resize failed", slog.Any("err", err))
		return
	}

	s.dc.Identity()
	s.dc.Scale(dpr, dpr)
	s.dpr = dpr

	s.logger().Debug("surface scaled",
		slog.Float64("ratio", dpr),
		slog.Int("backing_width", bw),
		slog.Int("backing_height", bh))
}

// backingDim converts a logical length to whole device pixels, never less
// than one.
func backingDim(logical, dpr float64) int {
	n := int(math.Round(logical * dpr))
	if n < 1 {
		return 1
	}
	return n
}

func (s *Surface) logger() *slog.Logger {
	l := Logger()
	if s.opts.name != "" {
		l = l.With(slog.String("surface", s.opts.name))
	}
	return l
}
