// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene describes a drawing as a YAML list of primitive commands and
// renders it onto a vizcanvas surface.
//
// A scene is a plain document:
//
//	width: 640
//	height: 400
//	background: white
//	commands:
//	  - op: grid
//	    spacing: 40
//	  - op: plot
//	    fn: sin
//	    xmin: -6.28
//	    xmax: 6.28
//	    stroke: crimson
//	  - op: text
//	    text: "y = sin(x)"
//	    x: 20
//	    y: 30
//	    font: bold 18px sans-serif
//
// Rendering clears the surface and repaints every command in order, which
// is the same clear-and-repaint cycle an interactive widget runs on every
// state change.
package scene

import (
	"errors"
	"fmt"
	"math"
	"os"
	"slices"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/vizcanvas"
	"github.com/gogpu/vizcanvas/paint"
)

// ErrInvalidScene is wrapped by every validation failure.
var ErrInvalidScene = errors.New("scene: invalid scene")

// Op names a drawing command.
type Op string

// Supported ops.
const (
	OpFill      Op = "fill"
	OpLine      Op = "line"
	OpPolyline  Op = "polyline"
	OpCircle    Op = "circle"
	OpRect      Op = "rect"
	OpText      Op = "text"
	OpPlot      Op = "plot"
	OpHistogram Op = "histogram"
	OpArrow     Op = "arrow"
	OpGrid      Op = "grid"
	OpAxes      Op = "axes"
)

var knownOps = []Op{
	OpFill, OpLine, OpPolyline, OpCircle, OpRect, OpText,
	OpPlot, OpHistogram, OpArrow, OpGrid, OpAxes,
}

// Scene is a drawing: a logical size, a background and a command list.
type Scene struct {
	Title            string    `yaml:"title,omitempty"`
	Width            float64   `yaml:"width"`
	Height           float64   `yaml:"height"`
	Scaling          *bool     `yaml:"scaling,omitempty"`
	DevicePixelRatio float64   `yaml:"device_pixel_ratio,omitempty"`
	Background       *Paint    `yaml:"background,omitempty"`
	Commands         []Command `yaml:"commands"`
}

// Command is one drawing command. Which fields matter depends on Op.
type Command struct {
	Op Op `yaml:"op"`

	X  float64 `yaml:"x,omitempty"`
	Y  float64 `yaml:"y,omitempty"`
	X2 float64 `yaml:"x2,omitempty"`
	Y2 float64 `yaml:"y2,omitempty"`
	W  float64 `yaml:"w,omitempty"`
	H  float64 `yaml:"h,omitempty"`
	R  float64 `yaml:"r,omitempty"`

	Points [][2]float64 `yaml:"points,omitempty"`
	Dash   []float64    `yaml:"dash,omitempty"`

	Fill      *Paint  `yaml:"fill,omitempty"`
	Stroke    *Paint  `yaml:"stroke,omitempty"`
	LineWidth float64 `yaml:"line_width,omitempty"`

	Text     string `yaml:"text,omitempty"`
	Font     string `yaml:"font,omitempty"`
	Color    string `yaml:"color,omitempty"`
	Align    string `yaml:"align,omitempty"`
	Baseline string `yaml:"baseline,omitempty"`

	Fn      string   `yaml:"fn,omitempty"`
	XMin    float64  `yaml:"xmin,omitempty"`
	XMax    float64  `yaml:"xmax,omitempty"`
	YMin    *float64 `yaml:"ymin,omitempty"`
	YMax    *float64 `yaml:"ymax,omitempty"`
	OriginY *float64 `yaml:"origin_y,omitempty"`
	Speed   float64  `yaml:"speed,omitempty"`

	Counts []float64 `yaml:"counts,omitempty"`
	Gap    float64   `yaml:"gap,omitempty"`

	HeadSize float64 `yaml:"head_size,omitempty"`

	Spacing      float64 `yaml:"spacing,omitempty"`
	TickSize     float64 `yaml:"tick_size,omitempty"`
	UnitsPerTick float64 `yaml:"units_per_tick,omitempty"`
	Locale       string  `yaml:"locale,omitempty"`
}

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a scene document.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Marshal encodes the scene as YAML.
func (s *Scene) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("scene: marshal: %w", err)
	}
	return data, nil
}

// ScalingEnabled reports whether surfaces for the scene compensate for the
// device pixel ratio. It defaults to true.
func (s *Scene) ScalingEnabled() bool {
	return s.Scaling == nil || *s.Scaling
}

// Ratio returns the device pixel ratio the scene asks for, or 1.
func (s *Scene) Ratio() float64 {
	if s.DevicePixelRatio > 0 {
		return s.DevicePixelRatio
	}
	return 1
}

// SurfaceOptions returns the options to acquire a surface for the scene.
func (s *Scene) SurfaceOptions() []vizcanvas.SurfaceOption {
	opts := []vizcanvas.SurfaceOption{vizcanvas.WithScaling(s.ScalingEnabled())}
	if s.Title != "" {
		opts = append(opts, vizcanvas.WithName(s.Title))
	}
	return opts
}

// Animated reports whether any command changes with time.
func (s *Scene) Animated() bool {
	return slices.ContainsFunc(s.Commands, func(c Command) bool {
		return c.Op == OpPlot && c.Speed != 0
	})
}

// Validate checks the scene and every command. All problems are reported,
// each wrapping ErrInvalidScene.
func (s *Scene) Validate() error {
	var errs []error
	if !(s.Width > 0) || !(s.Height > 0) || math.IsInf(s.Width, 0) || math.IsInf(s.Height, 0) {
		errs = append(errs, fmt.Errorf("%w: size %vx%v", ErrInvalidScene, s.Width, s.Height))
	}
	if s.DevicePixelRatio < 0 {
		errs = append(errs, fmt.Errorf("%w: device_pixel_ratio %v", ErrInvalidScene, s.DevicePixelRatio))
	}
	if !s.Background.IsZero() {
		if err := s.Background.validate(); err != nil {
			errs = append(errs, fmt.Errorf("%w: background: %v", ErrInvalidScene, err))
		}
	}
	for i, c := range s.Commands {
		if err := c.validate(); err != nil {
			errs = append(errs, fmt.Errorf("%w: command %d (%s): %v", ErrInvalidScene, i, c.Op, err))
		}
	}
	return errors.Join(errs...)
}

func (c *Command) validate() error {
	if !slices.Contains(knownOps, c.Op) {
		return fmt.Errorf("unknown op %q", c.Op)
	}
	for _, p := range []*Paint{c.Fill, c.Stroke} {
		if !p.IsZero() {
			if err := p.validate(); err != nil {
				return err
			}
		}
	}
	if c.Color != "" {
		if _, err := ParseColor(c.Color); err != nil {
			return err
		}
	}

	switch c.Op {
	case OpFill:
		if c.Fill.IsZero() {
			return fmt.Errorf("fill needs a fill paint")
		}
	case OpCircle:
		if c.R < 0 {
			return fmt.Errorf("negative radius %v", c.R)
		}
	case OpPolyline:
		if len(c.Points) < 2 {
			return fmt.Errorf("polyline needs at least 2 points")
		}
	case OpText:
		if c.Font != "" {
			if _, err := paint.ParseFont(c.Font); err != nil {
				return err
			}
		}
		if _, err := parseAlign(c.Align); err != nil {
			return err
		}
		if _, err := parseBaseline(c.Baseline); err != nil {
			return err
		}
	case OpPlot:
		if _, ok := Functions[c.Fn]; !ok {
			return fmt.Errorf("unknown function %q", c.Fn)
		}
		if !(c.XMax > c.XMin) {
			return fmt.Errorf("empty x range [%v, %v]", c.XMin, c.XMax)
		}
		if (c.YMin == nil) != (c.YMax == nil) {
			return fmt.Errorf("ymin and ymax must be given together")
		}
		if c.YMin != nil && !(*c.YMax > *c.YMin) {
			return fmt.Errorf("empty y range [%v, %v]", *c.YMin, *c.YMax)
		}
	case OpHistogram:
		if len(c.Counts) == 0 {
			return fmt.Errorf("histogram has no counts")
		}
	case OpGrid:
		if !(c.Spacing > 0) {
			return fmt.Errorf("grid spacing must be positive")
		}
	case OpAxes:
		if c.Locale != "" {
			if _, err := language.Parse(c.Locale); err != nil {
				return fmt.Errorf("locale: %w", err)
			}
		}
	}
	return nil
}

func parseAlign(s string) (paint.Align, error) {
	switch s {
	case "", "left", "start":
		return paint.AlignLeft, nil
	case "center":
		return paint.AlignCenter, nil
	case "right", "end":
		return paint.AlignRight, nil
	}
	return 0, fmt.Errorf("unknown align %q", s)
}

func parseBaseline(s string) (paint.Baseline, error) {
	switch s {
	case "", "alphabetic":
		return paint.BaselineAlphabetic, nil
	case "top":
		return paint.BaselineTop, nil
	case "middle":
		return paint.BaselineMiddle, nil
	case "bottom":
		return paint.BaselineBottom, nil
	}
	return 0, fmt.Errorf("unknown baseline %q", s)
}
