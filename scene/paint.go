// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/vizcanvas/paint"
)

// Paint is a solid color or a gradient.
//
// In YAML a plain string is a color:
//
//	fill: steelblue
//	stroke: "#336699"
//
// and a mapping describes a gradient in logical units:
//
//	fill:
//	  linear: [0, 0, 200, 0]
//	  stops: [{offset: 0, color: white}, {offset: 1, color: navy}]
//	fill:
//	  radial: [100, 100, 0, 100, 100, 50]
//	  stops: [...]
type Paint struct {
	Color  string    `yaml:"color,omitempty"`
	Linear []float64 `yaml:"linear,omitempty"`
	Radial []float64 `yaml:"radial,omitempty"`
	Stops  []Stop    `yaml:"stops,omitempty"`
}

// Stop is one gradient color stop.
type Stop struct {
	Offset float64 `yaml:"offset"`
	Color  string  `yaml:"color"`
}

// UnmarshalYAML accepts either a color string or a gradient mapping.
func (p *Paint) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		p.Color = node.Value
		return nil
	}
	type plain Paint
	return node.Decode((*plain)(p))
}

// IsZero reports whether p describes nothing.
func (p *Paint) IsZero() bool {
	return p == nil || (p.Color == "" && p.Linear == nil && p.Radial == nil)
}

func (p *Paint) validate() error {
	switch {
	case p.Linear != nil && p.Radial != nil:
		return fmt.Errorf("paint has both linear and radial geometry")
	case p.Linear != nil:
		if len(p.Linear) != 4 {
			return fmt.Errorf("linear gradient needs 4 numbers, got %d", len(p.Linear))
		}
	case p.Radial != nil:
		if len(p.Radial) != 6 {
			return fmt.Errorf("radial gradient needs 6 numbers, got %d", len(p.Radial))
		}
	default:
		_, err := ParseColor(p.Color)
		return err
	}
	if len(p.Stops) == 0 {
		return fmt.Errorf("gradient has no stops")
	}
	for _, s := range p.Stops {
		if _, err := ParseColor(s.Color); err != nil {
			return err
		}
	}
	return nil
}

// Brush builds the brush for p on dc. A zero Paint yields nil, which the
// primitives treat as "not painted". Gradient geometry is mapped through
// the context's current transform.
func (p *Paint) Brush(dc paint.Context) (gg.Brush, error) {
	if p.IsZero() {
		return nil, nil
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if p.Linear == nil && p.Radial == nil {
		c, _ := ParseColor(p.Color)
		return gg.Solid(gg.FromColor(c)), nil
	}

	stops := make([]paint.Stop, len(p.Stops))
	for i, s := range p.Stops {
		c, _ := ParseColor(s.Color)
		stops[i] = paint.Stop{Offset: s.Offset, Color: c}
	}
	if g := p.Linear; g != nil {
		return paint.LinearGradient(dc, g[0], g[1], g[2], g[3], stops...), nil
	}
	g := p.Radial
	return paint.RadialGradient(dc, g[0], g[1], g[2], g[3], g[4], g[5], stops...), nil
}

// ParseColor parses "#rgb", "#rgba", "#rrggbb", "#rrggbbaa" or an SVG color
// name. The empty string is an error.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty color")
	}
	if s[0] == '#' {
		hex := s[1:]
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return nil, fmt.Errorf("bad hex color %q", s)
		}
		for _, c := range hex {
			if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
				return nil, fmt.Errorf("bad hex color %q", s)
			}
		}
		return gg.Hex(hex).Color(), nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.EqualFold(s, "transparent") {
		return color.Transparent, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}
