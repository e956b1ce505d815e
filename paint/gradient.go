// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Stop is a gradient color stop. Offset is expected in [0, 1]; offsets are
// neither clamped nor checked for order.
type Stop struct {
	Offset float64
	Color  color.Color
}

// LinearGradient returns a brush interpolating the stops along the segment
// (x0, y0)-(x1, y1). The geometry is in logical units and is mapped through
// dc's current transform when the brush is built, so the brush must be used
// on the same context without changing the transform in between.
func LinearGradient(dc Context, x0, y0, x1, y1 float64, stops ...Stop) gg.Brush {
	dx0, dy0 := dc.TransformPoint(x0, y0)
	dx1, dy1 := dc.TransformPoint(x1, y1)
	g := gg.NewLinearGradientBrush(dx0, dy0, dx1, dy1)
	for _, s := range stops {
		g.AddColorStop(s.Offset, gg.FromColor(s.Color))
	}
	return g
}

// RadialGradient returns a brush interpolating the stops from the circle
// (x0, y0, r0) to the circle (x1, y1, r1), as a canvas radial gradient does:
// the end circle is the gradient's extent and the start centre its focus.
func RadialGradient(dc Context, x0, y0, r0, x1, y1, r1 float64, stops ...Stop) gg.Brush {
	scale := matrixScale(dc.GetTransform())
	fx, fy := dc.TransformPoint(x0, y0)
	cx, cy := dc.TransformPoint(x1, y1)
	g := gg.NewRadialGradientBrush(cx, cy, r0*scale, r1*scale)
	if fx != cx || fy != cy {
		g.SetFocus(fx, fy)
	}
	for _, s := range stops {
		g.AddColorStop(s.Offset, gg.FromColor(s.Color))
	}
	return g
}
