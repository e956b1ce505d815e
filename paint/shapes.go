// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"github.com/gogpu/gg"
)

// Fill paints the region [0,w]×[0,h] with b. A frame starts with Fill so that
// nothing from the previous frame survives.
func Fill(dc Context, b gg.Brush, w, h float64) {
	dc.DrawRectangle(0, 0, w, h)
	dc.SetFillBrush(brushOr(b, defaultInk))
	fill(dc, "fill")
}

// Line strokes a single segment from (x1, y1) to (x2, y2).
func Line(dc Context, x1, y1, x2, y2 float64, b gg.Brush, width float64) {
	dc.MoveTo(x1, y1)
	dc.LineTo(x2, y2)
	dc.SetStrokeBrush(brushOr(b, defaultInk))
	dc.SetLineWidth(widthOr(width, DefaultLineWidth))
	stroke(dc, "line")
}

// DashedLine strokes a segment with the given dash pattern (alternating
// on/off lengths). The dash is cleared again afterwards.
func DashedLine(dc Context, x1, y1, x2, y2 float64, b gg.Brush, width float64, dash ...float64) {
	if len(dash) == 0 {
		dash = []float64{4, 4}
	}
	dc.SetDash(dash...)
	defer dc.ClearDash()
	Line(dc, x1, y1, x2, y2, b, width)
}

// Polyline strokes the open path through pts. Fewer than two points draw
// nothing.
func Polyline(dc Context, pts []gg.Point, b gg.Brush, width float64) {
	if len(pts) < 2 {
		return
	}
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.SetStrokeBrush(brushOr(b, defaultInk))
	dc.SetLineWidth(widthOr(width, DefaultLineWidth))
	stroke(dc, "polyline")
}

// Circle draws a disc centred on (x, y). It is filled when st.Fill is set
// and outlined when st.Stroke is set. With neither the call does nothing at
// all: callers must supply at least one.
func Circle(dc Context, x, y, r float64, st Style) {
	if st.Fill == nil && st.Stroke == nil {
		return
	}
	dc.DrawCircle(x, y, r)
	paintShape(dc, "circle", st)
}

// Rect draws an axis-aligned rectangle with the same fill/stroke rules as
// Circle.
func Rect(dc Context, x, y, w, h float64, st Style) {
	if st.Fill == nil && st.Stroke == nil {
		return
	}
	dc.DrawRectangle(x, y, w, h)
	paintShape(dc, "rect", st)
}
