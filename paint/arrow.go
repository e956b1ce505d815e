// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"math"

	"github.com/gogpu/gg"
)

// ArrowStyle configures Arrow.
type ArrowStyle struct {
	Color     gg.Brush
	LineWidth float64
	HeadSize  float64 // length of the head's sides, default DefaultHeadSize
}

// Arrow strokes the shaft from (x1, y1) to (x2, y2) and fills a triangular
// head at (x2, y2) pointing along the shaft.
func Arrow(dc Context, x1, y1, x2, y2 float64, st ArrowStyle) {
	b := brushOr(st.Color, defaultInk)
	Line(dc, x1, y1, x2, y2, b, widthOr(st.LineWidth, DefaultLineWidth))

	head := ArrowHead(x1, y1, x2, y2, widthOr(st.HeadSize, DefaultHeadSize))
	dc.MoveTo(head[0].X, head[0].Y)
	dc.LineTo(head[1].X, head[1].Y)
	dc.LineTo(head[2].X, head[2].Y)
	dc.ClosePath()
	dc.SetFillBrush(b)
	fill(dc, "arrow")
}

// ArrowHead returns the triangle of an arrow head: the tip at (x2, y2) and
// two barbs size units back along the shaft, 30 degrees either side of it.
func ArrowHead(x1, y1, x2, y2, size float64) [3]gg.Point {
	angle := math.Atan2(y2-y1, x2-x1)
	const spread = math.Pi / 6
	return [3]gg.Point{
		gg.Pt(x2, y2),
		gg.Pt(x2-size*math.Cos(angle-spread), y2-size*math.Sin(angle-spread)),
		gg.Pt(x2-size*math.Cos(angle+spread), y2-size*math.Sin(angle+spread)),
	}
}
