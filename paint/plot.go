// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"math"

	"github.com/gogpu/gg"
)

// PlotPadding is the vertical margin kept between the plotted range and the
// top and bottom edges of the plot area.
const PlotPadding = 20.0

// PlotOptions configures FunctionPlot.
//
// YMin and YMax give the value range mapped onto the plot height; both zero
// selects [-1, 1] unless the range was set with WithYRange. OriginY is the
// canvas y of the range's midpoint; zero selects h/2 unless it was set with
// WithOriginY.
type PlotOptions struct {
	Color     gg.Brush
	LineWidth float64
	YMin      float64
	YMax      float64
	OriginY   float64

	rangeSet  bool
	originSet bool
}

// WithYRange returns o with the value range set to [lo, hi], zero included.
func (o PlotOptions) WithYRange(lo, hi float64) PlotOptions {
	o.YMin, o.YMax = lo, hi
	o.rangeSet = true
	return o
}

// WithOriginY returns o with the midpoint row set to y, zero included.
func (o PlotOptions) WithOriginY(y float64) PlotOptions {
	o.OriginY = y
	o.originSet = true
	return o
}

func (o PlotOptions) yRange() (lo, hi float64) {
	if !o.rangeSet && o.YMin == 0 && o.YMax == 0 {
		return -1, 1
	}
	return o.YMin, o.YMax
}

func (o PlotOptions) originY(h float64) float64 {
	if !o.originSet && o.OriginY == 0 {
		return h / 2
	}
	return o.OriginY
}

// PlotPoints samples fn once per horizontal pixel across [xMin, xMax] and
// maps every sample into canvas space:
//
//	px = (x - xMin) / (xMax - xMin) * w
//	py = originY - (fn(x) - yMid) / yHalf * (h/2 - PlotPadding)
//
// where yMid and yHalf are the midpoint and half-extent of the y range.
// There are floor(w)+1 samples, the first at xMin and the last at xMax.
func PlotPoints(fn func(float64) float64, xMin, xMax, w, h float64, o PlotOptions) []gg.Point {
	n := int(math.Floor(w))
	if n < 1 {
		n = 1
	}
	yMin, yMax := o.yRange()
	yMid := (yMin + yMax) / 2
	yHalf := (yMax - yMin) / 2
	originY := o.originY(h)
	span := h/2 - PlotPadding

	pts := make([]gg.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		x := xMin + t*(xMax-xMin)
		y := fn(x)
		pts = append(pts, gg.Pt(t*w, originY-(y-yMid)/yHalf*span))
	}
	return pts
}

// FunctionPlot strokes the polyline of PlotPoints. fn must be total over
// [xMin, xMax]: a panicking fn aborts the whole plot, the partial path is
// discarded and the panic propagates to the caller.
func FunctionPlot(dc Context, fn func(float64) float64, xMin, xMax, w, h float64, o PlotOptions) {
	defer func() {
		if r := recover(); r != nil {
			dc.ClearPath()
			panic(r)
		}
	}()

	pts := PlotPoints(fn, xMin, xMax, w, h, o)
	Polyline(dc, pts, brushOr(o.Color, defaultInk), widthOr(o.LineWidth, DefaultPlotWidth))
}
