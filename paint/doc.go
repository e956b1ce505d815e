// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package paint is a stateless library of drawing primitives for
// visualizations: full-surface fills, lines, circles, rectangles, text,
// sampled function plots, histograms, arrows, gradients, grids and axes.
//
// Every function takes a [Context] (normally the *gg.Context of a
// vizcanvas.Surface) plus explicit geometry and style, draws immediately and
// keeps nothing between calls. Coordinates are logical units: the surface's
// scale transform maps them to device pixels.
//
// The intended use is clear-and-repaint. A frame starts with [Fill] and
// redraws everything from the visualization's own state:
//
//	dc := surface.Context()
//	if dc == nil {
//		return // not ready, skip this frame
//	}
//	paint.Fill(dc, gg.SolidHex("#0f172a"), w, h)
//	paint.FunctionPlot(dc, math.Sin, -math.Pi, math.Pi, w, h, paint.PlotOptions{})
//
// # Failure Semantics
//
// The library validates nothing beyond what each function documents.
// Invalid geometry (NaN coordinates, negative radii) is handed to the
// rasterizer as is and usually draws nothing. Rasterizer errors are logged
// at debug level and otherwise dropped.
package paint
