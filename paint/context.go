// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"image/color"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/vizcanvas"
)

// Context is the subset of *gg.Context the primitives draw through.
type Context interface {
	Push()
	Pop()
	Identity()
	GetTransform() gg.Matrix
	TransformPoint(x, y float64) (float64, float64)

	SetFillBrush(b gg.Brush)
	SetStrokeBrush(b gg.Brush)
	SetColor(c color.Color)
	SetLineWidth(width float64)
	SetDash(lengths ...float64)
	ClearDash()

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	ClearPath()
	DrawRectangle(x, y, w, h float64)
	DrawCircle(x, y, r float64)

	Fill() error
	Stroke() error
	FillPreserve() error

	SetFont(face text.Face)
	DrawString(s string, x, y float64)
}

// Ensure gg.Context implements Context.
var _ Context = (*gg.Context)(nil)

// Style describes how a closed shape is painted. A nil Fill or Stroke skips
// that pass.
type Style struct {
	Fill      gg.Brush
	Stroke    gg.Brush
	LineWidth float64 // stroke width, default 1
}

// Defaults used when a style field is left zero.
const (
	DefaultLineWidth = 1.0
	DefaultPlotWidth = 2.0
	DefaultHeadSize  = 10.0
)

var defaultInk gg.Brush = gg.Solid(gg.Black)

func brushOr(b, fallback gg.Brush) gg.Brush {
	if b == nil {
		return fallback
	}
	return b
}

func widthOr(w, fallback float64) float64 {
	if w <= 0 {
		return fallback
	}
	return w
}

// fill fills the current path and logs rasterizer failures.
func fill(dc Context, op string) {
	if err := dc.Fill(); err != nil {
		logDrawError(op, "fill", err)
	}
}

func fillPreserve(dc Context, op string) {
	if err := dc.FillPreserve(); err != nil {
		logDrawError(op, "fill", err)
	}
}

func stroke(dc Context, op string) {
	if err := dc.Stroke(); err != nil {
		logDrawError(op, "stroke", err)
	}
}

func logDrawError(op, pass string, err error) {
	vizcanvas.Logger().Debug("draw failed",
		slog.String("op", op),
		slog.String("pass", pass),
		slog.Any("err", err))
}

// paintShape fills and/or strokes the path already built on dc.
// With neither brush set the path is discarded and nothing is painted.
func paintShape(dc Context, op string, st Style) {
	switch {
	case st.Fill != nil && st.Stroke != nil:
		dc.SetFillBrush(st.Fill)
		fillPreserve(dc, op)
		dc.SetStrokeBrush(st.Stroke)
		dc.SetLineWidth(widthOr(st.LineWidth, DefaultLineWidth))
		stroke(dc, op)
	case st.Fill != nil:
		dc.SetFillBrush(st.Fill)
		fill(dc, op)
	case st.Stroke != nil:
		dc.SetStrokeBrush(st.Stroke)
		dc.SetLineWidth(widthOr(st.LineWidth, DefaultLineWidth))
		stroke(dc, op)
	default:
		dc.ClearPath()
	}
}
