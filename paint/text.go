// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"image/color"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/vizcanvas"
)

// Align is the horizontal anchor of a text run.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Baseline is the vertical anchor of a text run.
type Baseline uint8

const (
	BaselineAlphabetic Baseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

// TextStyle configures Text. Every field has an independent default: font
// DefaultFont, color black, left aligned, alphabetic baseline.
type TextStyle struct {
	Font     string
	Color    color.Color
	Align    Align
	Baseline Baseline
}

// Text draws s anchored at (x, y) in logical units.
//
// Glyphs are rasterized at device resolution: the font size is multiplied by
// the context's current scale, and the anchor is mapped through the
// transform. Rotation and shear are not applied to glyphs.
func Text(dc Context, s string, x, y float64, st TextStyle) {
	if s == "" {
		return
	}
	spec, err := ParseFont(st.Font)
	if err != nil {
		if st.Font != "" {
			vizcanvas.Logger().Debug("bad font, using default", slog.String("font", st.Font))
		}
		spec, _ = ParseFont(DefaultFont)
	}

	scale := matrixScale(dc.GetTransform())
	face, err := Face(spec, scale)
	if err != nil {
		logDrawError("text", "font", err)
		return
	}

	dx, dy := dc.TransformPoint(x, y)
	dx, dy = anchorText(face, s, dx, dy, st.Align, st.Baseline)

	col := st.Color
	if col == nil {
		col = color.Black
	}

	dc.Push()
	dc.Identity()
	dc.SetFont(face)
	dc.SetColor(col)
	dc.DrawString(s, dx, dy)
	dc.Pop()
}

// MeasureText returns the advance width and line height of s in logical
// units for the given font shorthand.
func MeasureText(s, font string) (width, height float64) {
	spec, err := ParseFont(font)
	if err != nil {
		spec, _ = ParseFont(DefaultFont)
	}
	face, err := Face(spec, 1)
	if err != nil {
		return 0, 0
	}
	return face.Advance(s), face.Metrics().LineHeight()
}

// anchorText moves the device-space anchor to the alphabetic baseline origin
// that gg's DrawString expects.
func anchorText(face text.Face, s string, x, y float64, a Align, b Baseline) (float64, float64) {
	switch a {
	case AlignCenter:
		x -= face.Advance(s) / 2
	case AlignRight:
		x -= face.Advance(s)
	}

	m := face.Metrics()
	switch b {
	case BaselineTop:
		y += m.Ascent
	case BaselineMiddle:
		y += (m.Ascent - m.Descent) / 2
	case BaselineBottom:
		y -= m.Descent
	}
	return x, y
}

// matrixScale is the uniform scale of m: the square root of the absolute
// determinant of its linear part.
func matrixScale(m gg.Matrix) float64 {
	s := math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
	if s == 0 || math.IsNaN(s) {
		return 1
	}
	return s
}
