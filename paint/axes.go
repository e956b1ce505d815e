// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Grid strokes vertical and horizontal lines every spacing units across
// [0,w]×[0,h], starting at 0.
func Grid(dc Context, w, h, spacing float64, b gg.Brush, width float64) {
	if !(spacing > 0) {
		return
	}
	for x := 0.0; x <= w; x += spacing {
		dc.MoveTo(x, 0)
		dc.LineTo(x, h)
	}
	for y := 0.0; y <= h; y += spacing {
		dc.MoveTo(0, y)
		dc.LineTo(w, y)
	}
	dc.SetStrokeBrush(brushOr(b, gg.Solid(gg.RGBA2(0, 0, 0, 0.1))))
	dc.SetLineWidth(widthOr(width, DefaultLineWidth))
	stroke(dc, "grid")
}

// AxesStyle configures Axes.
//
// TickSpacing is the distance between ticks in canvas units; zero draws no
// ticks. UnitsPerTick is the value step between ticks; zero draws no labels.
// Labels are formatted for Locale (default English).
type AxesStyle struct {
	Color        gg.Brush
	LineWidth    float64
	OriginX      float64
	OriginY      float64
	TickSpacing  float64
	TickSize     float64
	UnitsPerTick float64
	Locale       language.Tag
	LabelFont    string
	LabelColor   color.Color
}

// Tick is one axis tick: its canvas position and the value it stands for.
type Tick struct {
	Pos   float64
	Value float64
}

// AxisTicks returns the ticks along [0, length] placed every spacing units
// from origin in both directions, the origin itself excluded.
func AxisTicks(origin, length, spacing, unitsPerTick float64) []Tick {
	if !(spacing > 0) {
		return nil
	}
	var ticks []Tick
	first := -math.Floor(origin / spacing)
	for k := first; ; k++ {
		pos := origin + k*spacing
		if pos > length {
			break
		}
		if k == 0 || pos < 0 {
			continue
		}
		ticks = append(ticks, Tick{Pos: pos, Value: k * unitsPerTick})
	}
	return ticks
}

// FormatTick formats a tick value for tag with at most two fraction digits
// and the locale's grouping and decimal separators.
func FormatTick(tag language.Tag, v float64) string {
	if v == 0 {
		v = 0 // normalise -0
	}
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// Axes draws an x axis at OriginY and a y axis at OriginX spanning the
// [0,w]×[0,h] area, with optional ticks and value labels. The y axis grows
// upwards: labels below the origin are negative.
func Axes(dc Context, w, h float64, st AxesStyle) {
	b := brushOr(st.Color, defaultInk)
	lw := widthOr(st.LineWidth, DefaultLineWidth)
	tickSize := widthOr(st.TickSize, 4)
	tag := st.Locale
	if tag == language.Und {
		tag = language.English
	}
	font := st.LabelFont
	if font == "" {
		font = "11px sans-serif"
	}
	labelColor := st.LabelColor
	if labelColor == nil {
		labelColor = color.Black
	}

	dc.MoveTo(0, st.OriginY)
	dc.LineTo(w, st.OriginY)
	dc.MoveTo(st.OriginX, 0)
	dc.LineTo(st.OriginX, h)

	xTicks := AxisTicks(st.OriginX, w, st.TickSpacing, st.UnitsPerTick)
	yTicks := AxisTicks(st.OriginY, h, st.TickSpacing, st.UnitsPerTick)
	for _, t := range xTicks {
		dc.MoveTo(t.Pos, st.OriginY-tickSize)
		dc.LineTo(t.Pos, st.OriginY+tickSize)
	}
	for _, t := range yTicks {
		dc.MoveTo(st.OriginX-tickSize, t.Pos)
		dc.LineTo(st.OriginX+tickSize, t.Pos)
	}
	dc.SetStrokeBrush(b)
	dc.SetLineWidth(lw)
	stroke(dc, "axes")

	if st.UnitsPerTick == 0 {
		return
	}
	for _, t := range xTicks {
		Text(dc, FormatTick(tag, t.Value), t.Pos, st.OriginY+tickSize+2, TextStyle{
			Font: font, Color: labelColor, Align: AlignCenter, Baseline: BaselineTop,
		})
	}
	for _, t := range yTicks {
		Text(dc, FormatTick(tag, -t.Value), st.OriginX-tickSize-2, t.Pos, TextStyle{
			Font: font, Color: labelColor, Align: AlignRight, Baseline: BaselineMiddle,
		})
	}
}
