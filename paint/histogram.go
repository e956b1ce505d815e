// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"github.com/gogpu/gg"
)

// Number is any integer or floating-point count type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// HistogramStyle configures Histogram. Gap is the horizontal space between
// neighbouring bars, split evenly on both sides of each bar.
type HistogramStyle struct {
	Fill   gg.Brush
	Stroke gg.Brush
	Gap    float64
}

// Bar is one histogram bar in canvas coordinates.
type Bar struct {
	X, Y, W, H float64
}

// HistogramBars lays out len(counts) equal-width bars in the box (x, y, w, h),
// bottom-aligned, scaled so the largest count fills h exactly. It returns
// nil when counts is empty or no count is positive.
func HistogramBars[T Number](counts []T, x, y, w, h, gap float64) []Bar {
	if len(counts) == 0 {
		return nil
	}
	var peak float64
	for _, c := range counts {
		if v := float64(c); v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		return nil
	}

	slot := w / float64(len(counts))
	bars := make([]Bar, len(counts))
	for i, c := range counts {
		bh := float64(c) / peak * h
		if bh < 0 {
			bh = 0
		}
		bars[i] = Bar{
			X: x + float64(i)*slot + gap/2,
			Y: y + h - bh,
			W: slot - gap,
			H: bh,
		}
	}
	return bars
}

// Histogram draws the bars of HistogramBars. The fill defaults to black
// when neither Fill nor Stroke is set.
func Histogram[T Number](dc Context, counts []T, x, y, w, h float64, st HistogramStyle) {
	style := Style{Fill: st.Fill, Stroke: st.Stroke}
	if style.Fill == nil && style.Stroke == nil {
		style.Fill = defaultInk
	}
	for _, b := range HistogramBars(counts, x, y, w, h, st.Gap) {
		if b.H == 0 {
			continue
		}
		dc.DrawRectangle(b.X, b.Y, b.W, b.H)
		paintShape(dc, "histogram", style)
	}
}
