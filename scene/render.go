// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"

	"github.com/gogpu/vizcanvas"
	"github.com/gogpu/vizcanvas/paint"
)

// Render clears the surface and repaints the scene at animation time t
// seconds. It returns vizcanvas.ErrNotReady when the surface cannot be
// drawn yet, which callers treat as "skip this frame".
func Render(s *vizcanvas.Surface, sc *Scene, t float64) error {
	var err error
	if derr := s.Draw(func(dc *gg.Context) {
		err = Draw(dc, sc, t, s.LogicalWidth(), s.LogicalHeight())
	}); derr != nil {
		return derr
	}
	return err
}

// Draw clears dc and paints every command of sc at time t over a logical
// area of w×h. The background defaults to white.
func Draw(dc *gg.Context, sc *Scene, t, w, h float64) error {
	dc.Clear()
	bg := gg.Brush(gg.Solid(gg.White))
	if !sc.Background.IsZero() {
		b, err := sc.Background.Brush(dc)
		if err != nil {
			return fmt.Errorf("scene: background: %w", err)
		}
		bg = b
	}
	paint.Fill(dc, bg, w, h)

	for i := range sc.Commands {
		if err := drawCommand(dc, &sc.Commands[i], t, w, h); err != nil {
			return fmt.Errorf("scene: command %d (%s): %w", i, sc.Commands[i].Op, err)
		}
	}
	return nil
}

func drawCommand(dc *gg.Context, c *Command, t, w, h float64) error {
	fill, err := c.Fill.Brush(dc)
	if err != nil {
		return err
	}
	stroke, err := c.Stroke.Brush(dc)
	if err != nil {
		return err
	}
	style := paint.Style{Fill: fill, Stroke: stroke, LineWidth: c.LineWidth}

	switch c.Op {
	case OpFill:
		cw, ch := c.W, c.H
		if cw == 0 && ch == 0 {
			cw, ch = w, h
		}
		paint.Fill(dc, fill, cw, ch)
	case OpLine:
		if c.Dash != nil {
			paint.DashedLine(dc, c.X, c.Y, c.X2, c.Y2, stroke, c.LineWidth, c.Dash...)
		} else {
			paint.Line(dc, c.X, c.Y, c.X2, c.Y2, stroke, c.LineWidth)
		}
	case OpPolyline:
		pts := make([]gg.Point, len(c.Points))
		for i, p := range c.Points {
			pts[i] = gg.Pt(p[0], p[1])
		}
		paint.Polyline(dc, pts, stroke, c.LineWidth)
	case OpCircle:
		paint.Circle(dc, c.X, c.Y, c.R, style)
	case OpRect:
		paint.Rect(dc, c.X, c.Y, c.W, c.H, style)
	case OpText:
		return drawText(dc, c)
	case OpPlot:
		fn, ok := Lookup(c.Fn, c.Speed*t)
		if !ok {
			return fmt.Errorf("unknown function %q", c.Fn)
		}
		pw, ph := sizeOr(c.W, w), sizeOr(c.H, h)
		dc.Push()
		dc.Translate(c.X, c.Y)
		opts := paint.PlotOptions{Color: stroke, LineWidth: c.LineWidth}
		if c.YMin != nil && c.YMax != nil {
			opts = opts.WithYRange(*c.YMin, *c.YMax)
		}
		if c.OriginY != nil {
			opts = opts.WithOriginY(*c.OriginY)
		}
		paint.FunctionPlot(dc, fn, c.XMin, c.XMax, pw, ph, opts)
		dc.Pop()
	case OpHistogram:
		paint.Histogram(dc, c.Counts, c.X, c.Y, sizeOr(c.W, w), sizeOr(c.H, h),
			paint.HistogramStyle{Fill: fill, Stroke: stroke, Gap: c.Gap})
	case OpArrow:
		paint.Arrow(dc, c.X, c.Y, c.X2, c.Y2, paint.ArrowStyle{
			Color:     stroke,
			LineWidth: c.LineWidth,
			HeadSize:  c.HeadSize,
		})
	case OpGrid:
		paint.Grid(dc, sizeOr(c.W, w), sizeOr(c.H, h), c.Spacing, stroke, c.LineWidth)
	case OpAxes:
		return drawAxes(dc, c, w, h)
	default:
		return fmt.Errorf("unknown op %q", c.Op)
	}
	return nil
}

func drawText(dc *gg.Context, c *Command) error {
	align, err := parseAlign(c.Align)
	if err != nil {
		return err
	}
	baseline, err := parseBaseline(c.Baseline)
	if err != nil {
		return err
	}
	var col color.Color
	if c.Color != "" {
		if col, err = ParseColor(c.Color); err != nil {
			return err
		}
	}
	paint.Text(dc, c.Text, c.X, c.Y, paint.TextStyle{
		Font:     c.Font,
		Color:    col,
		Align:    align,
		Baseline: baseline,
	})
	return nil
}

func drawAxes(dc *gg.Context, c *Command, w, h float64) error {
	tag := language.English
	if c.Locale != "" {
		var err error
		if tag, err = language.Parse(c.Locale); err != nil {
			return fmt.Errorf("locale: %w", err)
		}
	}
	stroke, err := c.Stroke.Brush(dc)
	if err != nil {
		return err
	}
	var labelColor color.Color
	if c.Color != "" {
		if labelColor, err = ParseColor(c.Color); err != nil {
			return err
		}
	}
	aw, ah := sizeOr(c.W, w), sizeOr(c.H, h)
	ox, oy := c.X, c.Y
	if ox == 0 && oy == 0 {
		ox, oy = aw/2, ah/2
	}
	paint.Axes(dc, aw, ah, paint.AxesStyle{
		Color:        stroke,
		LineWidth:    c.LineWidth,
		OriginX:      ox,
		OriginY:      oy,
		TickSpacing:  c.Spacing,
		TickSize:     c.TickSize,
		UnitsPerTick: c.UnitsPerTick,
		Locale:       tag,
		LabelFont:    c.Font,
		LabelColor:   labelColor,
	})
	return nil
}

func sizeOr(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
