// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// recorder implements Context by logging every call. Points passed to path
// methods are mapped through its matrix like gg does.
type recorder struct {
	calls  []string
	matrix gg.Matrix
	stack  []gg.Matrix
	face   text.Face
	color  color.Color
	texts  []drawnText
}

type drawnText struct {
	s    string
	x, y float64
	face text.Face
}

func newRecorder() *recorder {
	return &recorder{matrix: gg.Identity()}
}

func (r *recorder) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

// count returns how many calls start with prefix.
func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (r *recorder) Push() {
	r.stack = append(r.stack, r.matrix)
	r.log("Push")
}

func (r *recorder) Pop() {
	if n := len(r.stack); n > 0 {
		r.matrix = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
	r.log("Pop")
}

func (r *recorder) Identity()               { r.matrix = gg.Identity(); r.log("Identity") }
func (r *recorder) GetTransform() gg.Matrix { return r.matrix }

func (r *recorder) TransformPoint(x, y float64) (float64, float64) {
	p := r.matrix.TransformPoint(gg.Pt(x, y))
	return p.X, p.Y
}

func (r *recorder) SetFillBrush(b gg.Brush)    { r.log("SetFillBrush") }
func (r *recorder) SetStrokeBrush(b gg.Brush)  { r.log("SetStrokeBrush") }
func (r *recorder) SetColor(c color.Color)     { r.color = c; r.log("SetColor") }
func (r *recorder) SetLineWidth(w float64)     { r.log("SetLineWidth %g", w) }
func (r *recorder) SetDash(lengths ...float64) { r.log("SetDash %v", lengths) }
func (r *recorder) ClearDash()                 { r.log("ClearDash") }

func (r *recorder) MoveTo(x, y float64) { r.log("MoveTo %g %g", x, y) }
func (r *recorder) LineTo(x, y float64) { r.log("LineTo %g %g", x, y) }
func (r *recorder) ClosePath()          { r.log("ClosePath") }
func (r *recorder) ClearPath()          { r.log("ClearPath") }

func (r *recorder) DrawRectangle(x, y, w, h float64) { r.log("DrawRectangle %g %g %g %g", x, y, w, h) }
func (r *recorder) DrawCircle(x, y, rad float64)     { r.log("DrawCircle %g %g %g", x, y, rad) }

func (r *recorder) Fill() error            { r.log("Fill"); return nil }
func (r *recorder) Stroke() error          { r.log("Stroke"); return nil }
func (r *recorder) FillPreserve() error    { r.log("FillPreserve"); return nil }
func (r *recorder) SetFont(face text.Face) { r.face = face; r.log("SetFont") }

func (r *recorder) DrawString(s string, x, y float64) {
	r.texts = append(r.texts, drawnText{s: s, x: x, y: y, face: r.face})
	r.log("DrawString %s", s)
}

var _ Context = (*recorder)(nil)
