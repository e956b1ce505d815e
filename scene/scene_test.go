// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_Valid(t *testing.T) {
	s := Default()
	if s.Width != 640 || s.Height != 400 {
		t.Errorf("Default() size = %vx%v, want 640x400", s.Width, s.Height)
	}
	if !s.Animated() {
		t.Error("Default() should be animated")
	}
	seen := make(map[Op]bool)
	for _, c := range s.Commands {
		seen[c.Op] = true
	}
	for _, op := range []Op{OpGrid, OpAxes, OpPlot, OpHistogram, OpCircle, OpArrow, OpRect, OpText} {
		if !seen[op] {
			t.Errorf("Default() has no %s command", op)
		}
	}
}

func TestParse_PaintForms(t *testing.T) {
	s, err := Parse([]byte(`
width: 100
height: 50
background: "#fff"
commands:
  - op: rect
    w: 10
    h: 10
    fill: red
    stroke:
      linear: [0, 0, 10, 0]
      stops: [{offset: 0, color: white}, {offset: 1, color: black}]
  - op: polyline
    points: [[0, 0], [10, 10], [20, 0]]
    stroke: blue
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Background.Color != "#fff" {
		t.Errorf("background = %+v", s.Background)
	}
	rect := s.Commands[0]
	if rect.Fill.Color != "red" {
		t.Errorf("fill = %+v, want red", rect.Fill)
	}
	if len(rect.Stroke.Linear) != 4 || len(rect.Stroke.Stops) != 2 {
		t.Errorf("stroke = %+v, want linear gradient", rect.Stroke)
	}
	if got := s.Commands[1].Points; len(got) != 3 || got[1] != [2]float64{10, 10} {
		t.Errorf("points = %v", got)
	}
	if !s.ScalingEnabled() {
		t.Error("scaling should default to true")
	}
	if s.Ratio() != 1 {
		t.Errorf("Ratio() = %v, want 1", s.Ratio())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"size", "width: 0\nheight: 10\n", "size"},
		{"op", "width: 1\nheight: 1\ncommands: [{op: blur}]\n", `unknown op "blur"`},
		{"function", "width: 1\nheight: 1\ncommands: [{op: plot, fn: exp, xmin: 0, xmax: 1}]\n", `unknown function "exp"`},
		{"range", "width: 1\nheight: 1\ncommands: [{op: plot, fn: sin, xmin: 1, xmax: 1}]\n", "empty x range"},
		{"color", "width: 1\nheight: 1\ncommands: [{op: circle, r: 1, fill: notacolor}]\n", `unknown color "notacolor"`},
		{"hex", "width: 1\nheight: 1\ncommands: [{op: circle, r: 1, fill: '#12345'}]\n", "bad hex color"},
		{"gradient", "width: 1\nheight: 1\ncommands: [{op: rect, fill: {linear: [0, 0, 1]}}]\n", "needs 4 numbers"},
		{"stops", "width: 1\nheight: 1\ncommands: [{op: rect, fill: {radial: [0, 0, 0, 0, 0, 1]}}]\n", "no stops"},
		{"font", "width: 1\nheight: 1\ncommands: [{op: text, text: a, font: huge}]\n", "text"},
		{"align", "width: 1\nheight: 1\ncommands: [{op: text, text: a, align: justify}]\n", `unknown align "justify"`},
		{"yrange", "width: 1\nheight: 1\ncommands: [{op: plot, fn: sin, xmin: 0, xmax: 1, ymin: 0}]\n", "together"},
		{"yempty", "width: 1\nheight: 1\ncommands: [{op: plot, fn: sin, xmin: 0, xmax: 1, ymin: 1, ymax: 1}]\n", "empty y range"},
		{"histogram", "width: 1\nheight: 1\ncommands: [{op: histogram}]\n", "no counts"},
		{"grid", "width: 1\nheight: 1\ncommands: [{op: grid}]\n", "spacing"},
		{"polyline", "width: 1\nheight: 1\ncommands: [{op: polyline, points: [[0, 0]]}]\n", "at least 2"},
		{"fill", "width: 1\nheight: 1\ncommands: [{op: fill}]\n", "fill paint"},
		{"yaml", "width: [\n", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %q, want it to mention %q", err, tt.want)
			}
			if tt.name != "yaml" && !errors.Is(err, ErrInvalidScene) {
				t.Errorf("Parse() error = %v, want ErrInvalidScene", err)
			}
		})
	}
}

func TestValidate_ReportsEveryCommand(t *testing.T) {
	s := &Scene{Width: 10, Height: 10, Commands: []Command{
		{Op: "nope"},
		{Op: OpCircle, R: 1},
		{Op: OpGrid},
	}}
	err := s.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "command 0") || !strings.Contains(msg, "command 2") {
		t.Errorf("Validate() = %q, want commands 0 and 2", msg)
	}
	if strings.Contains(msg, "command 1") {
		t.Errorf("Validate() = %q, command 1 is valid", msg)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("width: 10\nheight: 20\nscaling: false\ndevice_pixel_ratio: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.ScalingEnabled() {
		t.Error("ScalingEnabled() = true, want false")
	}
	if s.Ratio() != 2 {
		t.Errorf("Ratio() = %v, want 2", s.Ratio())
	}
	if len(s.SurfaceOptions()) != 1 {
		t.Errorf("SurfaceOptions() = %d options, want 1", len(s.SurfaceOptions()))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of missing file should fail")
	}
}

func TestMarshal_RoundTripsDefault(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal(Default())): %v", err)
	}
	if len(s.Commands) != len(Default().Commands) {
		t.Errorf("commands = %d, want %d", len(s.Commands), len(Default().Commands))
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint32
		wantErr bool
	}{
		{"#ff0000", 0xffff, 0, 0, false},
		{"#0f0", 0, 0xffff, 0, false},
		{"Blue", 0, 0, 0xffff, false},
		{"transparent", 0, 0, 0, false},
		{"", 0, 0, 0, true},
		{"#xyz", 0, 0, 0, true},
		{"chartreuse-ish", 0, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			r, g, b, _ := c.RGBA()
			if absDiff(r, tt.r) > 0x101 || absDiff(g, tt.g) > 0x101 || absDiff(b, tt.b) > 0x101 {
				t.Errorf("ParseColor(%q) = %d,%d,%d want %d,%d,%d", tt.in, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestFunctions(t *testing.T) {
	want := []string{"cos", "cubic", "gaussian", "identity", "sin", "square", "tanh"}
	got := FunctionNames()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("FunctionNames() = %v, want %v", got, want)
	}
	checks := map[string][2]float64{
		"identity": {3, 3},
		"cubic":    {2, 8},
		"square":   {-3, 9},
		"gaussian": {0, 1},
		"cos":      {0, 1},
	}
	for name, c := range checks {
		if y := Functions[name](c[0]); math.Abs(y-c[1]) > 1e-12 {
			t.Errorf("%s(%v) = %v, want %v", name, c[0], y, c[1])
		}
	}
}

func TestLookup_Phase(t *testing.T) {
	fn, ok := Lookup("identity", 2)
	if !ok {
		t.Fatal("Lookup(identity) not found")
	}
	if fn(1) != 3 {
		t.Errorf("shifted identity(1) = %v, want 3", fn(1))
	}
	if _, ok := Lookup("nope", 0); ok {
		t.Error("Lookup(nope) should fail")
	}
}

func TestParse_ExplicitZeroPlotOrigin(t *testing.T) {
	s, err := Parse([]byte("width: 10\nheight: 10\ncommands: [{op: plot, fn: sin, xmin: 0, xmax: 1, origin_y: 0, ymin: 0, ymax: 2}]\n"))
	if err != nil {
		t.Fatal(err)
	}
	c := s.Commands[0]
	if c.OriginY == nil || *c.OriginY != 0 {
		t.Errorf("origin_y = %v, want explicit 0", c.OriginY)
	}
	if c.YMin == nil || *c.YMin != 0 || c.YMax == nil || *c.YMax != 2 {
		t.Errorf("y range = %v..%v, want 0..2", c.YMin, c.YMax)
	}
}
