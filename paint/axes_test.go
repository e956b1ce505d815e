// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"testing"

	"golang.org/x/text/language"
)

func TestAxisTicks(t *testing.T) {
	ticks := AxisTicks(100, 200, 50, 0.5)
	want := []Tick{{0, -1}, {50, -0.5}, {150, 0.5}, {200, 1}}
	if len(ticks) != len(want) {
		t.Fatalf("ticks = %v, want %v", ticks, want)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Errorf("tick %d = %v, want %v", i, ticks[i], want[i])
		}
	}
}

func TestAxisTicks_NoSpacing(t *testing.T) {
	if ticks := AxisTicks(10, 100, 0, 1); ticks != nil {
		t.Errorf("zero spacing: got %v, want nil", ticks)
	}
}

func TestFormatTick(t *testing.T) {
	if got := FormatTick(language.English, 2); got != "2" {
		t.Errorf("FormatTick(en, 2) = %q, want 2", got)
	}
	if got := FormatTick(language.English, 0.25); got != "0.25" {
		t.Errorf("FormatTick(en, 0.25) = %q, want 0.25", got)
	}
	if got := FormatTick(language.English, 1.23456); got != "1.23" {
		t.Errorf("FormatTick(en, 1.23456) = %q, want 1.23", got)
	}
	if got := FormatTick(language.English, -0.0); got != "0" {
		t.Errorf("FormatTick(en, -0) = %q, want 0", got)
	}
}

func TestAxes_LabelsOnlyWithUnits(t *testing.T) {
	r := newRecorder()
	Axes(r, 200, 200, AxesStyle{OriginX: 100, OriginY: 100, TickSpacing: 50})
	if len(r.texts) != 0 {
		t.Errorf("labels drawn without UnitsPerTick: %v", r.texts)
	}
	if r.count("Stroke") != 1 {
		t.Errorf("axes should stroke once, calls %v", r.calls)
	}

	r = newRecorder()
	Axes(r, 200, 200, AxesStyle{OriginX: 100, OriginY: 100, TickSpacing: 50, UnitsPerTick: 1})
	if len(r.texts) != 8 {
		t.Fatalf("labels = %d, want 8", len(r.texts))
	}
	// y axis labels grow upwards: the tick above the origin reads 1.
	var sawPositiveAbove bool
	for _, tx := range r.texts {
		if tx.s == "1" && tx.y < 100 {
			sawPositiveAbove = true
		}
	}
	if !sawPositiveAbove {
		t.Error("expected a positive y label above the origin")
	}
}
