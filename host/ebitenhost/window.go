// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build cgo

package ebitenhost

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/vizcanvas"
)

// Run shows the window and blocks until it is closed or the loop step
// returns an error.
func (w *Window) Run() error {
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	vizcanvas.Logger().Info("window opened",
		slog.String("title", w.title),
		slog.Int("width", w.width),
		slog.Int("height", w.height))
	return ebiten.RunGame(&game{w: w})
}

func monitorScale() float64 {
	return ebiten.Monitor().DeviceScaleFactor()
}

type game struct {
	w   *Window
	tex *ebiten.Image
}

func (g *game) Update() error {
	if g.w.loop != nil {
		g.w.loop.Step(time.Now())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	frame := g.w.snapshot()
	if frame == nil {
		return
	}
	size := frame.Bounds().Size()
	if g.tex == nil || g.tex.Bounds().Size() != size {
		if g.tex != nil {
			g.tex.Deallocate()
		}
		g.tex = ebiten.NewImage(size.X, size.Y)
	}
	g.tex.WritePixels(frame.Pix)

	sb := screen.Bounds()
	scale, dx, dy := fit(size.X, size.Y, sb.Dx(), sb.Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(dx, dy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.tex, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w.layout(outsideWidth, outsideHeight)
}
