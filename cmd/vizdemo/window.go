package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/vizcanvas"
	"github.com/gogpu/vizcanvas/host/ebitenhost"
	"github.com/gogpu/vizcanvas/host/gogpuhost"
	"github.com/gogpu/vizcanvas/loop"
	"github.com/gogpu/vizcanvas/scene"
)

// windowHost is a desktop window that shows one surface.
type windowHost interface {
	vizcanvas.Host
	Present(s *vizcanvas.Surface)
	Run() error
}

func newWindowCommand() *cobra.Command {
	var backend string
	cmd := &cobra.Command{
		Use:   "window [scene.yaml]",
		Short: "show a scene in a desktop window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScene(args)
			if err != nil {
				return err
			}
			return showWindow(sc, backend)
		},
	}
	cmd.Flags().StringVar(&backend, "backend", "gogpu", "window backend: gogpu or ebiten")
	return cmd
}

// newWindowHost creates the window for the named backend.
func newWindowHost(backend, title string, width, height int, l *loop.Loop) (windowHost, error) {
	switch backend {
	case "gogpu":
		return gogpuhost.New(title, width, height, gogpuhost.WithLoop(l)), nil
	case "ebiten":
		return ebitenhost.New(title, width, height, ebitenhost.WithLoop(l)), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want gogpu or ebiten)", backend)
	}
}

func showWindow(sc *scene.Scene, backend string) error {
	title := sc.Title
	if title == "" {
		title = "vizdemo"
	}
	l := loop.New()
	win, err := newWindowHost(backend, title, int(sc.Width), int(sc.Height), l)
	if err != nil {
		return err
	}

	mgr, err := vizcanvas.NewManager(win)
	if err != nil {
		return err
	}
	defer mgr.ReleaseAll()

	s, err := mgr.Acquire(sc.Width, sc.Height, sc.SurfaceOptions()...)
	if err != nil {
		return err
	}
	win.Present(s)

	start := time.Now()
	render := func(now time.Time) {
		err := scene.Render(s, sc, now.Sub(start).Seconds())
		if err != nil && !errors.Is(err, vizcanvas.ErrNotReady) {
			vizcanvas.Logger().Error("render failed", slog.Any("err", err))
		}
	}

	if sc.Animated() {
		anim := loop.Animate(l, func(now time.Time) bool {
			render(now)
			return true
		})
		defer anim.Cancel()
	} else {
		// Static scenes repaint only when the window is rescaled.
		remove := win.OnResize(func() {
			l.RequestFrame(render)
		})
		defer remove()
	}
	return win.Run()
}
