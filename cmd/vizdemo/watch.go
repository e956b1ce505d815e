package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/gogpu/vizcanvas"
	"github.com/gogpu/vizcanvas/host/viewport"
	"github.com/gogpu/vizcanvas/loop"
	"github.com/gogpu/vizcanvas/scene"
)

func newWatchCommand() *cobra.Command {
	var (
		output   string
		viewFile string
		at       float64
	)
	cmd := &cobra.Command{
		Use:   "watch [scene.yaml]",
		Short: "re-render a scene whenever the viewport file changes",
		Long: `watch renders the scene on a host described by a viewport file:

  device_pixel_ratio: 2
  attached: true

Every saved change to the viewport rescales the surface and rewrites the
output. Detaching the viewport skips rendering until it is attached again.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScene(args)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchScene(ctx, sc, viewFile, output, at, func(msg string) {
				fmt.Fprintln(cmd.OutOrStdout(), msg)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "scene.png", "output file")
	cmd.Flags().StringVar(&viewFile, "viewport", "viewport.yaml", "viewport file to watch")
	cmd.Flags().Float64Var(&at, "time", 0, "animation time in seconds")
	return cmd
}

// watchScene renders sc to path every time the viewport changes, until ctx
// is done. Resize notifications are delivered on the loop, so the surface
// is only touched from one goroutine.
func watchScene(ctx context.Context, sc *scene.Scene, viewFile, path string, t float64, report func(string)) error {
	l := loop.New()
	host, err := viewport.Open(viewFile, viewport.WithDispatcher(l.Post))
	if err != nil {
		return err
	}
	defer host.Close()

	mgr, err := vizcanvas.NewManager(host)
	if err != nil {
		return err
	}
	defer mgr.ReleaseAll()

	s, err := mgr.Acquire(sc.Width, sc.Height, sc.SurfaceOptions()...)
	if err != nil {
		return err
	}

	render := func() {
		err := scene.Render(s, sc, t)
		switch {
		case errors.Is(err, vizcanvas.ErrNotReady):
			report(dimStyle.Render("viewport detached, skipping"))
			return
		case err != nil:
			vizcanvas.Logger().Error("render failed", slog.Any("err", err))
			return
		}
		if err := s.SavePNG(path); err != nil {
			vizcanvas.Logger().Error("save failed", slog.Any("err", err))
			return
		}
		w, h := s.BackingSize()
		report(fmt.Sprintf("%s %s %s",
			okStyle.Render("wrote"),
			infoStyle.Render(path),
			dimStyle.Render(fmt.Sprintf("(%dx%d @%gx)", w, h, s.DevicePixelRatio()))))
	}

	// Posted rather than run directly so the surface's own listener has
	// rescaled it by the time the scene is drawn.
	remove := host.OnResize(func() { l.Post(render) })
	defer remove()

	l.Post(render)
	report(dimStyle.Render("watching " + host.Path()))
	if err := l.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
