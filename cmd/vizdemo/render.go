package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/vizcanvas"
	"github.com/gogpu/vizcanvas/scene"
)

func newRenderCommand() *cobra.Command {
	var (
		output string
		dpr    float64
		at     float64
	)
	cmd := &cobra.Command{
		Use:   "render [scene.yaml]",
		Short: "render a scene to a PNG file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScene(args)
			if err != nil {
				return err
			}
			if dpr <= 0 {
				dpr = sc.Ratio()
			}
			w, h, err := renderToFile(sc, dpr, at, output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				okStyle.Render("wrote"),
				infoStyle.Render(output),
				dimStyle.Render(fmt.Sprintf("(%dx%d @%gx)", w, h, dpr)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "scene.png", "output file")
	cmd.Flags().Float64Var(&dpr, "dpr", 0, "device pixel ratio (default from scene)")
	cmd.Flags().Float64Var(&at, "time", 0, "animation time in seconds")
	return cmd
}

// renderToFile renders sc once on a headless host and writes the backing
// store to path. It returns the backing size.
func renderToFile(sc *scene.Scene, dpr, t float64, path string) (int, int, error) {
	mgr, err := vizcanvas.NewManager(vizcanvas.NewHeadlessHost(dpr))
	if err != nil {
		return 0, 0, err
	}
	defer mgr.ReleaseAll()

	s, err := mgr.Acquire(sc.Width, sc.Height, sc.SurfaceOptions()...)
	if err != nil {
		return 0, 0, err
	}
	if err := scene.Render(s, sc, t); err != nil {
		return 0, 0, err
	}
	if err := s.SavePNG(path); err != nil {
		return 0, 0, err
	}
	w, h := s.BackingSize()
	return w, h, nil
}
