package main

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/gogpu/vizcanvas/scene"
)

func newSampleCommand() *cobra.Command {
	var (
		fn         string
		xMin, xMax float64
		width      int
		height     int
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "preview a plot function in the terminal",
		Long: "sample evaluates a named plot function once per column, the way a\n" +
			"function plot samples once per pixel, and draws it as an ASCII graph.\n\n" +
			"Functions: " + strings.Join(scene.FunctionNames(), ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := sampleGraph(fn, xMin, xMax, width, height)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), graph)
			return nil
		},
	}
	cmd.Flags().StringVar(&fn, "fn", "sin", "function name")
	cmd.Flags().Float64Var(&xMin, "xmin", -6.2832, "start of the x range")
	cmd.Flags().Float64Var(&xMax, "xmax", 6.2832, "end of the x range")
	cmd.Flags().IntVar(&width, "width", 72, "number of columns")
	cmd.Flags().IntVar(&height, "height", 12, "graph height in rows")
	return cmd
}

// samples evaluates fn at n+1 evenly spaced points covering [xMin, xMax].
func samples(fn func(float64) float64, xMin, xMax float64, n int) []float64 {
	out := make([]float64, n+1)
	for i := range out {
		x := xMin + float64(i)/float64(n)*(xMax-xMin)
		out[i] = fn(x)
	}
	return out
}

func sampleGraph(name string, xMin, xMax float64, width, height int) (string, error) {
	f, ok := scene.Lookup(name, 0)
	if !ok {
		return "", fmt.Errorf("unknown function %q (have %s)", name, strings.Join(scene.FunctionNames(), ", "))
	}
	if !(xMax > xMin) {
		return "", fmt.Errorf("empty x range [%v, %v]", xMin, xMax)
	}
	if width < 1 || height < 1 {
		return "", fmt.Errorf("width and height must be positive")
	}
	data := samples(f, xMin, xMax, width)
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width+1),
		asciigraph.Caption(fmt.Sprintf("%s(x), x in [%g, %g]", name, xMin, xMax)),
	), nil
}
