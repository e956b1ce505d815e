// Command vizdemo renders vizcanvas scenes to PNG files, to a watched
// viewport or to a desktop window.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gogpu/vizcanvas"
	"github.com/gogpu/vizcanvas/scene"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func main() {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "vizdemo",
		Short: "render vizcanvas scenes",
		Long: `vizdemo draws YAML scenes through the vizcanvas primitive library.
Without a scene argument the built-in demo scene is used.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				vizcanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newWindowCommand())
	rootCmd.AddCommand(newSampleCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadScene loads the scene named by args, or the built-in scene.
func loadScene(args []string) (*scene.Scene, error) {
	if len(args) == 0 {
		return scene.Default(), nil
	}
	return scene.Load(args[0])
}
