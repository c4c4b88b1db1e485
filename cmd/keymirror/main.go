package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	outPath    string
	config     Config

	rootCmd = &cobra.Command{
		Use:   "keymirror",
		Short: "Symmetry tooling for point-cloud scenes with morph targets",
		Long: `keymirror mirrors morph targets and geometry across a symmetry
plane. Scenes are JSON documents holding a point cloud and optional
morph targets; every command reads one, mutates it in memory and
writes the result back (or to --out).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			config, err = loadConfig(configPath)
			return err
		},
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config (defaults apply without one)")
	rootCmd.PersistentFlags().StringVarP(&outPath, "out", "o", "", "write the result scene here instead of in place")

	rootCmd.AddCommand(
		mirrorCmd,
		mirrorAllCmd,
		forceMirrorCmd,
		filterCmd,
		saveWeightsCmd,
		loadWeightsCmd,
	)
}
