// Command pzview opens an image in a pan/zoom viewer.
//
//	pzview photo.webp --contain outside
//	pzview --options opts.json --script smoke.json --exit
//
// Drag to pan, scroll or pinch to zoom, +/- to zoom in steps, 0 to reset.
// Without an image a generated grid is shown.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	flags   viewFlags

	rootCmd = &cobra.Command{
		Use:   "pzview [image]",
		Short: "Pan and zoom an image with mouse, touch, and wheel",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.image = args[0]
			}
			return run(flags)
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of pzview",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pzview version %s\n", version)
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&flags.options, "options", "o", "",
		"JSON file of panzoom options (e.g. {\"maxScale\": 8, \"step\": 0.5})")
	rootCmd.Flags().StringVarP(&flags.script, "script", "s", "",
		"JSON test script to drive the viewer")
	rootCmd.Flags().StringVarP(&flags.contain, "contain", "c", "",
		"Containment mode: 'inside' or 'outside' (overrides the options file)")
	rootCmd.Flags().BoolVar(&flags.debug, "debug", false,
		"Log committed transforms and gesture transitions to stderr")
	rootCmd.Flags().BoolVar(&flags.exit, "exit", false,
		"Exit when the test script finishes")
	rootCmd.Flags().StringVar(&flags.screenshots, "screenshots", "screenshots",
		"Directory for screenshots taken by the test script")
	rootCmd.Flags().IntVarP(&flags.width, "width", "W", 800, "Window width")
	rootCmd.Flags().IntVarP(&flags.height, "height", "H", 600, "Window height")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
