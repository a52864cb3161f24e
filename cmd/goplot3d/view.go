package main

import (
	"github.com/philipparndt/goplot3d/internal/app"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open the interactive viewer window",
	Long:  "Open the viewer window, optionally preloaded with a point file.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := ""
		if len(args) > 0 {
			filename = args[0]
		}
		app.Run(filename)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
