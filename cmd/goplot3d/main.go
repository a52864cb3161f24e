package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goplot3d/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goplot3d",
	Short: "An interactive 3D point-cloud viewer",
	Long: `goplot3d renders 3D-positioned points onto a 2D surface with
mouse-driven rotation, zoom, optional perspective projection and
automatic scaling to fit the data.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
