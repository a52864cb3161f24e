package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goplot3d/pkg/dataset"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Display information about a point file",
	Long:  "Show point count, bounding box, center and dimensions of a point file.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	samples, err := dataset.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing point file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Point File Information")
	fmt.Println("======================")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Points: %d\n\n", len(samples))

	if len(samples) == 0 {
		return
	}

	box := dataset.Bounds(samples)
	center := box.Center()
	size := box.Size()

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: (%.3f, %.3f, %.3f)\n", box.Min.X, box.Min.Y, box.Min.Z)
	fmt.Printf("  Max: (%.3f, %.3f, %.3f)\n", box.Max.X, box.Max.Y, box.Max.Z)
	fmt.Printf("  Center: (%.3f, %.3f, %.3f)\n\n", center.X, center.Y, center.Z)

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", size.X)
	fmt.Printf("  Depth (Y): %.6f units\n", size.Y)
	fmt.Printf("  Height (Z): %.6f units\n", size.Z)
	fmt.Printf("  Diagonal: %.6f units\n", box.Diagonal())
}
