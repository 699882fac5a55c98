package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "minsurf",
	Short: "Constrained mesh area minimization",
	Long: `minsurf relaxes triangulated meshes toward locally minimal surface
area while honoring per-vertex boundary conditions: fully or partially
locked anchors, and constraints keeping a vertex on a circle embedded
in 3D space.`,
	Version: "1.0.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
