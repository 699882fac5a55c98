package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var areaCmd = &cobra.Command{
	Use:   "area [mesh.json]",
	Short: "Report the surface area of a mesh",
	Args:  cobra.ExactArgs(1),
	Run:   runArea,
}

func init() {
	rootCmd.AddCommand(areaCmd)
}

func runArea(cmd *cobra.Command, args []string) {
	m := loadMesh(args[0])

	fmt.Printf("Vertices:       %d\n", m.VertexCount())
	fmt.Printf("Faces:          %d\n", m.FaceCount())
	fmt.Printf("Boundary verts: %d\n", len(m.BoundaryVertices()))
	fmt.Printf("Surface area:   %.6f\n", m.Area())
}
