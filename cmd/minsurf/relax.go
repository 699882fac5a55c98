package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minsurf/minsurf/pkg/boundary"
	"github.com/minsurf/minsurf/pkg/mesh"
	"github.com/minsurf/minsurf/pkg/relax"
)

var (
	relaxTolerance     float64
	relaxMaxIterations int
	relaxWorkers       int
	relaxConditions    string
	relaxOutput        string
	relaxPrintTrace    bool
)

var relaxCmd = &cobra.Command{
	Use:   "relax [mesh.json]",
	Short: "Minimize the surface area of a mesh",
	Long: `Relax a mesh toward locally minimal area. Boundary conditions are read
from a JSON file when given; otherwise every open-boundary vertex is
anchored at its current position.`,
	Args: cobra.ExactArgs(1),
	Run:  runRelax,
}

func init() {
	rootCmd.AddCommand(relaxCmd)

	relaxCmd.Flags().Float64VarP(&relaxTolerance, "tolerance", "t", 1e-6, "area change convergence tolerance")
	relaxCmd.Flags().IntVarP(&relaxMaxIterations, "max-iterations", "i", 1000, "iteration cap, 0 for unbounded")
	relaxCmd.Flags().IntVar(&relaxWorkers, "workers", 1, "vertex update goroutines per iteration")
	relaxCmd.Flags().StringVarP(&relaxConditions, "conditions", "c", "", "boundary condition JSON file")
	relaxCmd.Flags().StringVarP(&relaxOutput, "out", "o", "", "output mesh file (default stdout)")
	relaxCmd.Flags().BoolVar(&relaxPrintTrace, "trace", false, "print the full area trace")
}

func runRelax(cmd *cobra.Command, args []string) {
	m := loadMesh(args[0])

	opts := relax.Options{
		Tolerance:     relaxTolerance,
		MaxIterations: relaxMaxIterations,
		Workers:       relaxWorkers,
	}

	if relaxConditions != "" {
		data, err := os.ReadFile(relaxConditions)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading conditions: %v\n", err)
			os.Exit(1)
		}
		conditions, err := boundary.DecodeList(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing conditions: %v\n", err)
			os.Exit(1)
		}
		opts.Conditions = boundary.BuildCollection(conditions)
	}

	res := relax.Minimize(m.Vertices, m.Faces, m.Connectivity(), opts)

	out := &mesh.Mesh{Vertices: res.Vertices, Faces: m.Faces}
	writeMesh(out, relaxOutput)

	iterations := len(res.AreaTrace) - 1
	fmt.Fprintf(os.Stderr, "Relaxed %d vertices over %d iterations: area %.6f -> %.6f\n",
		m.VertexCount(), iterations, res.AreaTrace[0], res.AreaTrace[iterations])
	if relaxPrintTrace {
		for i, a := range res.AreaTrace {
			fmt.Fprintf(os.Stderr, "  iteration %3d: %.9f\n", i, a)
		}
	}
}

func loadMesh(path string) *mesh.Mesh {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening mesh: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	m, err := mesh.Load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}
	return m
}

func writeMesh(m *mesh.Mesh, path string) {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	if err := m.Store(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing mesh: %v\n", err)
		os.Exit(1)
	}
}
