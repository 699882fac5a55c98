package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minsurf/minsurf/pkg/boundary"
	"github.com/minsurf/minsurf/pkg/geom"
)

var (
	anchorPoint [3]float64
	anchorIndex int
	anchorLockX bool
	anchorLockY bool
	anchorLockZ bool
)

var anchorCmd = &cobra.Command{
	Use:   "anchor",
	Short: "Emit a vertex anchor condition as JSON",
	Run:   runAnchor,
}

var (
	circlePoint  [3]float64
	circleIndex  int
	circleCenter [3]float64
	circleRadius float64
	circleNormal [3]float64
)

var onCircleCmd = &cobra.Command{
	Use:   "oncircle",
	Short: "Emit an on-circle condition as JSON",
	Run:   runOnCircle,
}

func init() {
	rootCmd.AddCommand(anchorCmd)
	anchorCmd.Flags().Float64Var(&anchorPoint[0], "x", 0, "anchor target x")
	anchorCmd.Flags().Float64Var(&anchorPoint[1], "y", 0, "anchor target y")
	anchorCmd.Flags().Float64Var(&anchorPoint[2], "z", 0, "anchor target z")
	anchorCmd.Flags().IntVar(&anchorIndex, "index", 0, "vertex index")
	anchorCmd.Flags().BoolVar(&anchorLockX, "lock-x", true, "lock the x axis")
	anchorCmd.Flags().BoolVar(&anchorLockY, "lock-y", true, "lock the y axis")
	anchorCmd.Flags().BoolVar(&anchorLockZ, "lock-z", true, "lock the z axis")

	rootCmd.AddCommand(onCircleCmd)
	onCircleCmd.Flags().Float64Var(&circlePoint[0], "x", 0, "vertex position x")
	onCircleCmd.Flags().Float64Var(&circlePoint[1], "y", 0, "vertex position y")
	onCircleCmd.Flags().Float64Var(&circlePoint[2], "z", 0, "vertex position z")
	onCircleCmd.Flags().IntVar(&circleIndex, "index", 0, "vertex index")
	onCircleCmd.Flags().Float64Var(&circleCenter[0], "cx", 0, "circle center x")
	onCircleCmd.Flags().Float64Var(&circleCenter[1], "cy", 0, "circle center y")
	onCircleCmd.Flags().Float64Var(&circleCenter[2], "cz", 0, "circle center z")
	onCircleCmd.Flags().Float64Var(&circleRadius, "radius", 1, "circle radius")
	onCircleCmd.Flags().Float64Var(&circleNormal[0], "nx", 0, "circle normal x")
	onCircleCmd.Flags().Float64Var(&circleNormal[1], "ny", 0, "circle normal y")
	onCircleCmd.Flags().Float64Var(&circleNormal[2], "nz", 1, "circle normal z")
}

func runAnchor(cmd *cobra.Command, args []string) {
	condition := boundary.Anchor{
		Target: geom.Pt(anchorPoint[0], anchorPoint[1], anchorPoint[2]),
		Index:  anchorIndex,
		LockX:  anchorLockX,
		LockY:  anchorLockY,
		LockZ:  anchorLockZ,
	}
	emitCondition(condition)
}

func runOnCircle(cmd *cobra.Command, args []string) {
	condition, err := boundary.NewOnCircle(
		geom.Pt(circlePoint[0], circlePoint[1], circlePoint[2]),
		circleIndex,
		geom.Pt(circleCenter[0], circleCenter[1], circleCenter[2]),
		circleRadius,
		geom.Pt(circleNormal[0], circleNormal[1], circleNormal[2]),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	emitCondition(condition)
}

func emitCondition(c boundary.Condition) {
	data, err := boundary.Encode(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
