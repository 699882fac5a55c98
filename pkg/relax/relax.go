package relax

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/minsurf/minsurf/pkg/boundary"
	"github.com/minsurf/minsurf/pkg/geom"
)

// Options configures a minimization run.
type Options struct {
	// Tolerance stops iteration once the absolute area change between
	// two consecutive iterations falls below it. A non-positive
	// tolerance disables the area criterion, leaving MaxIterations as
	// the only bound.
	Tolerance float64

	// MaxIterations caps the number of relaxation iterations. Zero
	// means unbounded.
	MaxIterations int

	// Conditions holds the per-vertex boundary conditions. When nil,
	// every open-boundary vertex is anchored at its current position.
	Conditions boundary.Collection

	// Workers is the number of goroutines computing vertex updates
	// within one iteration. Each worker reads only the previous
	// iteration's snapshot and writes a disjoint slice of the output
	// buffer. Values below 2 select the sequential path.
	Workers int
}

// Result is the outcome of a minimization run.
type Result struct {
	// Vertices holds the optimized positions, same length and order
	// as the input vertex array.
	Vertices []geom.Point

	// AreaTrace records the total mesh area once per iteration,
	// starting with the initial area; its length is the number of
	// iterations executed plus one. Non-convergence is visible here,
	// never reported as an error.
	AreaTrace []float64
}

// Minimize drives the total mesh area toward a local minimum while
// honoring the boundary conditions. The input arrays are borrowed and
// never mutated; the result buffers are freshly allocated.
//
// Degenerate input never fails: vertices with no usable one-ring
// simply keep their previous position.
func Minimize(vertices []geom.Point, faces []geom.Face, conn geom.Connectivity, opts Options) Result {
	conditions := opts.Conditions
	if conditions == nil {
		conditions = anchorOpenBoundary(vertices, faces)
	}

	current := append([]geom.Point(nil), vertices...)
	trace := []float64{geom.MeshArea(current, faces)}

	if movableCount(current, conditions) == 0 {
		return Result{Vertices: current, AreaTrace: trace}
	}

	next := make([]geom.Point, len(current))
	for iter := 0; opts.MaxIterations == 0 || iter < opts.MaxIterations; iter++ {
		relaxOnce(current, next, conn, conditions, opts.Workers)
		current, next = next, current

		area := geom.MeshArea(current, faces)
		trace = append(trace, area)
		if math.Abs(trace[len(trace)-2]-area) < opts.Tolerance {
			break
		}
	}

	return Result{Vertices: current, AreaTrace: trace}
}

// movableCount returns the number of vertices relaxation may move.
func movableCount(vertices []geom.Point, conditions boundary.Collection) int {
	count := 0
	for i := range vertices {
		if !conditions.FullyConstrained(i) {
			count++
		}
	}
	return count
}

// anchorOpenBoundary pins every open-boundary vertex at its current
// position with a fully locked anchor.
func anchorOpenBoundary(vertices []geom.Point, faces []geom.Face) boundary.Collection {
	indices := geom.BoundaryVertices(faces)
	conditions := make([]boundary.Condition, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(vertices) {
			continue
		}
		conditions = append(conditions, boundary.NewAnchor(vertices[i], i))
	}
	return boundary.BuildCollection(conditions)
}

// relaxOnce computes one full pass of vertex updates, reading current
// and writing next.
func relaxOnce(current, next []geom.Point, conn geom.Connectivity, conditions boundary.Collection, workers int) {
	if workers < 2 || len(current) < workers {
		relaxRange(0, len(current), current, next, conn, conditions)
		return
	}

	var wg sync.WaitGroup
	chunk := (len(current) + workers - 1) / workers
	for lo := 0; lo < len(current); lo += chunk {
		hi := min(lo+chunk, len(current))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			relaxRange(lo, hi, current, next, conn, conditions)
		}(lo, hi)
	}
	wg.Wait()
}

func relaxRange(lo, hi int, current, next []geom.Point, conn geom.Connectivity, conditions boundary.Collection) {
	for i := lo; i < hi; i++ {
		if conditions.FullyConstrained(i) {
			next[i] = current[i]
			continue
		}
		candidate, ok := umbrella(i, current, conn)
		if !ok {
			next[i] = current[i]
			continue
		}
		next[i] = conditions.Enforce(i, candidate)
	}
}

// umbrella returns the centroid of the one-ring neighbors of the given
// vertex, the discrete umbrella-operator update. ok is false when the
// one-ring provides no usable neighbors.
func umbrella(index int, vertices []geom.Point, conn geom.Connectivity) (geom.Point, bool) {
	tris := geom.OneRingTriangles(index, conn)
	if len(tris) == 0 {
		return geom.Point{}, false
	}

	var sum geom.Point
	count := 0
	seen := make(map[int]struct{}, 2*len(tris))
	for _, tri := range tris {
		for _, n := range [2]int{tri[1], tri[2]} {
			if n < 0 || n >= len(vertices) {
				continue // malformed connectivity entries are inert
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			sum = r3.Add(sum, vertices[n])
			count++
		}
	}
	if count == 0 {
		return geom.Point{}, false
	}
	return r3.Scale(1/float64(count), sum), true
}
