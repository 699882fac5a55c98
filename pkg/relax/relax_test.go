package relax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minsurf/minsurf/pkg/boundary"
	"github.com/minsurf/minsurf/pkg/geom"
	"github.com/minsurf/minsurf/pkg/mesh"
)

// pyramid is a square fan: four corners in the z=0 plane and one apex
// raised above the center. Only the apex is interior.
func pyramid() *mesh.Mesh {
	return &mesh.Mesh{
		Vertices: []geom.Point{
			geom.Pt(-1, -1, 0),
			geom.Pt(1, -1, 0),
			geom.Pt(1, 1, 0),
			geom.Pt(-1, 1, 0),
			geom.Pt(0, 0, 1),
		},
		Faces: []geom.Face{
			{0, 1, 4},
			{1, 2, 4},
			{2, 3, 4},
			{3, 0, 4},
		},
	}
}

func TestMinimizeAnchoredSquare(t *testing.T) {
	// A flat square with every corner anchored is already minimal:
	// no iteration runs and the vertices come back bit-identical.
	vertices := []geom.Point{
		geom.Pt(0, 0, 0), geom.Pt(1, 0, 0), geom.Pt(1, 1, 0), geom.Pt(0, 1, 0),
	}
	faces := []geom.Face{{0, 1, 2}, {0, 2, 3}}
	conditions := make([]boundary.Condition, len(vertices))
	for i, v := range vertices {
		conditions[i] = boundary.NewAnchor(v, i)
	}

	m := &mesh.Mesh{Vertices: vertices, Faces: faces}
	res := Minimize(vertices, faces, m.Connectivity(), Options{
		Tolerance:  1e-6,
		Conditions: boundary.BuildCollection(conditions),
	})

	assert.Equal(t, vertices, res.Vertices)
	require.Len(t, res.AreaTrace, 1)
	assert.InDelta(t, 1.0, res.AreaTrace[0], 1e-12)
}

func TestMinimizePyramidFlattens(t *testing.T) {
	m := pyramid()
	conn := m.Connectivity()

	// No explicit conditions: the four open-boundary corners are
	// anchored automatically and only the apex moves.
	res := Minimize(m.Vertices, m.Faces, conn, Options{Tolerance: 1e-9})

	require.GreaterOrEqual(t, len(res.AreaTrace), 2)
	for i := 1; i < len(res.AreaTrace); i++ {
		assert.LessOrEqual(t, res.AreaTrace[i], res.AreaTrace[i-1]+1e-12,
			"area trace is non-increasing")
	}

	apex := res.Vertices[4]
	assert.InDelta(t, 0.0, apex.X, 1e-9)
	assert.InDelta(t, 0.0, apex.Y, 1e-9)
	assert.InDelta(t, 0.0, apex.Z, 1e-9, "apex relaxes into the corner plane")
	assert.InDelta(t, 4.0, res.AreaTrace[len(res.AreaTrace)-1], 1e-9)

	// Anchored corners never move.
	for i := 0; i < 4; i++ {
		assert.Equal(t, m.Vertices[i], res.Vertices[i])
	}
}

func TestMinimizeInputArraysUntouched(t *testing.T) {
	m := pyramid()
	before := append([]geom.Point(nil), m.Vertices...)

	Minimize(m.Vertices, m.Faces, m.Connectivity(), Options{Tolerance: 1e-9})

	assert.Equal(t, before, m.Vertices, "caller-owned vertices are only borrowed")
}

func TestMinimizePartialAnchor(t *testing.T) {
	m := pyramid()

	// The apex keeps its height but relaxes in the plane.
	conditions := make([]boundary.Condition, 0, 5)
	for i := 0; i < 4; i++ {
		conditions = append(conditions, boundary.NewAnchor(m.Vertices[i], i))
	}
	conditions = append(conditions, boundary.Anchor{Target: geom.Pt(0, 0, 1), Index: 4, LockZ: true})

	res := Minimize(m.Vertices, m.Faces, m.Connectivity(), Options{
		Tolerance:  1e-9,
		Conditions: boundary.BuildCollection(conditions),
	})

	apex := res.Vertices[4]
	assert.InDelta(t, 0.0, apex.X, 1e-9)
	assert.InDelta(t, 0.0, apex.Y, 1e-9)
	assert.InDelta(t, 1.0, apex.Z, 1e-12, "locked axis holds its target")
}

func TestMinimizeIterationCap(t *testing.T) {
	m := pyramid()

	// Tolerance zero disables the area criterion; the cap is the only
	// bound and reaching it is not an error.
	res := Minimize(m.Vertices, m.Faces, m.Connectivity(), Options{
		Tolerance:     0,
		MaxIterations: 3,
	})

	assert.Len(t, res.AreaTrace, 4, "one area per iteration plus the initial area")
}

func TestMinimizeWorkersMatchSequential(t *testing.T) {
	m := pyramid()
	conn := m.Connectivity()

	sequential := Minimize(m.Vertices, m.Faces, conn, Options{Tolerance: 1e-9})
	parallel := Minimize(m.Vertices, m.Faces, conn, Options{Tolerance: 1e-9, Workers: 4})

	assert.Equal(t, sequential.Vertices, parallel.Vertices)
	assert.Equal(t, sequential.AreaTrace, parallel.AreaTrace)
}

func TestMinimizeDegenerateMesh(t *testing.T) {
	// An isolated vertex with no connectivity entry and a zero-area
	// face must not panic; untouched vertices keep their position.
	vertices := []geom.Point{
		geom.Pt(0, 0, 0), geom.Pt(1, 0, 0), geom.Pt(2, 0, 0),
		geom.Pt(5, 5, 5), // disconnected
	}
	faces := []geom.Face{{0, 1, 2}} // collinear, zero area
	conn := geom.Connectivity{
		0: {{1, 2}},
		1: {{2, 0}},
		2: {{0, 1}},
	}

	res := Minimize(vertices, faces, conn, Options{
		Tolerance:     1e-9,
		MaxIterations: 5,
		Conditions:    boundary.Collection{},
	})

	assert.Equal(t, geom.Pt(5, 5, 5), res.Vertices[3])
	for _, a := range res.AreaTrace {
		assert.InDelta(t, 0.0, a, 1e-12)
	}
}

func TestMinimizeOutOfRangeCondition(t *testing.T) {
	m := pyramid()

	// A condition for a vertex the mesh lacks is inert.
	conditions := []boundary.Condition{
		boundary.NewAnchor(geom.Pt(0, 0, 0), 99),
	}
	for i := 0; i < 4; i++ {
		conditions = append(conditions, boundary.NewAnchor(m.Vertices[i], i))
	}

	res := Minimize(m.Vertices, m.Faces, m.Connectivity(), Options{
		Tolerance:  1e-9,
		Conditions: boundary.BuildCollection(conditions),
	})

	assert.Len(t, res.Vertices, 5)
	assert.InDelta(t, 0.0, res.Vertices[4].Z, 1e-9)
}
