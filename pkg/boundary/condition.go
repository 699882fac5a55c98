package boundary

import "github.com/minsurf/minsurf/pkg/geom"

// Condition constrains how a single mesh vertex may move during
// relaxation. Implementations are immutable once constructed; the
// relaxation engine only calls Enforce and FullyConstrained.
//
// Enforce is idempotent for every implementation: re-enforcing an
// already-constrained point is a no-op.
type Condition interface {
	// Enforce projects a candidate vertex position back onto the
	// condition's constraint manifold and returns the result.
	Enforce(p geom.Point) geom.Point

	// FullyConstrained reports whether the vertex cannot move at all.
	// Fully constrained vertices are excluded from relaxation updates.
	FullyConstrained() bool

	// VertexIndex returns the index of the constrained vertex.
	VertexIndex() int

	condition() // marker method restricting implementations to this package
}

// Compile-time variant checks.
var (
	_ Condition = Free{}
	_ Condition = Anchor{}
	_ Condition = (*OnCircle)(nil)
)

// Free is the implicit default condition: the vertex moves without
// restriction.
type Free struct {
	Index int
}

// Enforce returns the candidate unchanged.
func (Free) Enforce(p geom.Point) geom.Point { return p }

// FullyConstrained always reports false.
func (Free) FullyConstrained() bool { return false }

// VertexIndex returns the index of the vertex.
func (f Free) VertexIndex() int { return f.Index }

func (Free) condition() {}
