package boundary

import "github.com/minsurf/minsurf/pkg/geom"

// Anchor pins selected coordinate axes of a vertex to a target
// position. Locked axes of a candidate point are overwritten with the
// target's corresponding axes; unlocked axes pass through unchanged.
type Anchor struct {
	Target geom.Point
	Index  int

	LockX bool
	LockY bool
	LockZ bool
}

// NewAnchor returns an anchor locking all three axes of the vertex at
// the target position.
func NewAnchor(target geom.Point, index int) Anchor {
	return Anchor{Target: target, Index: index, LockX: true, LockY: true, LockZ: true}
}

// Enforce overwrites the locked axes of p with the target's axes.
func (a Anchor) Enforce(p geom.Point) geom.Point {
	if a.LockX {
		p.X = a.Target.X
	}
	if a.LockY {
		p.Y = a.Target.Y
	}
	if a.LockZ {
		p.Z = a.Target.Z
	}
	return p
}

// FullyConstrained reports whether all three axes are locked.
func (a Anchor) FullyConstrained() bool {
	return a.LockX && a.LockY && a.LockZ
}

// VertexIndex returns the index of the anchored vertex.
func (a Anchor) VertexIndex() int { return a.Index }

func (Anchor) condition() {}
