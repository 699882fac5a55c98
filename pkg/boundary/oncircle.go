package boundary

import (
	"fmt"
	"math"

	"github.com/minsurf/minsurf/pkg/geom"
)

const (
	// correctionBand is the largest radial drift the on-circle
	// projection corrects. Points further from the circle pass
	// through with only the plane flattening applied: the projection
	// is a local per-step correction, not a hard re-projection from
	// arbitrary distance.
	correctionBand = 0.01

	// minPlanarRadius is the planar radius below which the radial
	// correction is skipped to avoid amplifying a near-degenerate
	// direction.
	minPlanarRadius = 0.01
)

// OnCircle keeps a vertex on a circle embedded in 3D space. The
// constraint works in the circle's local coordinate frame: the local
// Z coordinate is flattened onto the circle plane, and small radial
// drift is rescaled back to the target radius.
type OnCircle struct {
	// Position is the vertex position the frame was derived from.
	Position geom.Point
	Index    int

	Center geom.Point
	Radius float64
	Normal geom.Point

	// frame is derived from the public fields at construction. It is
	// never serialized and must be rebuilt on deserialization.
	frame geom.Frame
}

// NewOnCircle builds an on-circle condition for the vertex at the
// given index and initial position, constrained to the circle defined
// by center, radius and unit normal. It fails when the circle frame
// is degenerate: non-positive radius, zero-length normal, or a
// position that provides no radial direction.
func NewOnCircle(position geom.Point, index int, center geom.Point, radius float64, normal geom.Point) (*OnCircle, error) {
	frame, err := geom.NewCircleFrame(center, radius, normal, position)
	if err != nil {
		return nil, fmt.Errorf("boundary: on-circle condition for vertex %d: %w", index, err)
	}
	return &OnCircle{
		Position: position,
		Index:    index,
		Center:   center,
		Radius:   radius,
		Normal:   normal,
		frame:    frame,
	}, nil
}

// Enforce maps the candidate into the circle's local frame, flattens
// it onto the circle plane, and rescales the planar radius to the
// target radius when the drift is within the correction band.
func (c *OnCircle) Enforce(p geom.Point) geom.Point {
	local := c.frame.ToLocal(p)
	local.Z = 0

	planar := math.Hypot(local.X, local.Y)
	if math.Abs(planar-c.Radius) < correctionBand && planar > minPlanarRadius {
		scale := c.Radius / planar
		local.X *= scale
		local.Y *= scale
	}

	return c.frame.ToGlobal(local)
}

// FullyConstrained always reports false: the vertex still slides
// along the circle.
func (c *OnCircle) FullyConstrained() bool { return false }

// VertexIndex returns the index of the constrained vertex.
func (c *OnCircle) VertexIndex() int { return c.Index }

func (*OnCircle) condition() {}
