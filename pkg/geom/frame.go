package geom

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrDegenerateFrame is returned when a circle frame cannot be built
// because a basis vector would have zero length.
var ErrDegenerateFrame = errors.New("geom: degenerate circle frame")

// frameEpsilon guards the normalize-by-zero cases during frame
// construction.
const frameEpsilon = 1e-12

// Mat4 is a 4x4 affine transform in homogeneous coordinates,
// row-major. Direction basis vectors occupy the first three columns,
// the translation the fourth.
type Mat4 [16]float64

// Mul returns the matrix product m*b.
func (m Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * b[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// MulPosition applies the transform to a position (homogeneous w = 1).
func (m Mat4) MulPosition(p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		Y: m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		Z: m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}

// Frame is a pair of transforms between the ambient coordinate system
// and a coordinate system local to a geometric feature.
type Frame struct {
	LocalToGlobal Mat4
	GlobalToLocal Mat4
}

// ToLocal maps a global position into the frame's local coordinates.
func (f Frame) ToLocal(p Point) Point {
	return f.GlobalToLocal.MulPosition(p)
}

// ToGlobal maps a local position back into global coordinates.
func (f Frame) ToGlobal(p Point) Point {
	return f.LocalToGlobal.MulPosition(p)
}

// NewCircleFrame builds the local coordinate frame of a circle with
// the given center, radius and unit normal, oriented so that position
// (a point at or near the circle) lies on the local +X axis. The local
// XY plane is the circle plane; the circle itself is the locus of
// local planar radius == radius at local Z == 0.
//
// The frame basis is {normalize(p−c), normalize(n×(p−c)), normalize(n)}
// with translation c. The second basis vector points at the helper
// point h = c + r·normalize(n×(p−c)) on the circle.
func NewCircleFrame(center Point, radius float64, normal, position Point) (Frame, error) {
	if radius <= 0 {
		return Frame{}, fmt.Errorf("%w: radius %g is not positive", ErrDegenerateFrame, radius)
	}
	if r3.Norm(normal) < frameEpsilon {
		return Frame{}, fmt.Errorf("%w: zero-length normal", ErrDegenerateFrame)
	}

	radial := r3.Sub(position, center)
	if r3.Norm(radial) < frameEpsilon {
		return Frame{}, fmt.Errorf("%w: position coincides with center", ErrDegenerateFrame)
	}

	n := r3.Unit(normal)
	e1 := r3.Unit(radial)

	tangent := r3.Cross(n, e1)
	if r3.Norm(tangent) < frameEpsilon {
		return Frame{}, fmt.Errorf("%w: position direction is parallel to the normal", ErrDegenerateFrame)
	}
	e2 := r3.Unit(tangent)

	ltg := Mat4{
		e1.X, e2.X, n.X, center.X,
		e1.Y, e2.Y, n.Y, center.Y,
		e1.Z, e2.Z, n.Z, center.Z,
		0, 0, 0, 1,
	}

	// The basis is orthonormal, so the inverse is the transposed
	// rotation with translation -Rᵀc.
	gtl := Mat4{
		e1.X, e1.Y, e1.Z, -r3.Dot(e1, center),
		e2.X, e2.Y, e2.Z, -r3.Dot(e2, center),
		n.X, n.Y, n.Z, -r3.Dot(n, center),
		0, 0, 0, 1,
	}

	return Frame{LocalToGlobal: ltg, GlobalToLocal: gtl}, nil
}
