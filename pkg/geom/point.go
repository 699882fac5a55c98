package geom

import "gonum.org/v1/gonum/spatial/r3"

// Point is a position in 3D space. It aliases r3.Vec so the gonum
// spatial operations apply directly.
type Point = r3.Vec

// Pt returns the point (x, y, z).
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Distance returns the Euclidean distance between a and b.
// NaN coordinates are the caller's responsibility.
func Distance(a, b Point) float64 {
	return r3.Norm(r3.Sub(a, b))
}
