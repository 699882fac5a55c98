package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is an ordered triple of corner points. Orientation
// determines the normal direction for the cross-product area form.
type Triangle [3]Point

// Tri returns the triangle with corners a, b, c.
func Tri(a, b, c Point) Triangle {
	return Triangle{a, b, c}
}

// Area returns the triangle's area computed from the cross product of
// two edges. This is the operational form; it is stable for
// near-degenerate triangles.
func (t Triangle) Area() float64 {
	jk := r3.Sub(t[2], t[1])
	ji := r3.Sub(t[2], t[0])
	return 0.5 * r3.Norm(r3.Cross(jk, ji))
}

// AreaHeron returns the triangle's area via Heron's formula from the
// three side lengths. Less stable than Area for thin triangles;
// retained for verification.
func (t Triangle) AreaHeron() float64 {
	ab := Distance(t[0], t[1])
	bc := Distance(t[1], t[2])
	ca := Distance(t[2], t[0])

	s := (ab + bc + ca) / 2.0

	return math.Sqrt(s * (s - ab) * (s - bc) * (s - ca))
}
