package mesh

import (
	"math"

	"github.com/minsurf/minsurf/pkg/geom"
)

// FromTriangles builds an indexed mesh from a flat triangle list,
// merging corners that quantize to the same grid cell of size tol.
// Marching-cubes style tessellators emit disconnected triangle soup;
// welding restores the shared-vertex connectivity the relaxation
// engine needs. Triangles that collapse under welding are dropped.
func FromTriangles(triangles []geom.Triangle, tol float64) *Mesh {
	if tol <= 0 {
		tol = 1e-9
	}

	type cell [3]int64
	quantize := func(p geom.Point) cell {
		return cell{
			int64(math.Round(p.X / tol)),
			int64(math.Round(p.Y / tol)),
			int64(math.Round(p.Z / tol)),
		}
	}

	m := &Mesh{}
	index := make(map[cell]int, 3*len(triangles))

	for _, tri := range triangles {
		var face geom.Face
		for j, corner := range tri {
			key := quantize(corner)
			i, ok := index[key]
			if !ok {
				i = len(m.Vertices)
				index[key] = i
				m.Vertices = append(m.Vertices, corner)
			}
			face[j] = i
		}
		if face[0] == face[1] || face[1] == face[2] || face[2] == face[0] {
			continue
		}
		m.Faces = append(m.Faces, face)
	}
	return m
}
