package geom

import "sort"

// Face is an ordered triple of vertex indices.
type Face [3]int

// NeighborPair holds two consecutive one-ring neighbors (nᵢ, nᵢ₊₁) of
// some vertex v, so that {v, nᵢ, nᵢ₊₁} is one triangle of v's fan.
type NeighborPair [2]int

// Connectivity maps a vertex index to its one-ring neighbor pairs.
// Pairs are cyclically ordered around the vertex; a boundary vertex's
// ring is an open chain rather than a cycle.
type Connectivity map[int][]NeighborPair

// MeshArea returns the sum of the cross-product areas of all faces.
func MeshArea(vertices []Point, faces []Face) float64 {
	total := 0.0
	for _, f := range faces {
		total += Triangle{vertices[f[0]], vertices[f[1]], vertices[f[2]]}.Area()
	}
	return total
}

// OneRingTriangles returns the index triples (index, nᵢ, nᵢ₊₁) of the
// triangle fan around the given vertex. A vertex absent from the
// connectivity yields an empty slice.
func OneRingTriangles(index int, conn Connectivity) []Face {
	pairs := conn[index]
	tris := make([]Face, 0, len(pairs))
	for _, p := range pairs {
		tris = append(tris, Face{index, p[0], p[1]})
	}
	return tris
}

// BoundaryVertices returns, in ascending order, the indices of
// vertices incident to an open-boundary edge, i.e. an edge referenced
// by exactly one face.
func BoundaryVertices(faces []Face) []int {
	type edge struct{ lo, hi int }
	counts := make(map[edge]int, 3*len(faces))
	for _, f := range faces {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			counts[edge{a, b}]++
		}
	}

	seen := make(map[int]bool)
	for e, n := range counts {
		if n == 1 {
			seen[e.lo] = true
			seen[e.hi] = true
		}
	}

	indices := make([]int, 0, len(seen))
	for i := range seen {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}
