// Package mesh provides the indexed triangle mesh container and the
// collaborator-side glue around the relaxation engine: one-ring
// connectivity construction, open-boundary detection, triangle-soup
// welding, and JSON mesh IO. The engine itself consumes only the
// plain arrays this package produces.
package mesh

import "github.com/minsurf/minsurf/pkg/geom"

// Mesh is an indexed triangle mesh. Faces reference vertices by index;
// all referenced indices must lie within the vertex slice.
type Mesh struct {
	Vertices []geom.Point
	Faces    []geom.Face
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Area returns the total surface area.
func (m *Mesh) Area() float64 {
	return geom.MeshArea(m.Vertices, m.Faces)
}

// BoundaryVertices returns the indices of vertices on an open
// boundary, in ascending order.
func (m *Mesh) BoundaryVertices() []int {
	return geom.BoundaryVertices(m.Faces)
}
