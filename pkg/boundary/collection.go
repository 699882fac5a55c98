package boundary

import "github.com/minsurf/minsurf/pkg/geom"

// Collection maps a vertex index to the ordered conditions applied to
// that vertex. Vertices absent from the collection are unconstrained.
// Indices are never range-checked: a condition referencing a vertex
// the mesh lacks is inert.
type Collection map[int][]Condition

// BuildCollection groups a flat condition list by vertex index,
// preserving the relative order of conditions sharing an index.
func BuildCollection(conditions []Condition) Collection {
	result := make(Collection, len(conditions))
	for _, c := range conditions {
		result[c.VertexIndex()] = append(result[c.VertexIndex()], c)
	}
	return result
}

// Enforce applies every condition attached to index to p, in order,
// and returns the result. Unconstrained indices return p unchanged.
func (cl Collection) Enforce(index int, p geom.Point) geom.Point {
	for _, c := range cl[index] {
		p = c.Enforce(p)
	}
	return p
}

// FullyConstrained reports whether any condition attached to index
// pins the vertex completely.
func (cl Collection) FullyConstrained(index int) bool {
	for _, c := range cl[index] {
		if c.FullyConstrained() {
			return true
		}
	}
	return false
}
