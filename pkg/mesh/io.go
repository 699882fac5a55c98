package mesh

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/minsurf/minsurf/pkg/geom"
)

// meshSchema is the JSON mesh file format.
type meshSchema struct {
	Vertices [][3]float64 `json:"vertices"`
	Faces    [][3]int     `json:"faces"`
}

// Load reads a mesh from its JSON representation and validates that
// every face references an in-bounds vertex.
func Load(r io.Reader) (*Mesh, error) {
	var parsed meshSchema
	if err := json.NewDecoder(r).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("mesh: parse: %w", err)
	}

	m := &Mesh{
		Vertices: make([]geom.Point, 0, len(parsed.Vertices)),
		Faces:    make([]geom.Face, 0, len(parsed.Faces)),
	}
	for _, v := range parsed.Vertices {
		m.Vertices = append(m.Vertices, geom.Pt(v[0], v[1], v[2]))
	}
	for i, f := range parsed.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(m.Vertices) {
				return nil, fmt.Errorf("mesh: face %d references vertex %d, mesh has %d vertices",
					i, idx, len(m.Vertices))
			}
		}
		m.Faces = append(m.Faces, geom.Face{f[0], f[1], f[2]})
	}
	return m, nil
}

// Store writes the mesh as JSON.
func (m *Mesh) Store(w io.Writer) error {
	out := meshSchema{
		Vertices: make([][3]float64, 0, len(m.Vertices)),
		Faces:    make([][3]int, 0, len(m.Faces)),
	}
	for _, v := range m.Vertices {
		out.Vertices = append(out.Vertices, [3]float64{v.X, v.Y, v.Z})
	}
	for _, f := range m.Faces {
		out.Faces = append(out.Faces, [3]int{f[0], f[1], f[2]})
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("mesh: store: %w", err)
	}
	return nil
}
