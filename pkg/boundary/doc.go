// Package boundary defines the per-vertex boundary conditions applied
// during mesh relaxation: free vertices, axis-locked anchors, and
// on-circle constraints, plus their JSON wire format and the
// collection that groups conditions by vertex index.
package boundary
