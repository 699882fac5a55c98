// Package geom provides the geometric primitives for mesh area
// minimization: points, triangles, per-triangle and whole-mesh area,
// one-ring connectivity queries, and the local coordinate frame used
// by circle constraints. All functions are pure and never mutate
// their inputs.
package geom
