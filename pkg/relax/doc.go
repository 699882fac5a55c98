// Package relax implements iterative mesh area minimization by
// projected relaxation: every iteration moves each free vertex toward
// the centroid of its one-ring neighborhood, re-projects it onto its
// boundary conditions, and records the total mesh area until the area
// change falls below tolerance or the iteration cap is reached.
package relax
