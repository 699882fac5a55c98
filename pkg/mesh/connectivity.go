package mesh

import "github.com/minsurf/minsurf/pkg/geom"

// Connectivity computes the ordered one-ring neighbor pairs of every
// vertex from the face list. Faces are assumed consistently oriented;
// each face (v, a, b) contributes the directed ring step a→b to
// vertex v. Interior vertices get a cyclic pair sequence, boundary
// vertices an open chain. Malformed faces (out-of-range indices,
// duplicated ring steps) are skipped rather than reported: the
// relaxation engine treats missing connectivity as "do not move".
func (m *Mesh) Connectivity() geom.Connectivity {
	n := len(m.Vertices)
	succ := make([]map[int]int, n)

	for _, f := range m.Faces {
		for k := 0; k < 3; k++ {
			v, a, b := f[k], f[(k+1)%3], f[(k+2)%3]
			if v < 0 || v >= n || a < 0 || a >= n || b < 0 || b >= n {
				continue
			}
			if succ[v] == nil {
				succ[v] = make(map[int]int)
			}
			if _, dup := succ[v][a]; !dup {
				succ[v][a] = b
			}
		}
	}

	conn := make(geom.Connectivity, n)
	for v, next := range succ {
		if len(next) == 0 {
			continue
		}
		conn[v] = chainRing(next)
	}
	return conn
}

// chainRing orders the directed ring steps of one vertex into
// consecutive neighbor pairs. An open ring starts at the neighbor
// that is never a step target; a closed ring starts at the smallest
// neighbor index so the result is deterministic.
func chainRing(next map[int]int) []geom.NeighborPair {
	targeted := make(map[int]bool, len(next))
	for _, to := range next {
		targeted[to] = true
	}

	start := -1
	for from := range next {
		if !targeted[from] && (start == -1 || from < start) {
			start = from
		}
	}
	closed := start == -1
	if closed {
		for from := range next {
			if start == -1 || from < start {
				start = from
			}
		}
	}

	pairs := make([]geom.NeighborPair, 0, len(next))
	cur := start
	for range next {
		to, ok := next[cur]
		if !ok {
			break
		}
		pairs = append(pairs, geom.NeighborPair{cur, to})
		cur = to
		if closed && cur == start {
			break
		}
	}
	return pairs
}
