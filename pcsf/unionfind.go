// Package pcsf - arena-based disjoint-set over node indices.
//
// Tree records are addressed by integer handles (the set roots), so the
// growth loop never builds cyclic object graphs: all per-tree state lives
// in flat arrays indexed by root.
package pcsf

// dsu is a union-find structure with path compression and union by rank.
// Roots double as tree handles for the growth arena.
type dsu struct {
	parent []int32 // parent[v] == v marks a root
	rank   []int8  // rank bound for union by rank
}

// newDSU returns a dsu with every node in its own singleton set.
//
// Complexity: O(n).
func newDSU(n int) *dsu {
	d := &dsu{
		parent: make([]int32, n),
		rank:   make([]int8, n),
	}
	var v int
	for v = 0; v < n; v++ {
		d.parent[v] = int32(v)
	}

	return d
}

// find returns the root of v's set, compressing paths as it walks.
// Iterative on purpose: no recursion depth to worry about.
//
// Complexity: amortized near O(1) (inverse Ackermann).
func (d *dsu) find(v int) int {
	var r = int32(v)
	for d.parent[r] != r {
		// Path halving: point r at its grandparent, then step.
		d.parent[r] = d.parent[d.parent[r]]
		r = d.parent[r]
	}

	return int(r)
}

// union merges the sets of a and b and returns the surviving root.
// Callers must pass distinct roots.
//
// Complexity: amortized near O(1).
func (d *dsu) union(a, b int) int {
	var (
		ra = int32(a)
		rb = int32(b)
	)
	// Attach the lower-rank root under the higher-rank one.
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}

	return int(ra)
}
