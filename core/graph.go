// Package core - immutable graph construction and read-only accessors.
package core

// Graph is an immutable undirected weighted graph over nodes 0..n-1.
//
// All fields are private and never mutated after NewGraph returns, so a
// *Graph is safe to share across goroutines without locks. Construction
// is the single point of validation: every accessor may assume a
// well-formed graph.
type Graph struct {
	n      int            // number of nodes
	edges  []Edge         // edge list indexed by EdgeID (defensive copy)
	prizes []float64      // per-node prizes; nil means all-zero
	offs   []int          // CSR offsets: incidence of node v is inc[offs[v]:offs[v+1]]
	inc    []IncidentEdge // flattened incidence lists
}

// NewGraph validates nodes/edges/prizes and builds the CSR adjacency.
//
// Contracts:
//   - n ≥ 0; every edge endpoint in [0..n-1]; no self-loops;
//     every cost ≥ 0; prizes (if given) of length n with entries ≥ 0.
//
// Errors: ErrNodeOutOfRange, ErrSelfLoop, ErrNegativeCost,
// ErrPrizeMismatch, ErrNegativePrize — all wrapping ErrInvalidGraph.
//
// Complexity: O(V + E) time and space.
func NewGraph(n int, edges []Edge, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, ErrNodeOutOfRange
	}

	// Apply functional options over defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Stage 1: validate edges before any allocation proportional to E.
	var e Edge
	for _, e = range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, ErrNodeOutOfRange
		}
		if e.U == e.V {
			return nil, ErrSelfLoop
		}
		if e.Cost < 0 {
			return nil, ErrNegativeCost
		}
	}

	// Stage 2: validate prizes.
	var prizes []float64
	if cfg.Prizes != nil {
		if len(cfg.Prizes) != n {
			return nil, ErrPrizeMismatch
		}
		for _, p := range cfg.Prizes {
			if p < 0 {
				return nil, ErrNegativePrize
			}
		}
		prizes = make([]float64, n)
		copy(prizes, cfg.Prizes)
	}

	// Stage 3: defensive copy of the edge list (EdgeID = slice index).
	es := make([]Edge, len(edges))
	copy(es, edges)

	// Stage 4: CSR adjacency. First pass counts degrees, second fills.
	offs := make([]int, n+1)
	for _, e = range es {
		offs[e.U+1]++
		offs[e.V+1]++
	}
	var v int
	for v = 0; v < n; v++ {
		offs[v+1] += offs[v]
	}
	inc := make([]IncidentEdge, offs[n])
	// cursor tracks the next free slot per node during the fill pass.
	cursor := make([]int, n)
	copy(cursor, offs[:n])

	var id int
	for id, e = range es {
		inc[cursor[e.U]] = IncidentEdge{ID: EdgeID(id), To: e.V, Cost: e.Cost}
		cursor[e.U]++
		inc[cursor[e.V]] = IncidentEdge{ID: EdgeID(id), To: e.U, Cost: e.Cost}
		cursor[e.V]++
	}

	return &Graph{n: n, edges: es, prizes: prizes, offs: offs, inc: inc}, nil
}

// NodeCount returns the number of nodes n.
//
// Complexity: O(1).
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns the number of edges.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// EdgesOf returns the incidence list of node v as a read-only sub-slice of
// the shared CSR buffer. Callers must not modify the returned slice.
//
// Complexity: O(1) to obtain; O(degree(v)) to iterate.
func (g *Graph) EdgesOf(v int) []IncidentEdge {
	return g.inc[g.offs[v]:g.offs[v+1]]
}

// Degree returns the number of edges incident to node v.
//
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	return g.offs[v+1] - g.offs[v]
}

// Cost returns the cost of edge id.
//
// Complexity: O(1).
func (g *Graph) Cost(id EdgeID) float64 {
	return g.edges[id].Cost
}

// Endpoints returns both endpoints of edge id.
//
// Complexity: O(1).
func (g *Graph) Endpoints(id EdgeID) (int, int) {
	e := g.edges[id]
	return e.U, e.V
}

// Prize returns the prize of node v (zero when no prizes were attached).
//
// Complexity: O(1).
func (g *Graph) Prize(v int) float64 {
	if g.prizes == nil {
		return 0
	}
	return g.prizes[v]
}
