// Package pcsf - primal-dual moat growth.
package pcsf

import (
	"math"
	"sort"

	"github.com/Derek-Fox/graph-scsg-iht/core"
)

// eventEps absorbs floating-point noise in tightness/slack comparisons.
// Independent of any caller tolerance: it only guards event ordering.
const eventEps = 1e-12

// event kinds produced by the growth loop.
const (
	eventNone    = iota // no active tree remains; growth is over
	eventExhaust        // a tree's moat reached its prize
	eventTight          // an inter-tree edge became tight
)

// Grow runs the primal-dual growth and pruning described in the package
// documentation and returns the resulting forest.
//
// Contracts:
//   - g non-nil; len(prizes) == g.NodeCount(); all prizes finite.
//   - opts per GrowOptions.validate.
//
// Errors: ErrNilGraph, ErrPrizeMismatch, ErrNonFinitePrize,
// ErrBadMaxTrees, ErrBadBudget, ErrBadScale.
//
// Complexity: O(V·(V+E)) time, O(V+E) space.
func Grow(g *core.Graph, prizes []float64, opts GrowOptions) (*Forest, error) {
	// Stage 1: input validation.
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(prizes) != g.NodeCount() {
		return nil, ErrPrizeMismatch
	}
	var p float64
	for _, p = range prizes {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, ErrNonFinitePrize
		}
	}

	// Stage 2: synchronous moat growth until every tree is inactive.
	gr := newGrower(g, prizes, opts)
	gr.run()

	// Stage 3: harvest, prune and rank the surviving trees.
	return gr.harvest(), nil
}

// grower carries all mutable growth state. Per-tree records live in flat
// arrays indexed by union-find roots (the arena handles); nothing here
// survives the Grow call that created it.
type grower struct {
	g      *core.Graph
	prizes []float64
	opts   GrowOptions

	sets    *dsu          // node -> tree handle
	pot     []float64     // per-node accumulated dual potential
	moat    []float64     // per-root combined moat (valid at roots only)
	prize   []float64     // per-root combined prize (valid at roots only)
	active  []bool        // per-root activity flag (valid at roots only)
	members [][]int       // per-root member list (valid at roots only)
	bought  []core.EdgeID // purchased edges, in purchase order
	spent   float64       // total original cost of purchased edges
}

// newGrower initializes singleton trees: a node is active iff its prize
// is strictly positive.
//
// Complexity: O(V).
func newGrower(g *core.Graph, prizes []float64, opts GrowOptions) *grower {
	n := g.NodeCount()
	gr := &grower{
		g:       g,
		prizes:  prizes,
		opts:    opts,
		sets:    newDSU(n),
		pot:     make([]float64, n),
		moat:    make([]float64, n),
		prize:   make([]float64, n),
		active:  make([]bool, n),
		members: make([][]int, n),
	}
	var v int
	for v = 0; v < n; v++ {
		gr.prize[v] = prizes[v]
		gr.active[v] = prizes[v] > 0
		gr.members[v] = []int{v}
	}

	return gr
}

// run drives the event loop. Each iteration advances every active moat by
// the globally smallest event time and processes exactly one event, so
// the loop performs at most O(V) merges plus O(V) deactivations.
func (gr *grower) run() {
	var (
		kind int     // event discriminator
		arg  int     // root (eventExhaust) or edge index (eventTight)
		dt   float64 // uniform growth time to the event
	)
	for {
		kind, arg, dt = gr.nextEvent()
		if kind == eventNone {
			return
		}
		gr.advance(dt)
		switch kind {
		case eventExhaust:
			// Moat met prize: no further beneficial growth for this tree.
			gr.active[arg] = false
		case eventTight:
			gr.mergeOrDeactivate(core.EdgeID(arg))
		}
	}
}

// nextEvent scans all roots and edges for the earliest pending event.
//
// Tie policy (determinism): exhaustion events are scanned first in root
// order, then tight-edge events in edge order; a strictly smaller time is
// required to displace the current candidate.
//
// Complexity: O(V + E).
func (gr *grower) nextEvent() (int, int, float64) {
	var (
		kind   = eventNone
		arg    int
		bestDt = math.Inf(1)
	)

	// Exhaustion events: remaining prize slack of each active root.
	var (
		v     int
		slack float64
	)
	for v = 0; v < len(gr.active); v++ {
		if gr.sets.find(v) != v || !gr.active[v] {
			continue
		}
		slack = gr.prize[v] - gr.moat[v]
		if slack < 0 {
			slack = 0
		}
		if slack < bestDt {
			kind, arg, bestDt = eventExhaust, v, slack
		}
	}

	// Tight-edge events: remaining scaled cost over the growth rate.
	var (
		id     int
		u, w   int
		ru, rw int
		rate   float64
		rem    float64
		dt     float64
	)
	for id = 0; id < gr.g.EdgeCount(); id++ {
		u, w = gr.g.Endpoints(core.EdgeID(id))
		ru = gr.sets.find(u)
		rw = gr.sets.find(w)
		if ru == rw {
			continue // internal edge; never an event
		}
		rate = 0
		if gr.active[ru] {
			rate++
		}
		if gr.active[rw] {
			rate++
		}
		if rate == 0 {
			continue // both sides frozen; edge can no longer tighten
		}
		rem = gr.opts.CostScale*gr.g.Cost(core.EdgeID(id)) - gr.pot[u] - gr.pot[w]
		if rem < 0 {
			rem = 0
		}
		dt = rem / rate
		if dt < bestDt {
			kind, arg, bestDt = eventTight, id, dt
		}
	}

	return kind, arg, bestDt
}

// advance grows every active tree's moat by dt and credits dt of dual
// potential to each of its member nodes.
//
// Complexity: O(V).
func (gr *grower) advance(dt float64) {
	if dt <= 0 {
		return
	}
	var (
		v int
		m int
	)
	for v = 0; v < len(gr.active); v++ {
		if gr.sets.find(v) != v || !gr.active[v] {
			continue
		}
		gr.moat[v] += dt
		for _, m = range gr.members[v] {
			gr.pot[m] += dt
		}
	}
}

// mergeOrDeactivate handles a tight edge: purchase it and merge the two
// trees when the global budget allows, otherwise deactivate the active
// endpoint trees (growth rule 3).
//
// Complexity: amortized O(min tree size) for the member splice.
func (gr *grower) mergeOrDeactivate(id core.EdgeID) {
	u, w := gr.g.Endpoints(id)
	var (
		ru = gr.sets.find(u)
		rw = gr.sets.find(w)
	)

	// Budget check uses original costs; CostScale never affects feasibility.
	if gr.spent+gr.g.Cost(id) > gr.opts.CostBudget+eventEps {
		gr.active[ru] = false
		gr.active[rw] = false

		return
	}

	// Merge: union the sets, then fold the smaller member list into the
	// larger so total splicing stays O(V log V) over the whole run.
	var (
		prize = gr.prize[ru] + gr.prize[rw]
		moat  = gr.moat[ru] + gr.moat[rw]
	)
	if len(gr.members[ru]) < len(gr.members[rw]) {
		ru, rw = rw, ru
	}
	root := gr.sets.union(ru, rw)
	gr.members[ru] = append(gr.members[ru], gr.members[rw]...)
	gr.members[rw] = nil
	if root != ru {
		gr.members[root] = gr.members[ru]
		gr.members[ru] = nil
	}
	gr.prize[root] = prize
	gr.moat[root] = moat
	// The merged tree keeps growing only while prize still exceeds moat.
	gr.active[root] = prize-moat > eventEps

	gr.bought = append(gr.bought, id)
	gr.spent += gr.g.Cost(id)
}

// harvest groups nodes and purchased edges by final root, prunes each
// candidate tree, and keeps the MaxTrees best by net value.
//
// Complexity: O(V log V + E).
func (gr *grower) harvest() *Forest {
	n := gr.g.NodeCount()

	// Bucket nodes by root.
	nodesOf := make(map[int][]int, 8)
	var v, r int
	for v = 0; v < n; v++ {
		r = gr.sets.find(v)
		nodesOf[r] = append(nodesOf[r], v)
	}

	// Bucket purchased edges by root (both endpoints share one by now).
	edgesOf := make(map[int][]core.EdgeID, 8)
	var (
		id core.EdgeID
		u  int
	)
	for _, id = range gr.bought {
		u, _ = gr.g.Endpoints(id)
		r = gr.sets.find(u)
		edgesOf[r] = append(edgesOf[r], id)
	}

	// Build, prune and score candidate trees.
	type scored struct {
		tree Tree
		net  float64
	}
	candidates := make([]scored, 0, len(nodesOf))
	var (
		tree Tree
		ok   bool
	)
	for r = 0; r < n; r++ {
		nodes, present := nodesOf[r]
		if !present {
			continue
		}
		// A candidate must enclose some positive prize; dormant leftovers
		// (singletons with prize ≤ 0) are not part of the forest.
		tree, ok = gr.pruneTree(nodes, edgesOf[r])
		if !ok {
			continue
		}
		candidates = append(candidates, scored{
			tree: tree,
			net:  tree.Prize - gr.opts.CostScale*tree.Cost,
		})
	}

	// Rank by net value descending; ties by smallest member node for
	// reproducibility. Keep at most MaxTrees.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].net != candidates[j].net {
			return candidates[i].net > candidates[j].net
		}

		return candidates[i].tree.Nodes[0] < candidates[j].tree.Nodes[0]
	})
	if len(candidates) > gr.opts.MaxTrees {
		candidates = candidates[:gr.opts.MaxTrees]
	}

	// Present trees in ascending order of their smallest node.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].tree.Nodes[0] < candidates[j].tree.Nodes[0]
	})
	trees := make([]Tree, len(candidates))
	for i := range candidates {
		trees[i] = candidates[i].tree
	}

	return &Forest{trees: trees}
}
