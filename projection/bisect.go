// Package projection - cost-multiplier bisection steering forest size.
package projection

import (
	"math"
	"sort"

	"github.com/Derek-Fox/graph-scsg-iht/core"
	"github.com/Derek-Fox/graph-scsg-iht/pcsf"
)

// scaleFloor and scaleCeil bound the cost multiplier; beyond them the
// forest size no longer responds to λ, so searching further is wasted.
const (
	scaleFloor = 1e-9
	scaleCeil  = 1e9
)

// window derives the bisection's acceptable node-count interval
// [low, high] from the budget: low = S, high = ceil(S·(1+γ)) capped at
// n-1 to avoid the degenerate full-graph upper bound.
//
// Complexity: O(1).
func window(b Budget, gamma float64, n int) (int, int) {
	low := b.S
	high := int(math.Ceil(float64(b.S) * (1 + gamma)))
	if high >= n {
		high = n - 1
	}
	if high < low {
		high = low
	}

	return low, high
}

// searchSupport runs pcsf growths under a binary-searched cost
// multiplier, trims every candidate forest onto the budget, and returns
// the support retaining the most prize.
//
// The bisection steers on the raw forest node count: raising λ makes
// edges relatively more expensive, so trees exhaust earlier and the
// forest shrinks. The search stops once a count lands in [low, high],
// but selection among everything grown is by prize retained after
// trimming — the quantity both projections approximate. The ceiling
// multiplier is always probed: its growth purchases nothing and yields
// the best prize singletons, the only candidate that can represent a
// support already spread over several components which every cheaper
// multiplier would glue together.
//
// A nil support means every growth came back empty — the degenerate
// (valid) projection.
//
// Complexity: O(MaxBisect · V·(V+E)).
func searchSupport(g *core.Graph, prizes []float64, b Budget, cfg Options) ([]int, error) {
	low, high := window(b, cfg.Gamma, g.NodeCount())

	var (
		bestSup   []int
		bestPrize = math.Inf(-1)
	)
	consider := func(f *pcsf.Forest) {
		if f.Empty() {
			return
		}
		sup := trimSupport(g, f, b.S, b.G, prizes)
		var retained float64
		for _, v := range sup {
			retained += prizes[v]
		}
		if retained > bestPrize {
			bestSup, bestPrize = sup, retained
		}
	}
	grow := func(lambda float64) (*pcsf.Forest, error) {
		return pcsf.Grow(g, prizes, pcsf.GrowOptions{
			MaxTrees:   b.G,
			CostBudget: b.B,
			CostScale:  lambda,
		})
	}

	// The no-purchase extreme first.
	f, err := grow(scaleCeil)
	if err != nil {
		return nil, err
	}
	consider(f)

	// First bisection probe at unit scale; many calls settle here.
	if f, err = grow(1); err != nil {
		return nil, err
	}
	consider(f)
	count := f.NodeCount()
	if count >= low && count <= high {
		return bestSup, nil
	}
	iters := cfg.MaxBisect - 2

	// Bracket the window: walk λ geometrically in the shrinking (or
	// growing) direction until the count crosses it.
	var (
		lo = 1.0 // λ producing a forest at least as large as the window
		hi = 1.0 // λ producing a forest at most as large as the window
	)
	if count > high {
		for iters > 0 && count > high && hi < scaleCeil {
			hi *= 2
			iters--
			if f, err = grow(hi); err != nil {
				return nil, err
			}
			consider(f)
			count = f.NodeCount()
		}
		lo = hi / 2
	} else { // count < low: shrink λ to let the forest grow
		for iters > 0 && count < low && lo > scaleFloor {
			lo /= 2
			iters--
			if f, err = grow(lo); err != nil {
				return nil, err
			}
			consider(f)
			count = f.NodeCount()
		}
		hi = lo * 2
	}
	if count >= low && count <= high {
		return bestSup, nil
	}

	// Bisect the bracket.
	var mid float64
	for ; iters > 0; iters-- {
		mid = (lo + hi) / 2
		if f, err = grow(mid); err != nil {
			return nil, err
		}
		consider(f)
		count = f.NodeCount()
		switch {
		case count > high:
			lo = mid
		case count < low:
			hi = mid
		default:
			return bestSup, nil
		}
	}

	return bestSup, nil
}

// trimSupport enforces |support| <= s by repeatedly deleting the
// lowest-prize node whose removal keeps the component count within
// maxComp. Deleting a node of forest degree d splits its tree into d
// pieces (a singleton simply disappears), so leaves never raise the
// count while a worthless pass-through node may be cut out whenever the
// split still fits — instead of evicting a prize-carrying leaf around
// it. Constraints are never violated, only under-utilized.
//
// Returns the surviving node set, sorted ascending.
//
// Complexity: O(V²) worst case over the forest size — fine at the
// scales the bisection produces.
func trimSupport(g *core.Graph, f *pcsf.Forest, s, maxComp int, prizes []float64) []int {
	if f == nil {
		return []int{}
	}
	if f.NodeCount() <= s {
		return f.Nodes()
	}

	// Degree bookkeeping over the forest edges.
	var (
		present = make(map[int]bool, f.NodeCount())
		deg     = make(map[int]int, f.NodeCount())
		adj     = make(map[int][]int, f.NodeCount())
		comps   = len(f.Trees())
	)
	for _, tr := range f.Trees() {
		for _, v := range tr.Nodes {
			present[v] = true
		}
		for _, id := range tr.Edges {
			u, w := g.Endpoints(id)
			adj[u] = append(adj[u], w)
			adj[w] = append(adj[w], u)
			deg[u]++
			deg[w]++
		}
	}

	remaining := f.NodeCount()
	var (
		victim int
		vPrize float64
		v      int
		found  bool
	)
	for remaining > s {
		// Pick the lowest-prize deletable node; ties go to the lowest
		// node index for reproducibility.
		found = false
		vPrize = math.Inf(1)
		for v = range present {
			if comps+deg[v]-1 > maxComp {
				continue
			}
			if !found || prizes[v] < vPrize || (prizes[v] == vPrize && v < victim) {
				victim, vPrize, found = v, prizes[v], true
			}
		}
		if !found {
			break // cannot happen: every tree keeps a deletable leaf
		}
		comps += deg[victim] - 1
		delete(present, victim)
		remaining--
		for _, v = range adj[victim] {
			if present[v] {
				deg[v]--
			}
		}
	}

	out := make([]int, 0, remaining)
	for v = range present {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
