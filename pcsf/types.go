// Package pcsf - types, sentinel errors and growth options.
package pcsf

import (
	"errors"
	"math"
	"sort"

	"github.com/Derek-Fox/graph-scsg-iht/core"
)

// Sentinel errors returned by Grow.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Grow.
	ErrNilGraph = errors.New("pcsf: graph is nil")

	// ErrPrizeMismatch indicates len(prizes) != graph.NodeCount().
	ErrPrizeMismatch = errors.New("pcsf: prize slice length mismatch")

	// ErrNonFinitePrize indicates a NaN or infinite prize entry.
	ErrNonFinitePrize = errors.New("pcsf: non-finite prize")

	// ErrBadMaxTrees indicates MaxTrees < 1.
	ErrBadMaxTrees = errors.New("pcsf: MaxTrees must be at least 1")

	// ErrBadBudget indicates a negative or NaN cost budget.
	ErrBadBudget = errors.New("pcsf: CostBudget must be non-negative")

	// ErrBadScale indicates a non-positive or non-finite cost scale.
	ErrBadScale = errors.New("pcsf: CostScale must be positive and finite")
)

// GrowOptions configures one forest growth.
//
// MaxTrees   — maximum number of trees in the returned forest (g ≥ 1).
// CostBudget — upper bound on the total original cost of purchased
//              edges (B ≥ 0). math.Inf(1) disables the bound.
// CostScale  — multiplier λ > 0 applied to edge costs in tightness and
//              pruning decisions. Larger λ makes edges relatively more
//              expensive and shrinks the forest; callers tune it to steer
//              the node count. The budget is unaffected by λ.
type GrowOptions struct {
	MaxTrees   int     // g: component bound
	CostBudget float64 // B: purchase budget in original costs
	CostScale  float64 // λ: sparsity steering multiplier
}

// DefaultGrowOptions returns a single-tree, unbounded-budget, unit-scale
// configuration.
//
// Complexity: O(1).
func DefaultGrowOptions() GrowOptions {
	return GrowOptions{
		MaxTrees:   1,
		CostBudget: math.Inf(1),
		CostScale:  1,
	}
}

// validate checks option sanity; returns the first violated sentinel.
//
// Complexity: O(1).
func (o GrowOptions) validate() error {
	if o.MaxTrees < 1 {
		return ErrBadMaxTrees
	}
	if math.IsNaN(o.CostBudget) || o.CostBudget < 0 {
		return ErrBadBudget
	}
	if math.IsNaN(o.CostScale) || math.IsInf(o.CostScale, 0) || o.CostScale <= 0 {
		return ErrBadScale
	}

	return nil
}

// Tree is one connected component of a grown forest.
//
// Nodes are sorted ascending; Edges hold the purchased edge identities
// that span Nodes. Prize and Cost are the tree's total node prize and
// total original edge cost after pruning.
type Tree struct {
	Nodes []int         // member nodes, ascending
	Edges []core.EdgeID // purchased edges spanning Nodes
	Prize float64       // total enclosed prize
	Cost  float64       // total original edge cost
}

// Forest is the result of one Grow call. It is owned exclusively by the
// caller and never retained by the package.
type Forest struct {
	trees []Tree // components sorted by smallest member node
}

// Trees returns the forest's components. Callers must not modify the
// returned slice.
//
// Complexity: O(1).
func (f *Forest) Trees() []Tree { return f.trees }

// Empty reports whether the forest contains no trees.
//
// Complexity: O(1).
func (f *Forest) Empty() bool { return len(f.trees) == 0 }

// NodeCount returns the number of nodes across all trees.
//
// Complexity: O(trees).
func (f *Forest) NodeCount() int {
	var total int
	for i := range f.trees {
		total += len(f.trees[i].Nodes)
	}

	return total
}

// Nodes returns the sorted union of all member nodes.
//
// Complexity: O(V log V) in the forest size.
func (f *Forest) Nodes() []int {
	out := make([]int, 0, f.NodeCount())
	for i := range f.trees {
		out = append(out, f.trees[i].Nodes...)
	}
	sort.Ints(out)

	return out
}

// TotalCost returns the total original cost of purchased edges.
//
// Complexity: O(trees).
func (f *Forest) TotalCost() float64 {
	var total float64
	for i := range f.trees {
		total += f.trees[i].Cost
	}

	return total
}

// TotalPrize returns the total prize enclosed by the forest.
//
// Complexity: O(trees).
func (f *Forest) TotalPrize() float64 {
	var total float64
	for i := range f.trees {
		total += f.trees[i].Prize
	}

	return total
}
