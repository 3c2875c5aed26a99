// Package projection - head projection oracle.
package projection

import (
	"math"

	"github.com/Derek-Fox/graph-scsg-iht/core"
)

// Head selects a budget-feasible support capturing a near-maximal
// fraction of x's squared norm.
//
// Pipeline: prizes = x∘x → bisection-steered pcsf growth → prize-aware
// trimming down to at most b.S nodes. The returned support is sorted
// ascending and always satisfies |support| ≤ S, ≤ G components, forest
// cost ≤ B.
//
// A zero vector (or a budget admitting nothing) yields an empty support;
// that is a valid degenerate projection, not an error.
//
// Errors: ErrNilGraph, ErrVectorMismatch, ErrNonFiniteVector, and the
// ErrInvalidBudget family.
//
// Complexity: O(MaxBisect · V·(V+E)).
func Head(g *core.Graph, x []float64, b Budget, opts ...Option) ([]int, error) {
	prizes, cfg, err := prepare(g, x, b, opts)
	if err != nil {
		return nil, err
	}

	return searchSupport(g, prizes, b, cfg)
}

// prepare validates inputs shared by Head and Tail and derives the
// squared-magnitude prize vector.
//
// Complexity: O(V).
func prepare(g *core.Graph, x []float64, b Budget, opts []Option) ([]float64, Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, cfg, ErrNilGraph
	}
	if err := b.Validate(g.NodeCount()); err != nil {
		return nil, cfg, err
	}
	if len(x) != g.NodeCount() {
		return nil, cfg, ErrVectorMismatch
	}

	prizes := make([]float64, len(x))
	var (
		i  int
		xi float64
	)
	for i, xi = range x {
		if math.IsNaN(xi) || math.IsInf(xi, 0) {
			return nil, cfg, ErrNonFiniteVector
		}
		prizes[i] = xi * xi
	}

	return prizes, cfg, nil
}
