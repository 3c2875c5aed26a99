// Package projection - tail projection oracle.
package projection

import (
	"github.com/Derek-Fox/graph-scsg-iht/core"
)

// Tail returns the budget-feasible graph-sparse vector closest (up to
// the oracle's constant factor) to x: the same growth as Head selects a
// support, then every coordinate outside it is zeroed.
//
// Feasible inputs are fixed points: a vector already supported on at
// most S nodes forming at most G affordable components projects to
// itself, which makes Tail idempotent.
//
// Errors: ErrNilGraph, ErrVectorMismatch, ErrNonFiniteVector, and the
// ErrInvalidBudget family.
//
// Complexity: O(MaxBisect · V·(V+E)).
func Tail(g *core.Graph, x []float64, b Budget, opts ...Option) ([]float64, error) {
	prizes, cfg, err := prepare(g, x, b, opts)
	if err != nil {
		return nil, err
	}

	support, err := searchSupport(g, prizes, b, cfg)
	if err != nil {
		return nil, err
	}

	// Zero everything outside the selected support.
	out := make([]float64, len(x))
	for _, v := range support {
		out[v] = x[v]
	}

	return out, nil
}

// Support returns the nonzero coordinates of x, sorted ascending. It is
// the canonical way to read a projected vector's support back out.
//
// Complexity: O(V).
func Support(x []float64) []int {
	out := make([]int, 0, 8)
	for i, xi := range x {
		if xi != 0 {
			out = append(out, i)
		}
	}

	return out
}
