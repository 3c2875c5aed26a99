// Package solver_test fixtures: synthetic graphs and sensing datasets in
// the shape the algorithm was originally tuned on.
package solver_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/Derek-Fox/graph-scsg-iht/core"
	"github.com/Derek-Fox/graph-scsg-iht/gradient"
)

// starGraph builds a unit-cost star: center 0, leaves 1..p-1.
func starGraph(t *testing.T, p int) *core.Graph {
	t.Helper()
	es := make([]core.Edge, 0, p-1)
	for leaf := 1; leaf < p; leaf++ {
		es = append(es, core.Edge{U: 0, V: leaf, Cost: 1})
	}
	g, err := core.NewGraph(p, es)
	require.NoError(t, err)

	return g
}

// sensingOracle builds a Gaussian design matrix with entries
// N(0,1)/sqrt(rows) and noiseless measurements y = X·wStar, the standard
// compressed-sensing regime where XᵀX ≈ I.
func sensingOracle(t *testing.T, rows int, wStar []float64, seed int64) *gradient.LeastSquares {
	t.Helper()
	var (
		p     = len(wStar)
		rng   = rand.New(rand.NewSource(seed))
		scale = 1 / math.Sqrt(float64(rows))
		data  = make([]float64, rows*p)
	)
	for i := range data {
		data[i] = rng.NormFloat64() * scale
	}
	x := mat.NewDense(rows, p, data)

	var y mat.VecDense
	y.MulVec(x, mat.NewVecDense(p, wStar))

	o, err := gradient.NewLeastSquares(gradient.Dataset{X: x, Y: &y})
	require.NoError(t, err)

	return o
}

// exactOracle is sensingOracle with measurements accumulated by the same
// dot product the oracle's hot loop uses, so the residual at wStar is
// exactly zero — needed when a test asserts on bitwise-zero gradients.
func exactOracle(t *testing.T, rows int, wStar []float64, seed int64) *gradient.LeastSquares {
	t.Helper()
	var (
		p     = len(wStar)
		rng   = rand.New(rand.NewSource(seed))
		scale = 1 / math.Sqrt(float64(rows))
		data  = make([]float64, rows*p)
	)
	for i := range data {
		data[i] = rng.NormFloat64() * scale
	}
	x := mat.NewDense(rows, p, data)

	ys := make([]float64, rows)
	for i := 0; i < rows; i++ {
		ys[i] = floats.Dot(x.RawRowView(i), wStar)
	}

	o, err := gradient.NewLeastSquares(gradient.Dataset{X: x, Y: mat.NewVecDense(rows, ys)})
	require.NoError(t, err)

	return o
}
