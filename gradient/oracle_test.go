// Package gradient_test checks the oracle against numerical
// differentiation and verifies the parallel full-batch reduction.
package gradient_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/Derek-Fox/graph-scsg-iht/gradient"
)

// randomOracle builds an n×p Gaussian dataset with a fixed seed.
func randomOracle(t *testing.T, n, p int, seed int64) *gradient.LeastSquares {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*p)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = rng.NormFloat64()
	}
	o, err := gradient.NewLeastSquares(gradient.Dataset{
		X: mat.NewDense(n, p, data),
		Y: mat.NewVecDense(n, ys),
	})
	require.NoError(t, err)

	return o
}

func TestNewLeastSquares_Validation(t *testing.T) {
	x := mat.NewDense(2, 3, nil)
	y := mat.NewVecDense(2, nil)

	_, err := gradient.NewLeastSquares(gradient.Dataset{X: nil, Y: y})
	assert.ErrorIs(t, err, gradient.ErrNilData)

	_, err = gradient.NewLeastSquares(gradient.Dataset{X: x, Y: nil})
	assert.ErrorIs(t, err, gradient.ErrNilData)

	_, err = gradient.NewLeastSquares(gradient.Dataset{X: x, Y: mat.NewVecDense(3, nil)})
	assert.ErrorIs(t, err, gradient.ErrDimensionMismatch)

	o, err := gradient.NewLeastSquares(gradient.Dataset{X: x, Y: y})
	require.NoError(t, err)
	assert.Equal(t, 2, o.Rows())
	assert.Equal(t, 3, o.Dim())
}

// TestGradient_MatchesFiniteDifferences compares the analytic gradient
// with a central finite difference of the objective.
func TestGradient_MatchesFiniteDifferences(t *testing.T) {
	const h = 1e-6

	o := randomOracle(t, 12, 5, 21)
	rng := rand.New(rand.NewSource(22))
	w := make([]float64, o.Dim())
	for i := range w {
		w[i] = rng.NormFloat64()
	}

	all := make([]int, o.Rows())
	for i := range all {
		all[i] = i
	}
	grad := o.Gradient(w, all)

	for j := 0; j < o.Dim(); j++ {
		wp := append([]float64(nil), w...)
		wm := append([]float64(nil), w...)
		wp[j] += h
		wm[j] -= h
		numeric := (o.Objective(wp) - o.Objective(wm)) / (2 * h)
		assert.InDelta(t, numeric, grad[j], 1e-4, "coordinate %d", j)
	}
}

func TestFullGradient_EqualsSummedBatches(t *testing.T) {
	o := randomOracle(t, 32, 7, 5)
	rng := rand.New(rand.NewSource(6))
	w := make([]float64, o.Dim())
	for i := range w {
		w[i] = rng.NormFloat64()
	}

	full, err := o.FullGradient(context.Background(), w)
	require.NoError(t, err)

	// Sum single-row gradients sequentially.
	sum := make([]float64, o.Dim())
	for i := 0; i < o.Rows(); i++ {
		for j, v := range o.Gradient(w, []int{i}) {
			sum[j] += v
		}
	}
	for j := range sum {
		assert.InDelta(t, sum[j], full[j], 1e-9, "coordinate %d", j)
	}
}

func TestFullGradient_DeterministicAcrossCalls(t *testing.T) {
	o := randomOracle(t, 64, 9, 13)
	w := make([]float64, o.Dim())
	for i := range w {
		w[i] = float64(i) * 0.1
	}

	a, err := o.FullGradient(context.Background(), w)
	require.NoError(t, err)
	b, err := o.FullGradient(context.Background(), w)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFullGradient_CanceledContext(t *testing.T) {
	o := randomOracle(t, 16, 4, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := o.FullGradient(ctx, make([]float64, o.Dim()))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestObjective_ZeroAtExactSolution(t *testing.T) {
	// y = Xw* exactly; objective at w* must be ~0 and gradient ~0.
	rng := rand.New(rand.NewSource(30))
	const n, p = 10, 4
	data := make([]float64, n*p)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	x := mat.NewDense(n, p, data)
	wStar := []float64{1, -2, 0.5, 3}
	var y mat.VecDense
	y.MulVec(x, mat.NewVecDense(p, wStar))

	o, err := gradient.NewLeastSquares(gradient.Dataset{X: x, Y: &y})
	require.NoError(t, err)
	assert.InDelta(t, 0, o.Objective(wStar), 1e-18)
	assert.InDelta(t, 0, o.ResidualNorm(wStar), 1e-9)

	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	for _, gj := range o.Gradient(wStar, all) {
		assert.InDelta(t, 0, gj, 1e-9)
	}
}
