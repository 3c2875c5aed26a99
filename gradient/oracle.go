// Package gradient - least-squares oracle over an immutable dataset.
package gradient

import (
	"context"
	"errors"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by NewLeastSquares.
var (
	// ErrNilData indicates a nil design matrix or measurement vector.
	ErrNilData = errors.New("gradient: dataset matrix or measurements are nil")

	// ErrDimensionMismatch indicates len(y) != rows(X).
	ErrDimensionMismatch = errors.New("gradient: measurement length does not match design matrix rows")

	// ErrEmptyDataset indicates a dataset with no observations or no features.
	ErrEmptyDataset = errors.New("gradient: dataset must have at least one row and one column")
)

// Dataset bundles the loss-defining data: design matrix X and
// measurements y. Both are treated as read-only after NewLeastSquares.
type Dataset struct {
	X *mat.Dense    // n×p design matrix: one row per observation
	Y *mat.VecDense // n measurements
}

// LeastSquares is the stateless gradient oracle for f(w) = ‖y − Xw‖².
type LeastSquares struct {
	x    *mat.Dense
	y    *mat.VecDense
	rows int // number of observations n
	cols int // number of features p (graph nodes)
}

// NewLeastSquares validates dataset shapes and wraps them in an oracle.
//
// Errors: ErrNilData, ErrEmptyDataset, ErrDimensionMismatch.
//
// Complexity: O(1) — no data is copied; the caller must not mutate the
// dataset afterwards.
func NewLeastSquares(ds Dataset) (*LeastSquares, error) {
	if ds.X == nil || ds.Y == nil {
		return nil, ErrNilData
	}
	n, p := ds.X.Dims()
	if n == 0 || p == 0 {
		return nil, ErrEmptyDataset
	}
	if ds.Y.Len() != n {
		return nil, ErrDimensionMismatch
	}

	return &LeastSquares{x: ds.X, y: ds.Y, rows: n, cols: p}, nil
}

// Rows returns the number of observations n.
//
// Complexity: O(1).
func (o *LeastSquares) Rows() int { return o.rows }

// Dim returns the parameter dimension p.
//
// Complexity: O(1).
func (o *LeastSquares) Dim() int { return o.cols }

// Gradient computes the mini-batch gradient −2·Σ_{i∈rows} (yᵢ − xᵢ·w)·xᵢ
// into a fresh slice of length Dim().
//
// Contract: len(w) == Dim(); every row index in [0..Rows()-1].
//
// Complexity: O(|rows|·p).
func (o *LeastSquares) Gradient(w []float64, rows []int) []float64 {
	out := make([]float64, o.cols)
	o.accumulate(out, w, rows)

	return out
}

// accumulate adds the block gradient into dst (len == Dim()).
func (o *LeastSquares) accumulate(dst, w []float64, rows []int) {
	var (
		i   int
		row []float64
		r   float64
	)
	for _, i = range rows {
		row = o.x.RawRowView(i)
		// Residual of observation i, then rank-1 update of the gradient.
		r = o.y.AtVec(i) - floats.Dot(row, w)
		floats.AddScaled(dst, -2*r, row)
	}
}

// FullGradient computes the batch gradient over all observations,
// splitting rows into per-CPU chunks reduced in parallel. Chunk partials
// are summed in chunk order, so the result is deterministic up to the
// usual floating-point associativity of a fixed layout.
//
// The context is consulted once per chunk; a canceled context aborts the
// reduction and returns ctx.Err().
//
// Complexity: O(n·p / workers) wall-clock, O(workers·p) extra space.
func (o *LeastSquares) FullGradient(ctx context.Context, w []float64) ([]float64, error) {
	workers := runtime.GOMAXPROCS(0)
	if workers > o.rows {
		workers = o.rows
	}
	if workers < 1 {
		workers = 1
	}

	var (
		chunk    = (o.rows + workers - 1) / workers
		partials = make([][]float64, workers)
	)
	grp, gctx := errgroup.WithContext(ctx)

	var c int
	for c = 0; c < workers; c++ {
		c := c // capture per-iteration
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lo := c * chunk
			hi := lo + chunk
			if hi > o.rows {
				hi = o.rows
			}
			part := make([]float64, o.cols)
			rows := make([]int, 0, hi-lo)
			for i := lo; i < hi; i++ {
				rows = append(rows, i)
			}
			o.accumulate(part, w, rows)
			partials[c] = part

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	// Deterministic reduction: chunk 0 first, then ascending.
	out := make([]float64, o.cols)
	for c = 0; c < workers; c++ {
		if partials[c] != nil {
			floats.Add(out, partials[c])
		}
	}

	return out, nil
}

// Objective returns the residual sum of squares ‖y − Xw‖².
//
// Complexity: O(n·p).
func (o *LeastSquares) Objective(w []float64) float64 {
	var (
		total float64
		i     int
		r     float64
	)
	for i = 0; i < o.rows; i++ {
		r = o.y.AtVec(i) - floats.Dot(o.x.RawRowView(i), w)
		total += r * r
	}

	return total
}

// ResidualNorm returns ‖y − Xw‖, the quantity the driver traces and
// tests against its stopping tolerance.
//
// Complexity: O(n·p).
func (o *LeastSquares) ResidualNorm(w []float64) float64 {
	return math.Sqrt(o.Objective(w))
}
