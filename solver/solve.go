// Package solver - the SVR-GraphIHT state machine.
package solver

import (
	"context"
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/Derek-Fox/graph-scsg-iht/core"
	"github.com/Derek-Fox/graph-scsg-iht/gradient"
	"github.com/Derek-Fox/graph-scsg-iht/projection"
)

// Solve runs SVR-GraphIHT to completion and returns the final iterate,
// its support, the termination status and the per-epoch trace.
//
// The context is consulted only at epoch boundaries (the natural
// suspension points) and inside the parallel full-gradient reduction;
// cancellation returns ctx.Err() alongside the partial result gathered
// so far. There is no internal retry logic: validation errors are final,
// and a numerical divergence aborts this solve only.
//
// Contracts:
//   - g and oracle non-nil, oracle.Dim() == g.NodeCount().
//   - budget valid for the graph (projection.Budget.Validate).
//   - options valid per Options.validate.
//
// Errors: ErrNilGraph, ErrNilOracle, ErrDimensionMismatch, the
// ErrBad* option sentinels, the projection.ErrInvalidBudget family, and
// ErrNumericalDivergence (Result still carries the last valid trace).
//
// Complexity per epoch: one reference gradient (full, O(n·p), or one
// SnapshotBatch block) plus rows/b inner steps (SnapshotBatch/b under
// SCSG) of one mini-batch gradient and two projections each.
func Solve(ctx context.Context, g *core.Graph, oracle *gradient.LeastSquares, budget projection.Budget, opts ...Option) (Result, error) {
	// ----- Init ---------------------------------------------------------
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}

	if g == nil {
		return Result{}, ErrNilGraph
	}
	if oracle == nil {
		return Result{}, ErrNilOracle
	}
	n := g.NodeCount()
	if oracle.Dim() != n {
		return Result{}, ErrDimensionMismatch
	}
	if err := budget.Validate(n); err != nil {
		return Result{}, err
	}
	if err := cfg.validate(oracle.Rows()); err != nil {
		return Result{}, err
	}
	tol := cfg.Tolerance
	if tol == 0 {
		tol = budget.Eps
	}
	projOpts := []projection.Option{
		projection.WithMaxBisect(cfg.BisectMaxIter),
		projection.WithGamma(cfg.Gamma),
	}

	// Start point: zeros, or a warm start forced onto the budget.
	x := make([]float64, n)
	if cfg.WarmStart != nil {
		if len(cfg.WarmStart) != n {
			return Result{}, ErrDimensionMismatch
		}
		var err error
		if x, err = projection.Tail(g, cfg.WarmStart, budget, projOpts...); err != nil {
			return Result{}, err
		}
	}

	rng := rngFromSeed(cfg.Seed)

	// ----- Epoch loop ---------------------------------------------------
	var (
		iters  int
		trace  []TraceRecord
		status = StatusMaxIterReached
	)
	diverged := func() (Result, error) {
		cfg.Logger.WithField("iteration", iters).Warn("solve aborted: numerical divergence")

		return Result{
			X:       x,
			Support: projection.Support(x),
			Status:  StatusDiverged,
			Trace:   trace,
		}, ErrNumericalDivergence
	}

	// SVRG walks the whole dataset per epoch; SCSG walks one snapshot
	// block of it.
	epochRows := oracle.Rows()
	if cfg.SnapshotBatch > 0 {
		epochRows = cfg.SnapshotBatch
	}
	innerSteps := epochRows / cfg.BatchSize
	if innerSteps < 1 {
		innerSteps = 1
	}

	var epoch int
epochs:
	for epoch = 1; epoch <= cfg.MaxEpochs; epoch++ {
		// ----- EpochStart: refresh the variance-reduction snapshot -----
		if err := ctx.Err(); err != nil {
			return Result{X: x, Support: projection.Support(x), Status: status, Trace: trace}, err
		}
		var ref []float64
		if cfg.SnapshotBatch > 0 {
			outer := sampleBlock(rng, cfg.SnapshotBatch, oracle.Rows())
			ref = oracle.Gradient(x, outer)
		} else {
			var err error
			if ref, err = oracle.FullGradient(ctx, x); err != nil {
				return Result{X: x, Support: projection.Support(x), Status: status, Trace: trace}, err
			}
		}
		if !allFinite(ref) {
			return diverged()
		}
		snapshot := append([]float64(nil), x...)

		// ----- InnerStep loop ------------------------------------------
		var degenerate int
		var t int
		for t = 0; t < innerSteps; t++ {
			if cfg.MaxIters > 0 && iters >= cfg.MaxIters {
				break
			}
			iters++

			block := sampleBlock(rng, cfg.BatchSize, oracle.Rows())
			est := oracle.Gradient(x, block)
			if epoch > 1 {
				// Variance-reduced estimate: g(x, S) − g(x̃, S) + μ,
				// where μ is the epoch reference gradient (full under
				// SVRG, one snapshot block under SCSG). The first epoch
				// runs on the raw stochastic gradient: its snapshot is
				// the start point and the correction would only add noise.
				floats.Sub(est, oracle.Gradient(snapshot, block))
				floats.Add(est, ref)
			}
			if !allFinite(est) {
				return diverged()
			}

			// Head: pick the support worth stepping on.
			sup, herr := projection.Head(g, est, budget, projOpts...)
			if herr != nil {
				if errors.Is(herr, projection.ErrNonFiniteVector) {
					return diverged()
				}

				return Result{}, herr
			}
			if len(sup) == 0 {
				degenerate++
				cfg.Logger.WithField("iteration", iters).Debug("empty head projection; step skipped")

				continue
			}

			// Gradient step restricted to the head support.
			next := append([]float64(nil), x...)
			for _, v := range sup {
				next[v] -= cfg.StepSize * est[v]
			}

			// Tail: force the iterate back onto the budget.
			var terr error
			x, terr = projection.Tail(g, next, budget, projOpts...)
			if terr != nil {
				if errors.Is(terr, projection.ErrNonFiniteVector) {
					return diverged()
				}

				return Result{}, terr
			}
			if len(projection.Support(x)) == 0 {
				degenerate++
				cfg.Logger.WithField("iteration", iters).Debug("empty tail projection")
			}
		}

		// ----- EpochEnd: trace, divergence guard, termination ----------
		if !allFinite(x) || floats.Norm(x, 2) >= cfg.DivergenceNorm {
			return diverged()
		}
		var (
			obj = oracle.Objective(x)
			res = oracle.ResidualNorm(x)
		)
		trace = append(trace, TraceRecord{
			Iteration:       iters,
			Objective:       obj,
			Residual:        res,
			DegenerateSteps: degenerate,
		})
		cfg.Logger.WithFields(map[string]interface{}{
			"epoch":     epoch,
			"iteration": iters,
			"residual":  res,
			"objective": obj,
		}).Debug("epoch complete")

		if res <= tol {
			status = StatusConverged

			break epochs
		}
		if cfg.MaxIters > 0 && iters >= cfg.MaxIters {
			status = StatusMaxIterReached

			break epochs
		}
	}

	return Result{
		X:       x,
		Support: projection.Support(x),
		Status:  status,
		Trace:   trace,
	}, nil
}

// allFinite reports whether every coordinate is a finite number.
//
// Complexity: O(n).
func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
