// Package solver_test covers the driver end to end: validation,
// recovery on the star-graph regression scenario, stochastic progress
// over seeds, the snapshot-batch variants, reproducibility, degenerate
// projections, divergence and cancellation.
package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Derek-Fox/graph-scsg-iht/projection"
	"github.com/Derek-Fox/graph-scsg-iht/solver"
)

// starBudget is the canonical budget for a 3-node connected support on a
// unit-cost star: center plus two leaves.
func starBudget() projection.Budget {
	return projection.Budget{S: 3, G: 1, B: 2, Eps: 1e-6}
}

func TestSolve_Validation(t *testing.T) {
	g := starGraph(t, 10)
	wStar := make([]float64, 10)
	wStar[0] = 1
	oracle := sensingOracle(t, 40, wStar, 1)
	ctx := context.Background()

	_, err := solver.Solve(ctx, nil, oracle, starBudget())
	assert.ErrorIs(t, err, solver.ErrNilGraph)

	_, err = solver.Solve(ctx, g, nil, starBudget())
	assert.ErrorIs(t, err, solver.ErrNilOracle)

	smallOracle := sensingOracle(t, 40, make([]float64, 7), 1)
	_, err = solver.Solve(ctx, g, smallOracle, starBudget())
	assert.ErrorIs(t, err, solver.ErrDimensionMismatch)

	_, err = solver.Solve(ctx, g, oracle, projection.Budget{S: 99, G: 1, B: 2, Eps: 1e-6})
	assert.ErrorIs(t, err, projection.ErrInvalidBudget)

	_, err = solver.Solve(ctx, g, oracle, starBudget(), solver.WithStepSize(-1))
	assert.ErrorIs(t, err, solver.ErrBadStepSize)

	_, err = solver.Solve(ctx, g, oracle, starBudget(), solver.WithBatchSize(1000))
	assert.ErrorIs(t, err, solver.ErrBadBatchSize)

	_, err = solver.Solve(ctx, g, oracle, starBudget(), solver.WithSnapshotBatch(1000))
	assert.ErrorIs(t, err, solver.ErrBadSnapshotBatch)

	_, err = solver.Solve(ctx, g, oracle, starBudget(), solver.WithSnapshotBatch(-1))
	assert.ErrorIs(t, err, solver.ErrBadSnapshotBatch)

	_, err = solver.Solve(ctx, g, oracle, starBudget(), solver.WithMaxEpochs(0))
	assert.ErrorIs(t, err, solver.ErrBadEpochs)

	_, err = solver.Solve(ctx, g, oracle, starBudget(), solver.WithWarmStart(make([]float64, 3)))
	assert.ErrorIs(t, err, solver.ErrDimensionMismatch)
}

// TestSolve_StarRecovery is the end-to-end scenario: linear regression
// over a Gaussian sensing matrix whose true signal lives on a connected
// 3-node star support. Full-batch inner steps make the run a
// deterministic projected gradient descent; it must converge well within
// the epoch limit and identify the exact support.
func TestSolve_StarRecovery(t *testing.T) {
	const (
		p    = 10
		rows = 100
	)
	g := starGraph(t, p)
	wStar := make([]float64, p)
	wStar[0] = 1.5
	wStar[1] = -2.0
	wStar[2] = 1.0
	oracle := sensingOracle(t, rows, wStar, 17)

	res, err := solver.Solve(context.Background(), g, oracle, starBudget(),
		solver.WithStepSize(0.45),
		solver.WithBatchSize(rows),
		solver.WithMaxEpochs(60),
		solver.WithSeed(42),
	)
	require.NoError(t, err)

	assert.Equal(t, solver.StatusConverged, res.Status)
	assert.Equal(t, []int{0, 1, 2}, res.Support)
	require.NotEmpty(t, res.Trace)
	last := res.Trace[len(res.Trace)-1]
	assert.LessOrEqual(t, last.Residual, 1e-6)
	for i, want := range wStar {
		assert.InDelta(t, want, res.X[i], 1e-3, "coordinate %d", i)
	}
	// The iterate is graph-sparse at return: at most S nonzeros.
	assert.LessOrEqual(t, len(res.Support), starBudget().S)
}

// TestSolve_ObjectiveTrendsDownward checks the epoch-wise objective on
// the deterministic full-batch run: each epoch must improve on the
// previous one up to a small floating-point slack.
func TestSolve_ObjectiveTrendsDownward(t *testing.T) {
	g := starGraph(t, 10)
	wStar := make([]float64, 10)
	wStar[0] = 1.5
	wStar[1] = -2.0
	wStar[2] = 1.0
	oracle := sensingOracle(t, 100, wStar, 23)

	res, err := solver.Solve(context.Background(), g, oracle, starBudget(),
		solver.WithStepSize(0.45),
		solver.WithBatchSize(100),
		solver.WithMaxEpochs(25),
		solver.WithTolerance(1e-10),
	)
	require.NoError(t, err)
	require.Greater(t, len(res.Trace), 3)

	for i := 1; i < len(res.Trace); i++ {
		assert.LessOrEqual(t, res.Trace[i].Objective,
			res.Trace[i-1].Objective*1.05+1e-12,
			"epoch %d must not regress", i+1)
	}
}

// TestSolve_StochasticProgressAcrossSeeds runs the single-sample SVRG
// variant under several seeds; every run must end with a smaller
// residual than its first epoch produced.
func TestSolve_StochasticProgressAcrossSeeds(t *testing.T) {
	g := starGraph(t, 10)
	wStar := make([]float64, 10)
	wStar[0] = 1.5
	wStar[1] = -2.0
	wStar[2] = 1.0
	oracle := sensingOracle(t, 100, wStar, 29)

	for trial := 0; trial < 5; trial++ {
		seed := solver.TrialSeed(7, trial)
		res, err := solver.Solve(context.Background(), g, oracle, starBudget(),
			solver.WithStepSize(0.05),
			solver.WithBatchSize(1),
			solver.WithMaxEpochs(15),
			solver.WithTolerance(1e-12),
			solver.WithSeed(seed),
		)
		require.NoError(t, err, "trial %d", trial)
		require.NotEmpty(t, res.Trace, "trial %d", trial)

		first := res.Trace[0].Residual
		last := res.Trace[len(res.Trace)-1].Residual
		assert.Less(t, last, first, "trial %d: no stochastic progress", trial)
	}
}

// TestSolve_SnapshotBatchProgress runs the SCSG regime: the epoch
// reference gradient comes from one 50-row block instead of the full
// batch, with 50/10 inner steps per epoch. The cheaper reference is
// noisier, so the check is stochastic progress, not exact recovery.
func TestSolve_SnapshotBatchProgress(t *testing.T) {
	const rows = 100
	g := starGraph(t, 10)
	wStar := make([]float64, 10)
	wStar[0] = 1.5
	wStar[1] = -2.0
	wStar[2] = 1.0
	oracle := sensingOracle(t, rows, wStar, 53)

	res, err := solver.Solve(context.Background(), g, oracle, starBudget(),
		solver.WithStepSize(0.05),
		solver.WithBatchSize(10),
		solver.WithSnapshotBatch(50),
		solver.WithMaxEpochs(60),
		solver.WithTolerance(1e-12),
		solver.WithSeed(5),
	)
	require.NoError(t, err)
	require.NotEmpty(t, res.Trace)

	first := res.Trace[0].Residual
	last := res.Trace[len(res.Trace)-1].Residual
	assert.Less(t, last, first)
}

// TestSolve_SnapshotBatchEqualsBatchSize degenerates SnapshotBatch to
// the inner block size: one step per epoch on the raw block gradient,
// plain stochastic IHT. With the block covering the whole dataset the
// run is exact projected gradient descent and must recover the signal.
func TestSolve_SnapshotBatchEqualsBatchSize(t *testing.T) {
	const (
		p    = 10
		rows = 100
	)
	g := starGraph(t, p)
	wStar := make([]float64, p)
	wStar[0] = 1.5
	wStar[1] = -2.0
	wStar[2] = 1.0
	oracle := sensingOracle(t, rows, wStar, 17)

	res, err := solver.Solve(context.Background(), g, oracle, starBudget(),
		solver.WithStepSize(0.45),
		solver.WithBatchSize(rows),
		solver.WithSnapshotBatch(rows),
		solver.WithMaxEpochs(60),
		solver.WithSeed(42),
	)
	require.NoError(t, err)

	assert.Equal(t, solver.StatusConverged, res.Status)
	assert.Equal(t, []int{0, 1, 2}, res.Support)
	for i, want := range wStar {
		assert.InDelta(t, want, res.X[i], 1e-3, "coordinate %d", i)
	}
}

func TestSolve_ReproducibleTrace(t *testing.T) {
	g := starGraph(t, 10)
	wStar := make([]float64, 10)
	wStar[0] = 1.5
	wStar[1] = -2.0
	wStar[2] = 1.0
	oracle := sensingOracle(t, 60, wStar, 31)

	run := func() solver.Result {
		res, err := solver.Solve(context.Background(), g, oracle, starBudget(),
			solver.WithStepSize(0.05),
			solver.WithBatchSize(1),
			solver.WithMaxEpochs(5),
			solver.WithTolerance(1e-12),
			solver.WithSeed(99),
		)
		require.NoError(t, err)

		return res
	}

	a := run()
	b := run()
	assert.Equal(t, a.Trace, b.Trace)
	assert.Equal(t, a.X, b.X)
	assert.Equal(t, a.Support, b.Support)
	assert.Equal(t, a.Status, b.Status)
}

// TestSolve_WarmStartAtOptimum exercises the degenerate-projection path:
// starting exactly at the true signal, the gradient is (numerically)
// zero, the head projection is empty, the step is skipped and the solve
// converges immediately with the degenerate step surfaced in the trace.
func TestSolve_WarmStartAtOptimum(t *testing.T) {
	const rows = 80
	g := starGraph(t, 10)
	wStar := make([]float64, 10)
	wStar[0] = 1.5
	wStar[1] = -2.0
	wStar[2] = 1.0
	oracle := exactOracle(t, rows, wStar, 37)

	res, err := solver.Solve(context.Background(), g, oracle, starBudget(),
		solver.WithStepSize(0.45),
		solver.WithBatchSize(rows),
		solver.WithMaxEpochs(5),
		solver.WithWarmStart(wStar),
	)
	require.NoError(t, err)

	assert.Equal(t, solver.StatusConverged, res.Status)
	require.Len(t, res.Trace, 1)
	assert.Equal(t, 1, res.Trace[0].DegenerateSteps)
	assert.Equal(t, wStar, res.X)
}

func TestSolve_DivergenceAborts(t *testing.T) {
	const rows = 50
	g := starGraph(t, 10)
	wStar := make([]float64, 10)
	wStar[0] = 1.5
	wStar[1] = -2.0
	oracle := sensingOracle(t, rows, wStar, 41)

	res, err := solver.Solve(context.Background(), g, oracle, starBudget(),
		solver.WithStepSize(1e6), // far past the stable range
		solver.WithBatchSize(rows),
		solver.WithMaxEpochs(10),
	)
	assert.ErrorIs(t, err, solver.ErrNumericalDivergence)
	assert.Equal(t, solver.StatusDiverged, res.Status)
}

func TestSolve_CanceledContext(t *testing.T) {
	g := starGraph(t, 10)
	wStar := make([]float64, 10)
	wStar[0] = 1
	oracle := sensingOracle(t, 40, wStar, 43)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.Solve(ctx, g, oracle, starBudget())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolve_MaxItersCapsWork(t *testing.T) {
	g := starGraph(t, 10)
	wStar := make([]float64, 10)
	wStar[0] = 1.5
	wStar[1] = -2.0
	wStar[2] = 1.0
	oracle := sensingOracle(t, 100, wStar, 47)

	res, err := solver.Solve(context.Background(), g, oracle, starBudget(),
		solver.WithStepSize(0.05),
		solver.WithBatchSize(1),
		solver.WithMaxEpochs(50),
		solver.WithMaxIters(120),
		solver.WithTolerance(1e-12),
	)
	require.NoError(t, err)
	assert.Equal(t, solver.StatusMaxIterReached, res.Status)
	require.NotEmpty(t, res.Trace)
	assert.LessOrEqual(t, res.Trace[len(res.Trace)-1].Iteration, 120)
}
