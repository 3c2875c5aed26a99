// Package solver - result types and sentinel errors.
package solver

import "errors"

// Sentinel errors returned by Solve. Budget violations surface as the
// projection.ErrInvalidBudget family, re-validated at Init.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("solver: graph is nil")

	// ErrNilOracle indicates a nil gradient oracle.
	ErrNilOracle = errors.New("solver: gradient oracle is nil")

	// ErrDimensionMismatch indicates the oracle's parameter dimension or
	// the warm start length differs from the graph's node count.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch between graph, oracle and warm start")

	// ErrBadStepSize indicates StepSize <= 0 or non-finite.
	ErrBadStepSize = errors.New("solver: StepSize must be positive and finite")

	// ErrBadEpochs indicates MaxEpochs < 1.
	ErrBadEpochs = errors.New("solver: MaxEpochs must be at least 1")

	// ErrBadBatchSize indicates BatchSize < 1 or larger than the dataset.
	ErrBadBatchSize = errors.New("solver: BatchSize must be in [1..rows]")

	// ErrBadSnapshotBatch indicates a negative SnapshotBatch or one larger
	// than the dataset.
	ErrBadSnapshotBatch = errors.New("solver: SnapshotBatch must be in [0..rows]")

	// ErrBadGamma indicates a negative or NaN sparsity-window slack.
	ErrBadGamma = errors.New("solver: Gamma must be non-negative")

	// ErrBadBisectIter indicates BisectMaxIter < 1.
	ErrBadBisectIter = errors.New("solver: BisectMaxIter must be at least 1")

	// ErrBadDivergenceNorm indicates a non-positive divergence guard.
	ErrBadDivergenceNorm = errors.New("solver: DivergenceNorm must be positive")

	// ErrNumericalDivergence indicates the iterate or a gradient went
	// non-finite or past the divergence guard. The solve aborts; the
	// returned Result still carries the last valid trace so the failure
	// can be diagnosed. Concurrent solves are unaffected.
	ErrNumericalDivergence = errors.New("solver: numerical divergence")
)

// Status tags how a solve terminated.
type Status int

const (
	// StatusConverged: the residual norm reached the tolerance.
	StatusConverged Status = iota

	// StatusMaxIterReached: the epoch or iteration limit was exhausted
	// first. Still a successful return.
	StatusMaxIterReached

	// StatusDiverged: the solve aborted with ErrNumericalDivergence.
	StatusDiverged
)

// String implements fmt.Stringer for logging and test output.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "Converged"
	case StatusMaxIterReached:
		return "MaxIterReached"
	case StatusDiverged:
		return "Diverged"
	default:
		return "Unknown"
	}
}

// TraceRecord is one append-only convergence sample, emitted at each
// epoch boundary. The core never reads the trace back; it exists for
// external reporting.
type TraceRecord struct {
	// Iteration is the cumulative inner-step count at the epoch end.
	Iteration int

	// Objective is the loss value ‖y − Xx‖² at the epoch end.
	Objective float64

	// Residual is the residual norm ‖y − Xx‖ checked against tolerance.
	Residual float64

	// DegenerateSteps counts inner steps of this epoch whose head or
	// tail projection came back empty on a non-zero input — valid but
	// worth surfacing.
	DegenerateSteps int
}

// Result is the structured outcome of one solve.
type Result struct {
	// X is the final iterate; graph-sparse under the solve's budget.
	X []float64

	// Support is the sorted set of X's nonzero coordinates.
	Support []int

	// Status reports how the solve terminated.
	Status Status

	// Trace holds one record per completed epoch, oldest first.
	Trace []TraceRecord
}
