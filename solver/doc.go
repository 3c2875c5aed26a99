// Package solver implements the SVR-GraphIHT driver: stochastic
// variance-reduced iterative hard thresholding under graph-structured
// sparsity constraints.
//
// One call to Solve runs the full state machine
//
//	Init → EpochStart → InnerStep… → EpochEnd → (repeat | Converged | MaxIterReached)
//
// over an immutable core.Graph, a gradient.LeastSquares oracle and a
// projection.Budget:
//
//   - Init validates the budget and hyperparameters and makes the start
//     point feasible (zero vector, or a warm start tail-projected onto
//     the budget).
//   - EpochStart refreshes the variance-reduction snapshot and its
//     reference gradient μ: the full batch gradient at the current
//     iterate, computed by the oracle's parallel reduction (SVRG), or
//     the gradient of one sampled SnapshotBatch block (SCSG, selected
//     with WithSnapshotBatch). SnapshotBatch equal to BatchSize runs
//     one raw block step per epoch, plain stochastic IHT.
//   - Each InnerStep samples a mini-batch block, forms the
//     variance-reduced estimate g(x_t, block) − g(x̃, block) + μ (the
//     plain stochastic gradient during the first epoch, before a
//     trustworthy snapshot exists), restricts the step to the
//     head-projected support, and re-projects the result through the
//     tail oracle so the iterate stays graph-sparse at every step.
//   - EpochEnd appends a trace record and decides: residual at or below
//     tolerance → Converged; epoch or iteration limit hit →
//     MaxIterReached; an iterate that went non-finite or beyond the
//     divergence guard → the solve aborts with ErrNumericalDivergence,
//     returning the last valid trace for diagnostics.
//
// Converged and MaxIterReached are both successful outcomes,
// distinguished only by Result.Status. A head or tail projection coming
// back empty is a valid degenerate step: it is counted in the epoch's
// trace record and logged, never failed.
//
// Determinism: all sampling flows through an explicit RNG seeded from
// Options.Seed — never package-global randomness — so a fixed seed and
// fixed inputs reproduce the trace bit for bit. Independent trials with
// different seeds share only the read-only graph and dataset and may run
// concurrently without synchronization.
//
// Progress logging goes through an optional logrus.FieldLogger
// (WithLogger); by default it is discarded.
package solver
