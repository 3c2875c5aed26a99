// Package solver - hyperparameters as functional options.
package solver

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// defaultDivergenceNorm aborts a solve once ‖x‖ reaches it; large
// learning rates blow the iterate up well past any sane signal scale
// long before float overflow.
const defaultDivergenceNorm = 1e5

// Options collects the solve hyperparameters. Use DefaultOptions() and
// the With* helpers; Solve validates the final combination at Init.
type Options struct {
	// StepSize is the learning rate η of the inner gradient step.
	StepSize float64

	// MaxEpochs bounds the number of snapshot/inner-loop cycles.
	MaxEpochs int

	// MaxIters, when positive, bounds the cumulative inner-step count
	// across all epochs. Zero means no extra bound beyond MaxEpochs.
	MaxIters int

	// BatchSize is the inner mini-batch block size b; the epoch runs
	// rows/b inner steps (SnapshotBatch/b when SnapshotBatch is set).
	BatchSize int

	// SnapshotBatch selects the epoch reference gradient. Zero (the
	// default) computes the full gradient at the snapshot, the SVRG
	// regime. A positive value B samples one B-row block per epoch and
	// uses its gradient as the reference, the SCSG regime, with B/b
	// inner steps per epoch. Setting it equal to BatchSize degenerates
	// to plain stochastic IHT: one block step per epoch.
	SnapshotBatch int

	// Tolerance stops the solve once the residual norm falls to it.
	// Zero falls back to the budget's Eps.
	Tolerance float64

	// Gamma is the sparsity-window slack forwarded to the projections.
	Gamma float64

	// BisectMaxIter bounds each projection's cost-multiplier search.
	BisectMaxIter int

	// Seed drives all mini-batch sampling; zero selects the fixed
	// default stream so runs stay reproducible either way.
	Seed int64

	// DivergenceNorm aborts the solve once ‖x‖ reaches it.
	DivergenceNorm float64

	// WarmStart, when non-nil, replaces the zero start point; it is
	// tail-projected at Init so the first iterate is already feasible.
	WarmStart []float64

	// Logger receives per-epoch progress and degenerate-projection
	// events. Defaults to a discard logger.
	Logger logrus.FieldLogger
}

// Option is a functional option mutating Options.
type Option func(*Options)

// WithStepSize sets the learning rate η.
func WithStepSize(eta float64) Option {
	return func(o *Options) { o.StepSize = eta }
}

// WithMaxEpochs bounds the number of epochs.
func WithMaxEpochs(n int) Option {
	return func(o *Options) { o.MaxEpochs = n }
}

// WithMaxIters bounds the cumulative inner-step count (0 = unbounded).
func WithMaxIters(n int) Option {
	return func(o *Options) { o.MaxIters = n }
}

// WithBatchSize sets the inner mini-batch size b.
func WithBatchSize(b int) Option {
	return func(o *Options) { o.BatchSize = b }
}

// WithSnapshotBatch sets the per-epoch reference-gradient block size
// (0 = full gradient).
func WithSnapshotBatch(n int) Option {
	return func(o *Options) { o.SnapshotBatch = n }
}

// WithTolerance overrides the stopping tolerance (0 = use budget Eps).
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithGamma sets the projection sparsity-window slack.
func WithGamma(gamma float64) Option {
	return func(o *Options) { o.Gamma = gamma }
}

// WithBisectMaxIter bounds each projection's bisection search.
func WithBisectMaxIter(n int) Option {
	return func(o *Options) { o.BisectMaxIter = n }
}

// WithSeed fixes the sampling RNG stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithDivergenceNorm overrides the ‖x‖ abort guard.
func WithDivergenceNorm(limit float64) Option {
	return func(o *Options) { o.DivergenceNorm = limit }
}

// WithWarmStart supplies a non-zero start point. The slice is copied at
// Init; the caller's buffer is never mutated.
func WithWarmStart(x []float64) Option {
	return func(o *Options) { o.WarmStart = x }
}

// WithLogger routes progress logging to the given logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions mirrors the regime the algorithm was tuned in:
// η=1e-3, 15 epochs, single-sample inner batches, 10% sparsity slack,
// 50 bisection growths, divergence guard at 1e5.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		StepSize:       1e-3,
		MaxEpochs:      15,
		MaxIters:       0,
		BatchSize:      1,
		SnapshotBatch:  0,
		Tolerance:      0,
		Gamma:          0.1,
		BisectMaxIter:  50,
		Seed:           0,
		DivergenceNorm: defaultDivergenceNorm,
		Logger:         nil,
	}
}

// validate checks the assembled options against the dataset size.
//
// Complexity: O(1).
func (o *Options) validate(rows int) error {
	if math.IsNaN(o.StepSize) || math.IsInf(o.StepSize, 0) || o.StepSize <= 0 {
		return ErrBadStepSize
	}
	if o.MaxEpochs < 1 {
		return ErrBadEpochs
	}
	if o.BatchSize < 1 || o.BatchSize > rows {
		return ErrBadBatchSize
	}
	if o.SnapshotBatch < 0 || o.SnapshotBatch > rows {
		return ErrBadSnapshotBatch
	}
	if math.IsNaN(o.Gamma) || o.Gamma < 0 {
		return ErrBadGamma
	}
	if o.BisectMaxIter < 1 {
		return ErrBadBisectIter
	}
	if math.IsNaN(o.DivergenceNorm) || o.DivergenceNorm <= 0 {
		return ErrBadDivergenceNorm
	}

	return nil
}

// discardLogger returns the default no-op logger.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
