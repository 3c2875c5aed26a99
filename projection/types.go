// Package projection - Budget, sentinel errors and functional options.
package projection

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Head and Tail.
var (
	// ErrInvalidBudget is the base sentinel for budget validation
	// failures; every specific budget error wraps it.
	ErrInvalidBudget = errors.New("projection: invalid budget")

	// ErrBadSparsity indicates S < 1 or S > n.
	ErrBadSparsity = fmt.Errorf("%w: sparsity S must satisfy 1 <= S <= n", ErrInvalidBudget)

	// ErrBadComponents indicates G < 1.
	ErrBadComponents = fmt.Errorf("%w: component bound G must be at least 1", ErrInvalidBudget)

	// ErrBadCostBound indicates B < 0 or NaN.
	ErrBadCostBound = fmt.Errorf("%w: cost bound B must be non-negative", ErrInvalidBudget)

	// ErrBadSlack indicates Eps <= 0 or NaN.
	ErrBadSlack = fmt.Errorf("%w: slack Eps must be positive", ErrInvalidBudget)

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("projection: graph is nil")

	// ErrVectorMismatch indicates len(x) != graph.NodeCount().
	ErrVectorMismatch = errors.New("projection: vector length mismatch")

	// ErrNonFiniteVector indicates a NaN or infinite coordinate in the
	// vector being projected. The solver maps this to its numerical
	// divergence policy.
	ErrNonFiniteVector = errors.New("projection: non-finite vector coordinate")
)

// Budget is the graph-sparsity constraint fixed for one solve:
//
//	S   — sparsity bound: at most S support nodes.
//	G   — component bound: the support induces at most G connected
//	      subgraphs.
//	B   — cost bound: total edge cost of the support forest.
//	Eps — approximation/convergence slack; the solver also uses it as
//	      its default stopping tolerance.
//
// A Budget is immutable by convention: validated once at solve entry and
// passed by value afterwards.
type Budget struct {
	S   int     // sparsity bound
	G   int     // maximum connected components
	B   float64 // total edge cost bound
	Eps float64 // approximation slack
}

// Validate checks the budget against a graph of n nodes.
//
// Errors: ErrBadSparsity, ErrBadComponents, ErrBadCostBound, ErrBadSlack
// — all wrapping ErrInvalidBudget.
//
// Complexity: O(1).
func (b Budget) Validate(n int) error {
	if b.S < 1 || b.S > n {
		return ErrBadSparsity
	}
	if b.G < 1 {
		return ErrBadComponents
	}
	if math.IsNaN(b.B) || b.B < 0 {
		return ErrBadCostBound
	}
	if math.IsNaN(b.Eps) || b.Eps <= 0 {
		return ErrBadSlack
	}

	return nil
}

// Options tunes the sparsity bisection shared by Head and Tail.
type Options struct {
	// MaxBisect bounds the number of forest growths spent searching for
	// a cost multiplier whose forest lands in the sparsity window.
	MaxBisect int

	// Gamma widens the sparsity window: the bisection accepts forests of
	// up to ceil(S·(1+Gamma)) nodes before trimming enforces S exactly.
	Gamma float64
}

// Option is a functional option mutating Options.
type Option func(*Options)

// WithMaxBisect bounds the bisection iteration count. Values below 1
// panic: that is a programmer error, not a data error.
func WithMaxBisect(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("projection: MaxBisect must be at least 1")
		}
		o.MaxBisect = n
	}
}

// WithGamma sets the sparsity window slack. Negative values panic.
func WithGamma(gamma float64) Option {
	return func(o *Options) {
		if gamma < 0 || math.IsNaN(gamma) {
			panic("projection: Gamma must be non-negative")
		}
		o.Gamma = gamma
	}
}

// DefaultOptions returns the bisection configuration used by the solver:
// 50 growth attempts and a 10% sparsity window, matching the regime the
// projection guarantees were tuned in.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		MaxBisect: 50,
		Gamma:     0.1,
	}
}
