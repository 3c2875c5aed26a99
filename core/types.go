// Package core - types, sentinel errors and construction options for the
// immutable graph model.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by graph construction.
var (
	// ErrInvalidGraph is the base sentinel for all construction failures.
	// Every specific construction error wraps it, so callers may match the
	// whole family with errors.Is(err, ErrInvalidGraph).
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0..n-1].
	ErrNodeOutOfRange = fmt.Errorf("%w: node index out of range", ErrInvalidGraph)

	// ErrNegativeCost indicates an edge with a negative cost.
	ErrNegativeCost = fmt.Errorf("%w: negative edge cost", ErrInvalidGraph)

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	// Self-loops carry no connectivity information and are rejected.
	ErrSelfLoop = fmt.Errorf("%w: self-loop edge", ErrInvalidGraph)

	// ErrPrizeMismatch indicates len(prizes) != NodeCount.
	ErrPrizeMismatch = fmt.Errorf("%w: prize slice length mismatch", ErrInvalidGraph)

	// ErrNegativePrize indicates a negative node prize.
	ErrNegativePrize = fmt.Errorf("%w: negative node prize", ErrInvalidGraph)
)

// EdgeID identifies an edge by its position in the construction slice.
type EdgeID int

// Edge is one undirected, weighted edge supplied at construction time.
//
// Fields:
//
//	U, V  — endpoint node indices, each in [0..n-1], U != V.
//	Cost  — non-negative traversal cost.
type Edge struct {
	U    int     // first endpoint
	V    int     // second endpoint
	Cost float64 // non-negative edge cost
}

// IncidentEdge is one entry of a node's adjacency list: the edge identity
// plus the opposite endpoint, precomputed so traversals never branch on
// edge orientation.
type IncidentEdge struct {
	ID   EdgeID  // identity of the underlying edge
	To   int     // the endpoint opposite to the queried node
	Cost float64 // copy of the edge cost (avoids one indirection in hot loops)
}

// Options holds construction-time configuration for NewGraph.
// Use DefaultOptions() and the With* helpers rather than filling it by hand.
type Options struct {
	// Prizes attaches a non-negative prize to each node. When nil every
	// node's prize is zero. Length must equal the node count.
	Prizes []float64
}

// Option is a functional option mutating Options.
type Option func(*Options)

// WithPrizes attaches per-node prizes to the graph. The slice is copied at
// construction so later caller mutation cannot break immutability.
func WithPrizes(prizes []float64) Option {
	return func(o *Options) {
		o.Prizes = prizes
	}
}

// DefaultOptions returns the zero configuration: no node prizes.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{Prizes: nil}
}
