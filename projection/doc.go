// Package projection provides the head and tail graph-sparsity
// projection oracles used by the SVR-GraphIHT driver.
//
// Both oracles share one pipeline: derive node prizes from the squared
// coordinates of the vector being projected, steer the pcsf forest
// growth with a cost-multiplier bisection until the forest's node count
// lands inside a sparsity window, then trim each candidate down to the
// sparsity bound s by deleting lowest-prize nodes — cutting a worthless
// pass-through node out of a tree whenever the split it causes still
// fits the component bound g, so prize-carrying coordinates are never
// sacrificed to keep a connector. The two differ only in what they
// return:
//
//   - Head returns the support itself — a set of at most s nodes inducing
//     at most g connected components of total edge cost at most B, chosen
//     to capture a near-maximal fraction of the vector's energy.
//   - Tail returns the vector with every coordinate outside that support
//     zeroed — a graph-sparse vector whose distortion from the input is
//     within a constant factor of the best achievable under the same
//     budget.
//
// The bisection is the classical device for sparsity control in
// approximate graph-sparse projections: multiplying every edge cost by λ
// trades connectivity against sparsity without touching the cost budget
// (pcsf accounts the budget in original costs), so binary-searching λ
// walks the forest size toward the window. Every growth along the way —
// including one at the ceiling multiplier, whose forest is the best
// prize singletons — is trimmed and scored by the prize it retains, and
// the best-scoring support wins. That keeps already-feasible vectors
// fixed points of Tail: a support spread over several components is
// representable even when every cheaper multiplier glues its pieces
// together through worthless connectors.
//
// A projection of a non-zero vector may legitimately come back empty
// (for example when the budget admits nothing): that is a valid
// degenerate result, not an error. Errors are reserved for malformed
// inputs — nil graph, budget violations, dimension mismatches and
// non-finite coordinates.
//
// Invariants (never violated, only possibly under-utilized):
//
//	|support| ≤ s, components(support) ≤ g, cost(support forest) ≤ B.
//
// Tail is idempotent on already-feasible vectors: projecting a second
// time returns the same vector.
package projection
