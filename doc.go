// Package scsgiht is a graph-structured sparse recovery toolkit: it
// estimates a high-dimensional signal that is known to concentrate on a
// small, connected region of a fixed graph, from linear measurements.
//
// 🚀 What is graph-scsg-iht?
//
//	A stochastic variance-reduced iterative hard thresholding (IHT)
//	solver whose thresholding step is a graph-sparsity projection:
//		• core/       — immutable weighted graph in CSR form, the structure prior
//		• pcsf/       — prize-collecting Steiner forest growth with strong pruning
//		• projection/ — head/tail oracles steering forest size via cost bisection
//		• gradient/   — least-squares oracle over a dense sensing matrix
//		• solver/     — the SVRG-style epoch loop tying it all together
//
// ✨ Why this layering?
//
//   - Each stage is independently testable: the forest grower against
//     hand-checked moats, the projections against brute-forced optima,
//     the solver against exact-recovery scenarios.
//   - The projection budget (s nonzeros, g components, B edge cost) is
//     the single contract every stage honors, so a returned iterate is
//     always feasible.
//   - Determinism throughout: fixed tie-breaking in the forest growth,
//     explicit seeds for mini-batch sampling, reproducible traces.
//
// Quick ASCII example:
//
//	(0)──(1)──(2)──(3)──(4)      a path graph prior
//	      ▲    ███  ██           the signal lives on the pair {2,3}
//
//	Tail projection with budget s=2, g=1, B=2 recovers exactly {2,3};
//	the solver iterates gradient steps and such projections until the
//	measurement residual vanishes.
//
// See each subpackage's doc.go for contracts, complexity bounds and
// runnable examples.
//
//	go get github.com/Derek-Fox/graph-scsg-iht
package scsgiht
