// Package pcsf implements the approximate Prize-Collecting Steiner Forest
// primitive shared by the head and tail graph-sparsity projectors.
//
// Given an immutable core.Graph, a per-node prize vector and growth
// options (maximum number of trees g, purchase budget B, cost scale λ),
// Grow returns a Forest of at most g node-disjoint trees that
// approximately maximizes the enclosed prize subject to the total cost of
// purchased edges staying within B.
//
// Algorithm — Goemans–Williamson style primal-dual moat growth followed
// by a strong pruning pass:
//
//  1. Every node with positive prize starts as its own active singleton
//     tree; zero- or negative-prize nodes start dormant.
//  2. All active trees grow their dual moats synchronously. An edge whose
//     endpoint potentials cover its (scaled) cost becomes tight; the two
//     trees it joins merge, combining prizes, moats and purchased edges.
//  3. A tree deactivates when its moat exhausts its prize, or when the
//     tight edge joining it to a neighbor cannot be afforded within the
//     remaining global budget.
//  4. Growth ends when no active tree remains; at most g trees are then
//     kept, ranked by net value (prize minus scaled cost).
//  5. Each kept tree is pruned bottom-up: a leaf whose attaching edge
//     costs more than the prize it newly captures is removed, repeatedly,
//     until every remaining leaf pays for itself.
//
// The growth/pruning pair — not a greedy heuristic — is what carries the
// constant-factor approximation relative to the optimal forest; the
// pruning pass must never be skipped. The cost scale λ multiplies edge
// costs during tightness and pruning decisions only; the budget B is
// always accounted in original costs, so feasibility is invariant under
// λ. Callers binary-search λ to steer the forest's node count (see
// package projection).
//
// Determinism: at equal event times an exhaustion beats a tight edge,
// the lowest root wins among exhaustions, and the lowest edge index wins
// among tight edges; identical inputs produce identical forests.
//
// Edge cases:
//
//	– all prizes ≤ 0     → empty forest (valid, not an error).
//	– CostBudget == 0    → no edge can be purchased; singleton trees only.
//
// Complexity: O(V·(V+E)) time worst case (each growth iteration scans all
// edges and processes one of at most O(V) merge/deactivation events),
// O(V+E) space. The intended regime is the modest graph sizes of
// graph-sparse recovery (hundreds to low thousands of nodes).
package pcsf
