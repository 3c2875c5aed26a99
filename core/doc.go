// Package core provides the immutable graph model shared by every
// projection and solver package in this module.
//
// A Graph is a finite set of nodes 0..n-1 connected by undirected,
// non-negatively weighted edges, with an optional non-negative prize
// attached to each node. Once constructed it never changes: all working
// state (prizes derived from a vector, moats, budgets) is passed
// explicitly into each algorithm call, so a single *Graph may be shared
// by any number of concurrent solves without synchronization.
//
// Representation:
//
//	– Edges are stored once in a flat list indexed by EdgeID.
//	– Adjacency is a CSR-style layout: one contiguous incidence slice
//	  plus per-node offsets, so EdgesOf(v) is an O(1) sub-slice with
//	  no per-call allocation.
//
// Accessor complexity:
//
//	– NodeCount, EdgeCount, Cost, Endpoints, Prize, Degree: O(1)
//	– EdgesOf(v): O(1) to obtain, O(degree(v)) to scan.
//
// Errors (sentinel):
//
//	– ErrInvalidGraph      base class for construction failures (errors.Is).
//	– ErrNodeOutOfRange    an edge endpoint is not in [0..n-1].
//	– ErrNegativeCost      an edge carries a negative cost.
//	– ErrSelfLoop          an edge connects a node to itself.
//	– ErrPrizeMismatch     the prize slice length differs from n.
//	– ErrNegativePrize     a node prize is negative.
//
// Example usage:
//
//	g, err := core.NewGraph(4, []core.Edge{
//	    {U: 0, V: 1, Cost: 1},
//	    {U: 1, V: 2, Cost: 1},
//	    {U: 2, V: 3, Cost: 1},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, ie := range g.EdgesOf(1) {
//	    fmt.Println(ie.To, ie.Cost)
//	}
package core
