// Package pcsf - bottom-up strong pruning of grown trees.
package pcsf

import (
	"sort"

	"github.com/Derek-Fox/graph-scsg-iht/core"
)

// pruneTree removes cost-ineffective leaves from one candidate tree and
// returns the tightened Tree. The second result is false when nothing of
// positive prize survives, in which case the tree is dropped from the
// forest entirely.
//
// Rule (fixed, documented): while some leaf v exists whose attaching edge
// e satisfies λ·cost(e) > prize(v), remove v and e. Removing a leaf only
// forfeits that leaf's own prize, so the scan is a plain cascade over
// degrees — no subtree accounting is needed. Leaves are examined in
// ascending node order for determinism.
//
// Complexity: O(T log T) for a tree of T nodes (sorting dominates).
func (gr *grower) pruneTree(nodes []int, edges []core.EdgeID) (Tree, bool) {
	sort.Ints(nodes)

	// Singleton: no edges to prune; keep iff it carries positive prize.
	if len(edges) == 0 {
		if len(nodes) != 1 || gr.prizes[nodes[0]] <= 0 {
			return Tree{}, false
		}

		return Tree{
			Nodes: nodes,
			Edges: nil,
			Prize: gr.prizes[nodes[0]],
			Cost:  0,
		}, true
	}

	// Local adjacency over the purchased edges only.
	type half struct {
		edge core.EdgeID // attaching edge
		to   int         // opposite endpoint
	}
	var (
		adj     = make(map[int][]half, len(nodes))
		deg     = make(map[int]int, len(nodes))
		removed = make(map[core.EdgeID]bool, len(edges))
		gone    = make(map[int]bool, len(nodes))
	)
	var (
		id   core.EdgeID
		u, w int
	)
	for _, id = range edges {
		u, w = gr.g.Endpoints(id)
		adj[u] = append(adj[u], half{edge: id, to: w})
		adj[w] = append(adj[w], half{edge: id, to: u})
		deg[u]++
		deg[w]++
	}

	// Seed the cascade with current leaves, ascending.
	queue := make([]int, 0, len(nodes))
	var v int
	for _, v = range nodes {
		if deg[v] == 1 {
			queue = append(queue, v)
		}
	}

	var (
		h      half
		att    half
		found  bool
		scaled float64
	)
	for len(queue) > 0 {
		v = queue[0]
		queue = queue[1:]
		if gone[v] || deg[v] != 1 {
			continue // stale entry: degree changed since enqueue
		}
		// Locate the single surviving attaching edge.
		found = false
		for _, h = range adj[v] {
			if !removed[h.edge] && !gone[h.to] {
				att = h
				found = true

				break
			}
		}
		if !found {
			continue
		}
		scaled = gr.opts.CostScale * gr.g.Cost(att.edge)
		if scaled <= gr.prizes[v] {
			continue // leaf pays for itself; keep it
		}
		// Drop the leaf and its edge; the neighbor may become a leaf.
		gone[v] = true
		removed[att.edge] = true
		deg[v] = 0
		deg[att.to]--
		if deg[att.to] == 1 {
			queue = append(queue, att.to)
		}
	}

	// Rebuild the surviving tree.
	var (
		keptNodes = make([]int, 0, len(nodes))
		keptEdges = make([]core.EdgeID, 0, len(edges))
		prize     float64
		cost      float64
	)
	for _, v = range nodes {
		if gone[v] {
			continue
		}
		keptNodes = append(keptNodes, v)
		prize += gr.prizes[v]
	}
	for _, id = range edges {
		if removed[id] {
			continue
		}
		keptEdges = append(keptEdges, id)
		cost += gr.g.Cost(id)
	}

	if len(keptNodes) == 0 || prize <= 0 {
		return Tree{}, false
	}

	return Tree{
		Nodes: keptNodes,
		Edges: keptEdges,
		Prize: prize,
		Cost:  cost,
	}, true
}
