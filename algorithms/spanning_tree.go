// SPDX-License-Identifier: MIT

package algorithms

import (
	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/dsu"
	"github.com/katalvlaran/simgraph/pairwise"
)

// SpanningTree returns a maximum-weight spanning forest of the graph formed by
// the pairs with similarity strictly above minSim (Kruskal, heaviest first).
//
// Steps:
//  1. Collect candidate pairs with similarity > minSim, row-major order.
//  2. Stable-sort them by similarity descending; ties keep row-major order.
//  3. Walk the sorted pairs with a DisjointSet keyed by node ID, accepting a pair
//     iff its endpoints are not yet connected, then union them.
//  4. Stop after N−1 accepted edges.
//
// The result has no cycles and at most N−1 edges; it is a forest, not a single
// tree, when the thresholded graph is disconnected.
//
// Complexity: O(N²·D + P·log P) for P candidate pairs.
func SpanningTree(nodes []core.Node, minSim float64) []core.Edge {
	edges := make([]core.Edge, 0)
	n := len(nodes)
	if n < 2 {
		return edges
	}

	// 1. Candidate pairs above the threshold.
	all := pairwise.Pairs(nodes)
	candidates := make([]pairwise.Pair, 0, len(all))
	for _, p := range all {
		if p.Similarity > minSim {
			candidates = append(candidates, p)
		}
	}

	// 2. Heaviest first.
	pairwise.SortDescending(candidates)

	// 3. Kruskal.
	forest := dsu.NewWithCapacity(n)
	for _, p := range candidates {
		a, b := nodes[p.I].ID, nodes[p.J].ID
		if forest.Connected(a, b) {
			continue
		}
		forest.Union(a, b)
		edges = append(edges, edgeBetween(nodes, p.I, p.J, p.Similarity))

		// 4. A spanning tree over n nodes has n−1 edges.
		if len(edges) == n-1 {
			break
		}
	}

	return edges
}
