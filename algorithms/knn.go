// SPDX-License-Identifier: MIT

package algorithms

import (
	"sort"

	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/vecmath"
)

// neighbor is one ranked candidate in a node's KNN list.
type neighbor struct {
	idx int
	sim float64
}

// KNearestNeighbors links every node to its top k most similar nodes whose
// similarity is strictly above minSim.
//
// Each node ranks all nodes independently (itself at the sentinel similarity
// −1, never emitted), stable-sorted by similarity descending so ties keep node
// order. A pair found from both endpoints appears twice, once per direction;
// the result is not deduplicated. k ≤ 0 yields no edges.
//
// Complexity: O(N²·D + N²·log N).
func KNearestNeighbors(nodes []core.Node, k int, minSim float64) []core.Edge {
	edges := make([]core.Edge, 0)
	n := len(nodes)
	if n < 2 || k <= 0 {
		return edges
	}

	ranked := make([]neighbor, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sim := selfSimilarity
			if j != i {
				sim = vecmath.Cosine(nodes[i].Embedding, nodes[j].Embedding)
			}
			ranked[j] = neighbor{idx: j, sim: sim}
		}
		sort.SliceStable(ranked, func(a, b int) bool {
			return ranked[a].sim > ranked[b].sim
		})

		limit := k
		if limit > n {
			limit = n
		}
		for _, nb := range ranked[:limit] {
			if nb.idx == i {
				continue
			}
			if nb.sim > minSim {
				edges = append(edges, edgeBetween(nodes, i, nb.idx, nb.sim))
			}
		}
	}

	return edges
}
