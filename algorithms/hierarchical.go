// SPDX-License-Identifier: MIT

package algorithms

import (
	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/pairwise"
)

// Hierarchical performs single-linkage agglomerative clustering and returns the
// merge edges.
//
// Every node starts as a singleton cluster. Pairs are visited by similarity
// descending (stable); whenever a pair's similarity is strictly above threshold
// and its endpoints sit in different clusters, the pair is emitted and the
// second cluster is appended to the first. Clusters are plain member lists, so
// each lookup is a linear scan.
//
// Complexity: O(N²·D + P·log P + M·N) for P pairs and M merges (M < N).
func Hierarchical(nodes []core.Node, threshold float64) []core.Edge {
	edges := make([]core.Edge, 0)
	n := len(nodes)
	if n < 2 {
		return edges
	}

	clusters := make([][]int, n)
	for i := range clusters {
		clusters[i] = []int{i}
	}

	pairs := pairwise.Pairs(nodes)
	pairwise.SortDescending(pairs)

	for _, p := range pairs {
		if !(p.Similarity > threshold) {
			continue
		}
		ci, cj := clusterOf(clusters, p.I), clusterOf(clusters, p.J)
		if ci == cj {
			continue
		}
		edges = append(edges, edgeBetween(nodes, p.I, p.J, p.Similarity))

		clusters[ci] = append(clusters[ci], clusters[cj]...)
		clusters = append(clusters[:cj], clusters[cj+1:]...)
	}

	return edges
}

// clusterOf returns the index of the cluster holding member, or −1.
func clusterOf(clusters [][]int, member int) int {
	for ci, c := range clusters {
		for _, m := range c {
			if m == member {
				return ci
			}
		}
	}

	return -1
}
