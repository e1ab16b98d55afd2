// SPDX-License-Identifier: MIT

package algorithms

import (
	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/pairwise"
	"github.com/katalvlaran/simgraph/vecmath"
)

// unassigned marks a node without a community in pass 1.
const unassigned = -1

// Communities performs the seeding pass of Community: nodes are visited in
// order; each node still unassigned seeds a new community and pulls in every
// unassigned node whose similarity to the seed is strictly above seedCut.
//
// Membership is decided against the seed only, never transitively, so two
// members of one community may be dissimilar to each other. Community indices
// start at 0 and follow seed order. The result is indexed like nodes.
//
// Complexity: O(N²·D) worst case.
func Communities(nodes []core.Node, seedCut float64) []int {
	n := len(nodes)
	comm := make([]int, n)
	for i := range comm {
		comm[i] = unassigned
	}

	next := 0
	for i := 0; i < n; i++ {
		if comm[i] != unassigned {
			continue
		}
		comm[i] = next
		for j := 0; j < n; j++ {
			if comm[j] != unassigned {
				continue
			}
			if vecmath.Cosine(nodes[i].Embedding, nodes[j].Embedding) > seedCut {
				comm[j] = next
			}
		}
		next++
	}

	return comm
}

// CommunityMembership maps node IDs to their pass-1 community index.
func CommunityMembership(nodes []core.Node, seedCut float64) map[string]int {
	comm := Communities(nodes, seedCut)
	out := make(map[string]int, len(nodes))
	for i, c := range comm {
		out[nodes[i].ID] = c
	}

	return out
}

// Community runs the two-pass community strategy:
//  1. Communities(nodes, communityThreshold) assigns shallow communities.
//  2. Every pair is emitted when its similarity is strictly above threshold
//     (same community) or strictly above communityThreshold (different
//     communities).
func Community(nodes []core.Node, threshold, communityThreshold float64) []core.Edge {
	edges := make([]core.Edge, 0)
	if len(nodes) < 2 {
		return edges
	}

	comm := Communities(nodes, communityThreshold)
	for _, p := range pairwise.Pairs(nodes) {
		cut := communityThreshold
		if comm[p.I] == comm[p.J] {
			cut = threshold
		}
		if p.Similarity > cut {
			edges = append(edges, edgeBetween(nodes, p.I, p.J, p.Similarity))
		}
	}

	return edges
}
