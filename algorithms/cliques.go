// SPDX-License-Identifier: MIT

package algorithms

import (
	"github.com/katalvlaran/simgraph/clique"
	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/pairwise"
	"github.com/katalvlaran/simgraph/vecmath"
)

// maximalCliqueIndices returns the maximal cliques (as node indices) of size ≥
// MinCliqueSize in the graph linking pairs with similarity ≥ minSim.
func maximalCliqueIndices(nodes []core.Node, minSim float64) ([][]int, error) {
	if len(nodes) < MinCliqueSize {
		return [][]int{}, nil
	}
	adj, err := pairwise.Adjacency(nodes, minSim)
	if err != nil {
		return nil, err
	}

	return clique.MaximalAtLeast(adj, MinCliqueSize), nil
}

// MaximalCliques returns the retained cliques as lists of node IDs, each in
// node order, in enumeration order.
func MaximalCliques(nodes []core.Node, minSim float64) ([][]string, error) {
	found, err := maximalCliqueIndices(nodes, minSim)
	if err != nil {
		return nil, err
	}
	out := make([][]string, len(found))
	for c, members := range found {
		ids := make([]string, len(members))
		for k, idx := range members {
			ids[k] = nodes[idx].ID
		}
		out[c] = ids
	}

	return out, nil
}

// Cliques emits one edge per unordered pair inside every maximal clique of
// size ≥ MinCliqueSize. Note the inclusive adjacency test (similarity ≥
// minSim). A pair shared by overlapping cliques is emitted once per clique.
func Cliques(nodes []core.Node, minSim float64) ([]core.Edge, error) {
	edges := make([]core.Edge, 0)
	found, err := maximalCliqueIndices(nodes, minSim)
	if err != nil {
		return nil, err
	}
	for _, members := range found {
		for a := 0; a < len(members); a++ {
			for b := a + 1; b < len(members); b++ {
				i, j := members[a], members[b]
				sim := vecmath.Cosine(nodes[i].Embedding, nodes[j].Embedding)
				edges = append(edges, edgeBetween(nodes, i, j, sim))
			}
		}
	}

	return edges, nil
}
