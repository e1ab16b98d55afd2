// SPDX-License-Identifier: MIT

package algorithms

import (
	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/pairwise"
	"github.com/katalvlaran/simgraph/pathfinder"
)

// Pathfinder converts similarities to distances (1 − similarity), prunes them
// with Pathfinder network scaling under Minkowski exponent r, and keeps the
// minimal links whose similarity 1 − d is strictly above minSim. Weights are
// reported as similarities computed from the relaxed distance.
//
// Complexity: O(N²·D + N³).
func Pathfinder(nodes []core.Node, r, minSim float64) ([]core.Edge, error) {
	edges := make([]core.Edge, 0)
	if len(nodes) < 2 {
		return edges, nil
	}

	dist, err := pairwise.Distance(nodes)
	if err != nil {
		return nil, err
	}
	links, err := pathfinder.Network(dist, r)
	if err != nil {
		return nil, err
	}
	for _, l := range links {
		if sim := pairwise.ToSimilarity(l.Distance); sim > minSim {
			edges = append(edges, edgeBetween(nodes, l.I, l.J, sim))
		}
	}

	return edges, nil
}
