// SPDX-License-Identifier: MIT

package algorithms

import (
	"math"

	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/pairwise"
)

// Threshold keeps every unordered pair whose similarity is strictly above minSim.
//
// Complexity: O(N²·D).
func Threshold(nodes []core.Node, minSim float64) []core.Edge {
	edges := make([]core.Edge, 0)
	if len(nodes) < 2 {
		return edges
	}
	for _, p := range pairwise.Pairs(nodes) {
		if p.Similarity > minSim {
			edges = append(edges, edgeBetween(nodes, p.I, p.J, p.Similarity))
		}
	}

	return edges
}

// AdaptiveCutoff returns mean + AdaptiveStdDevFactor·σ of sims, with σ the
// population standard deviation. Returns NaN for an empty input.
func AdaptiveCutoff(sims []float64) float64 {
	if len(sims) == 0 {
		return math.NaN()
	}

	var sum float64
	for _, s := range sims {
		sum += s
	}
	mean := sum / float64(len(sims))

	var sq float64
	for _, s := range sims {
		d := s - mean
		sq += d * d
	}
	std := math.Sqrt(sq / float64(len(sims)))

	return mean + AdaptiveStdDevFactor*std
}

// AdaptiveThreshold keeps pairs strictly above the cutoff derived from the
// distribution of all pair similarities (see AdaptiveCutoff). When every pair
// has the same similarity, σ = 0 and the cutoff equals that value, so nothing
// is kept.
func AdaptiveThreshold(nodes []core.Node) []core.Edge {
	edges := make([]core.Edge, 0)
	if len(nodes) < 2 {
		return edges
	}

	pairs := pairwise.Pairs(nodes)
	sims := make([]float64, len(pairs))
	for k, p := range pairs {
		sims[k] = p.Similarity
	}
	cutoff := AdaptiveCutoff(sims)

	for _, p := range pairs {
		if p.Similarity > cutoff {
			edges = append(edges, edgeBetween(nodes, p.I, p.J, p.Similarity))
		}
	}

	return edges
}
