// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/simgraph/algorithms"
	"github.com/katalvlaran/simgraph/core"
)

// TestKNN_BothDirectionsKept verifies a mutual nearest pair is emitted twice.
func TestKNN_BothDirectionsKept(t *testing.T) {
	edges := algorithms.KNearestNeighbors(trio(), 1, 0.5)
	assert.Equal(t, []string{"n0-n1", "n1-n0"}, pairsOf(edges))
	assert.Len(t, core.Dedup(edges), 1)
}

// TestKNN_StrictMinSim verifies the strict threshold per discovery.
func TestKNN_StrictMinSim(t *testing.T) {
	nodes := mkNodes([]float64{1, 0}, []float64{1, 0})
	assert.Empty(t, algorithms.KNearestNeighbors(nodes, 3, 1.0))
	assert.Len(t, algorithms.KNearestNeighbors(nodes, 3, 0.5), 2)
}

// TestKNN_KBounds verifies k ≤ 0 and k ≥ N, and that self is never emitted.
func TestKNN_KBounds(t *testing.T) {
	nodes := trio()
	assert.Empty(t, algorithms.KNearestNeighbors(nodes, 0, -2))
	assert.Empty(t, algorithms.KNearestNeighbors(nodes, -1, -2))

	edges := algorithms.KNearestNeighbors(nodes, 10, -2)
	assert.Len(t, edges, 6, "every ordered pair, no self-loops")
	for _, e := range edges {
		assert.NotEqual(t, e.Source, e.Target)
	}
}

// TestKNN_TiesKeepNodeOrder verifies the stable ranking.
func TestKNN_TiesKeepNodeOrder(t *testing.T) {
	nodes := mkNodes([]float64{1, 0}, []float64{1, 0}, []float64{1, 0})
	edges := algorithms.KNearestNeighbors(nodes, 1, 0.5)
	assert.Equal(t, []string{"n0-n1", "n1-n0", "n2-n0"}, pairsOf(edges))
}

// TestKNN_RanksByDescendingSimilarity verifies each node keeps its k best.
func TestKNN_RanksByDescendingSimilarity(t *testing.T) {
	nodes := angles(0, 10, 30, 70)
	edges := algorithms.KNearestNeighbors(nodes, 2, 0)
	assert.Equal(t, []string{
		"n0-n1", "n0-n2",
		"n1-n0", "n1-n2",
		"n2-n1", "n2-n0",
		"n3-n2", "n3-n1",
	}, pairsOf(edges))
}
