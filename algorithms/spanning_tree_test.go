// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/simgraph/algorithms"
	"github.com/katalvlaran/simgraph/dsu"
)

// TestSpanningTree_ThreeNodes verifies the single edge (n0,n1) and nothing touching n2.
func TestSpanningTree_ThreeNodes(t *testing.T) {
	edges := algorithms.SpanningTree(trio(), 0.5)
	assert.Equal(t, []string{"n0-n1"}, pairsOf(edges))
}

// TestSpanningTree_Forest verifies a disconnected thresholded graph yields a forest.
func TestSpanningTree_Forest(t *testing.T) {
	edges := algorithms.SpanningTree(twoClusters(), 0.3)
	assert.Equal(t, []string{"n0-n1", "n2-n3"}, pairsOf(edges))
}

// TestSpanningTree_TiesAndCap verifies stable tie-breaking and the N−1 cap.
func TestSpanningTree_TiesAndCap(t *testing.T) {
	nodes := mkNodes([]float64{1, 0}, []float64{1, 0}, []float64{1, 0})
	edges := algorithms.SpanningTree(nodes, 0.3)
	assert.Equal(t, []string{"n0-n1", "n0-n2"}, pairsOf(edges))
}

// TestSpanningTree_MaximumWeightAcyclic verifies heaviest-first acceptance and acyclicity.
func TestSpanningTree_MaximumWeightAcyclic(t *testing.T) {
	nodes := angles(0, 10, 30, 60, 100, 150)
	edges := algorithms.SpanningTree(nodes, -1)
	assert.Len(t, edges, len(nodes)-1)

	// Neighbouring angles are always the heaviest links on a fan.
	assert.ElementsMatch(t, []string{"n0-n1", "n1-n2", "n2-n3", "n3-n4", "n4-n5"}, pairsOf(edges))

	seen := dsu.New()
	for _, e := range edges {
		assert.True(t, seen.Union(e.Source, e.Target), "edge %v closes a cycle", e)
	}
	for i := 1; i < len(edges); i++ {
		assert.GreaterOrEqual(t, edges[i-1].Weight, edges[i].Weight)
	}
}
