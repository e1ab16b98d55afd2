// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/simgraph/algorithms"
)

// TestHierarchical_MergesOnce verifies a pair already joined transitively is skipped.
func TestHierarchical_MergesOnce(t *testing.T) {
	nodes := mkNodes([]float64{1, 0}, []float64{1, 0}, []float64{1, 0})
	edges := algorithms.Hierarchical(nodes, 0.5)
	assert.Equal(t, []string{"n0-n1", "n0-n2"}, pairsOf(edges))
}

// TestHierarchical_StopsAtThreshold verifies clusters are not bridged below the cut.
func TestHierarchical_StopsAtThreshold(t *testing.T) {
	edges := algorithms.Hierarchical(twoClusters(), 0.5)
	assert.Equal(t, []string{"n0-n1", "n2-n3"}, pairsOf(edges))

	edges = algorithms.Hierarchical(twoClusters(), -0.5)
	assert.Len(t, edges, 3, "a cut below every similarity merges everything")
}

// TestHierarchical_SingleLinkageOrder verifies merges follow descending similarity.
func TestHierarchical_SingleLinkageOrder(t *testing.T) {
	nodes := angles(0, 50, 55, 100)
	edges := algorithms.Hierarchical(nodes, 0)
	assert.Equal(t, []string{"n1-n2", "n2-n3", "n0-n1"}, pairsOf(edges))
}
