// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simgraph/algorithms"
	"github.com/katalvlaran/simgraph/core"
)

// TestRegistry_Keys verifies the stable key order and display names.
func TestRegistry_Keys(t *testing.T) {
	assert.Equal(t, []string{
		"threshold", "adaptive", "knn", "mst", "hierarchical", "community", "cliques", "pathfinder",
	}, algorithms.Keys())

	names := make(map[string]string)
	for _, a := range algorithms.All() {
		names[a.Key] = a.DisplayName
		assert.NotNil(t, a.Defaults)
	}
	assert.Equal(t, "Maximum Spanning Tree", names[algorithms.KeyMST])
	assert.Equal(t, "Pathfinder Network", names[algorithms.KeyPathfinder])
}

// TestRegistry_Lookup verifies known and unknown keys.
func TestRegistry_Lookup(t *testing.T) {
	a, err := algorithms.Lookup("knn")
	require.NoError(t, err)
	assert.Equal(t, algorithms.Params{"k": 3, "minSim": 0.5}, a.Defaults)

	_, err = algorithms.Lookup("louvain")
	assert.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)
	_, err = algorithms.Compute("louvain", trio(), nil)
	assert.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)
}

// TestRegistry_SmallInputs verifies that N ≤ 1 yields an empty list for every strategy.
func TestRegistry_SmallInputs(t *testing.T) {
	inputs := map[string][]core.Node{
		"nil":   nil,
		"empty": {},
		"one":   mkNodes([]float64{1, 2, 3}),
	}
	for _, key := range algorithms.Keys() {
		for name, nodes := range inputs {
			edges, err := algorithms.Compute(key, nodes, nil)
			require.NoError(t, err, "%s/%s", key, name)
			assert.NotNil(t, edges, "%s/%s", key, name)
			assert.Empty(t, edges, "%s/%s", key, name)
		}
	}
}

// TestRegistry_EdgeInvariants verifies every strategy emits known endpoints,
// no self-loops and similarity weights on a mixed fixture.
func TestRegistry_EdgeInvariants(t *testing.T) {
	nodes := angles(0, 10, 25, 40, 90, 100, 170, 185)
	ids := core.IndexByID(nodes)
	for _, key := range algorithms.Keys() {
		edges, err := algorithms.Compute(key, nodes, nil)
		require.NoError(t, err, key)
		for _, e := range edges {
			_, okS := ids[e.Source]
			_, okT := ids[e.Target]
			assert.True(t, okS && okT, "%s: unknown endpoint in %v", key, e)
			assert.NotEqual(t, e.Source, e.Target, key)
			assert.LessOrEqual(t, e.Weight, 1.0+1e-12, key)
			assert.GreaterOrEqual(t, e.Weight, -1.0-1e-12, key)
		}
	}
}

// TestRegistry_ParamsOverride verifies caller params override defaults and are not range-checked.
func TestRegistry_ParamsOverride(t *testing.T) {
	nodes := trio()

	edges, err := algorithms.Compute(algorithms.KeyThreshold, nodes, nil)
	require.NoError(t, err)
	assert.Len(t, edges, 1)

	edges, err = algorithms.Compute(algorithms.KeyThreshold, nodes, algorithms.Params{"minSim": -5})
	require.NoError(t, err)
	assert.Len(t, edges, 3, "out-of-range threshold degenerates to the complete graph")

	edges, err = algorithms.Compute(algorithms.KeyThreshold, nodes, algorithms.Params{"minSim": 5, "unused": 1})
	require.NoError(t, err)
	assert.Empty(t, edges)
}

// TestParams_Accessors verifies defaults and integer truncation.
func TestParams_Accessors(t *testing.T) {
	var nilParams algorithms.Params
	assert.Equal(t, 0.7, nilParams.Float("minSim", 0.7))
	assert.Equal(t, 3, nilParams.Int("k", 3))

	p := algorithms.Params{"k": 2.9, "bad": math.NaN(), "minSim": 0.1}
	assert.Equal(t, 2, p.Int("k", 3))
	assert.Equal(t, 0, p.Int("bad", 3))
	assert.Equal(t, 0.1, p.Float("minSim", 0.7))
}

// TestParams_IntClampsOutOfRange verifies huge finite values saturate instead of overflowing.
func TestParams_IntClampsOutOfRange(t *testing.T) {
	p := algorithms.Params{"big": 1e20, "small": -1e20, "inf": math.Inf(1)}
	assert.Equal(t, math.MaxInt, p.Int("big", 3))
	assert.Equal(t, math.MinInt, p.Int("small", 3))
	assert.Equal(t, 0, p.Int("inf", 3))

	edges, err := algorithms.Compute(algorithms.KeyKNN, trio(), algorithms.Params{"k": 1e20, "minSim": -2})
	require.NoError(t, err)
	assert.Len(t, edges, 6, "k beyond N keeps every neighbour")
}
