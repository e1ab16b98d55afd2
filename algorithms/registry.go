// SPDX-License-Identifier: MIT

package algorithms

import (
	"fmt"

	"github.com/katalvlaran/simgraph/core"
)

// Registry keys.
const (
	KeyThreshold    = "threshold"
	KeyAdaptive     = "adaptive"
	KeyKNN          = "knn"
	KeyMST          = "mst"
	KeyHierarchical = "hierarchical"
	KeyCommunity    = "community"
	KeyCliques      = "cliques"
	KeyPathfinder   = "pathfinder"
)

// registry is the static key → strategy table, in Keys() order.
var registry = []Algorithm{
	{
		Key:         KeyThreshold,
		DisplayName: "Similarity Threshold",
		Defaults:    Params{ParamMinSim: DefaultThresholdMinSim},
		compute: func(nodes []core.Node, p Params) ([]core.Edge, error) {
			return Threshold(nodes, p.Float(ParamMinSim, DefaultThresholdMinSim)), nil
		},
	},
	{
		Key:         KeyAdaptive,
		DisplayName: "Adaptive Threshold",
		Defaults:    Params{},
		compute: func(nodes []core.Node, _ Params) ([]core.Edge, error) {
			return AdaptiveThreshold(nodes), nil
		},
	},
	{
		Key:         KeyKNN,
		DisplayName: "K-Nearest Neighbors",
		Defaults:    Params{ParamK: DefaultKNNK, ParamMinSim: DefaultKNNMinSim},
		compute: func(nodes []core.Node, p Params) ([]core.Edge, error) {
			return KNearestNeighbors(nodes,
				p.Int(ParamK, DefaultKNNK),
				p.Float(ParamMinSim, DefaultKNNMinSim),
			), nil
		},
	},
	{
		Key:         KeyMST,
		DisplayName: "Maximum Spanning Tree",
		Defaults:    Params{ParamMinSim: DefaultSpanningTreeMinSim},
		compute: func(nodes []core.Node, p Params) ([]core.Edge, error) {
			return SpanningTree(nodes, p.Float(ParamMinSim, DefaultSpanningTreeMinSim)), nil
		},
	},
	{
		Key:         KeyHierarchical,
		DisplayName: "Hierarchical Clustering",
		Defaults:    Params{ParamThreshold: DefaultHierarchicalCut},
		compute: func(nodes []core.Node, p Params) ([]core.Edge, error) {
			return Hierarchical(nodes, p.Float(ParamThreshold, DefaultHierarchicalCut)), nil
		},
	},
	{
		Key:         KeyCommunity,
		DisplayName: "Community Detection",
		Defaults: Params{
			ParamThreshold:          DefaultCommunityThreshold,
			ParamCommunityThreshold: DefaultCommunitySeedCut,
		},
		compute: func(nodes []core.Node, p Params) ([]core.Edge, error) {
			return Community(nodes,
				p.Float(ParamThreshold, DefaultCommunityThreshold),
				p.Float(ParamCommunityThreshold, DefaultCommunitySeedCut),
			), nil
		},
	},
	{
		Key:         KeyCliques,
		DisplayName: "Maximal Cliques",
		Defaults:    Params{ParamMinSim: DefaultCliqueMinSim},
		compute: func(nodes []core.Node, p Params) ([]core.Edge, error) {
			return Cliques(nodes, p.Float(ParamMinSim, DefaultCliqueMinSim))
		},
	},
	{
		Key:         KeyPathfinder,
		DisplayName: "Pathfinder Network",
		Defaults:    Params{ParamR: DefaultPathfinderR, ParamMinSim: DefaultPathfinderMinSim},
		compute: func(nodes []core.Node, p Params) ([]core.Edge, error) {
			return Pathfinder(nodes,
				p.Float(ParamR, DefaultPathfinderR),
				p.Float(ParamMinSim, DefaultPathfinderMinSim),
			)
		},
	},
}

// Keys returns every registry key in a stable order.
func Keys() []string {
	out := make([]string, len(registry))
	for i, a := range registry {
		out[i] = a.Key
	}

	return out
}

// All returns a copy of every registry entry in Keys() order.
func All() []Algorithm {
	out := make([]Algorithm, len(registry))
	copy(out, registry)

	return out
}

// Lookup returns the strategy registered under key, or ErrUnknownAlgorithm.
func Lookup(key string) (Algorithm, error) {
	for _, a := range registry {
		if a.Key == key {
			return a, nil
		}
	}

	return Algorithm{}, fmt.Errorf("%q: %w", key, ErrUnknownAlgorithm)
}

// Compute looks up key and runs the strategy on nodes with params.
func Compute(key string, nodes []core.Node, params Params) ([]core.Edge, error) {
	a, err := Lookup(key)
	if err != nil {
		return nil, err
	}

	return a.Compute(nodes, params)
}
