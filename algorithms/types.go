// SPDX-License-Identifier: MIT

package algorithms

import (
	"errors"
	"math"

	"github.com/katalvlaran/simgraph/core"
)

// ErrUnknownAlgorithm indicates that a registry key does not name a strategy.
var ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

// Parameter names understood by the strategies.
const (
	ParamMinSim             = "minSim"
	ParamK                  = "k"
	ParamThreshold          = "threshold"
	ParamCommunityThreshold = "communityThreshold"
	ParamR                  = "r"
)

// Default parameter values.
const (
	DefaultThresholdMinSim    = 0.7
	DefaultKNNK               = 3
	DefaultKNNMinSim          = 0.5
	DefaultSpanningTreeMinSim = 0.3
	DefaultHierarchicalCut    = 0.5
	DefaultCommunityThreshold = 0.5
	DefaultCommunitySeedCut   = 0.6
	DefaultCliqueMinSim       = 0.6
	DefaultPathfinderR        = 2.0
	DefaultPathfinderMinSim   = 0.3
)

// AdaptiveStdDevFactor scales σ in the adaptive cutoff mean + factor·σ.
const AdaptiveStdDevFactor = 0.5

// MinCliqueSize is the smallest maximal clique the cliques strategy keeps.
const MinCliqueSize = 3

// selfSimilarity ranks a node below every real neighbour in its own KNN list.
const selfSimilarity = -1.0

// Params holds numeric strategy parameters by name. Missing names fall back to
// the strategy defaults; unknown names are ignored.
type Params map[string]float64

// Float returns p[name], or def when the name is absent or p is nil.
func (p Params) Float(name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}

	return def
}

// Int returns p[name] truncated toward zero, or def when absent.
// NaN and infinite values truncate to 0; finite values beyond the int range
// clamp to math.MaxInt or math.MinInt.
func (p Params) Int(name string, def int) int {
	v, ok := p[name]
	if !ok {
		return def
	}
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return 0
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}

	return int(v)
}

// merged returns a fresh Params with defaults overlaid by p.
func (p Params) merged(defaults Params) Params {
	out := make(Params, len(defaults)+len(p))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range p {
		out[k] = v
	}

	return out
}

// ComputeFunc is the shared strategy signature.
type ComputeFunc func(nodes []core.Node, p Params) ([]core.Edge, error)

// Algorithm is one registry entry.
type Algorithm struct {
	// Key is the registry key, e.g. "mst".
	Key string

	// DisplayName is the human-readable name shown by a front end.
	DisplayName string

	// Defaults lists every parameter the strategy reads, with its default.
	Defaults Params

	compute ComputeFunc
}

// Compute runs the strategy with params overlaid on the defaults.
func (a Algorithm) Compute(nodes []core.Node, params Params) ([]core.Edge, error) {
	return a.compute(nodes, params.merged(a.Defaults))
}

// edgeBetween builds the Edge from nodes[i] to nodes[j].
func edgeBetween(nodes []core.Node, i, j int, sim float64) core.Edge {
	return core.Edge{Source: nodes[i].ID, Target: nodes[j].ID, Weight: sim}
}
