// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simgraph/core"
)

// mkNodes builds Nodes named n0, n1, … from raw embeddings.
func mkNodes(embs ...[]float64) []core.Node {
	out := make([]core.Node, len(embs))
	for i, e := range embs {
		out[i] = core.Node{ID: fmt.Sprintf("n%d", i), Embedding: e, Count: 1}
	}

	return out
}

// angles builds unit 2-D Nodes at the given angles in degrees.
func angles(deg ...float64) []core.Node {
	embs := make([][]float64, len(deg))
	for i, d := range deg {
		rad := d * math.Pi / 180
		embs[i] = []float64{math.Cos(rad), math.Sin(rad)}
	}

	return mkNodes(embs...)
}

// pairsOf renders edges as "src-dst" strings in output order.
func pairsOf(edges []core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.Source + "-" + e.Target
	}

	return out
}

// trio is the three-node fixture [1,0], [0.9,0.1], [0,1].
func trio() []core.Node {
	return mkNodes([]float64{1, 0}, []float64{0.9, 0.1}, []float64{0, 1})
}

// twoClusters is two pairs of identical orthogonal vectors.
func twoClusters() []core.Node {
	return mkNodes([]float64{1, 0}, []float64{1, 0}, []float64{0, 1}, []float64{0, 1})
}
