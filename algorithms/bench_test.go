// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/simgraph/algorithms"
	"github.com/katalvlaran/simgraph/core"
)

// randomNodes builds n deterministic pseudo-random nodes of dimension d.
func randomNodes(n, d int) []core.Node {
	r := rand.New(rand.NewSource(7))
	nodes := make([]core.Node, n)
	for i := range nodes {
		emb := make([]float64, d)
		for k := range emb {
			emb[k] = r.Float64()*2 - 1
		}
		nodes[i] = core.Node{ID: fmt.Sprintf("n%d", i), Embedding: emb, Count: 1}
	}

	return nodes
}

// BenchmarkStrategies runs every registered strategy on 100 nodes of dimension 64.
func BenchmarkStrategies(b *testing.B) {
	nodes := randomNodes(100, 64)
	for _, key := range algorithms.Keys() {
		b.Run(key, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := algorithms.Compute(key, nodes, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
