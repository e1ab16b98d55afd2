// SPDX-License-Identifier: MIT

package pairwise

import (
	"sort"

	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/matrix"
	"github.com/katalvlaran/simgraph/vecmath"
)

// Pair is one unordered node pair (I < J, indices into the node slice) with its
// cosine similarity.
type Pair struct {
	I, J       int
	Similarity float64
}

// Pairs returns the similarity of every unordered pair, in row-major upper
// triangle order: (0,1), (0,2), …, (0,n-1), (1,2), …
// Returns an empty slice for fewer than two nodes.
//
// Complexity: O(N²·D) time, O(N²) space.
func Pairs(nodes []core.Node) []Pair {
	n := len(nodes)
	if n < 2 {
		return []Pair{}
	}

	out := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Pair{
				I:          i,
				J:          j,
				Similarity: vecmath.Cosine(nodes[i].Embedding, nodes[j].Embedding),
			})
		}
	}

	return out
}

// SortDescending orders pairs by similarity, highest first. The sort is stable,
// so equal similarities keep their row-major order (first-seen tie-break).
func SortDescending(pairs []Pair) {
	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].Similarity > pairs[b].Similarity
	})
}

// Similarity returns the dense symmetric similarity matrix with a zero diagonal.
// Returns matrix.ErrInvalidDimensions for an empty node slice.
func Similarity(nodes []core.Node) (*matrix.Dense, error) {
	return dense(nodes, func(sim float64) float64 { return sim })
}

// Distance returns the dense symmetric distance matrix, d = 1 − similarity,
// with a zero diagonal.
// Returns matrix.ErrInvalidDimensions for an empty node slice.
func Distance(nodes []core.Node) (*matrix.Dense, error) {
	return dense(nodes, ToDistance)
}

// ToDistance converts a cosine similarity into a distance.
func ToDistance(sim float64) float64 { return 1 - sim }

// ToSimilarity converts a distance back into a cosine similarity.
func ToSimilarity(dist float64) float64 { return 1 - dist }

// Adjacency links every pair whose similarity is at least minSim.
// Returns matrix.ErrInvalidDimensions for an empty node slice.
func Adjacency(nodes []core.Node, minSim float64) (*matrix.Adjacency, error) {
	adj, err := matrix.NewAdjacency(len(nodes))
	if err != nil {
		return nil, err
	}
	for _, p := range Pairs(nodes) {
		if p.Similarity >= minSim {
			if err = adj.Link(p.I, p.J); err != nil {
				return nil, err
			}
		}
	}

	return adj, nil
}

// dense fills an n×n matrix with conv(similarity) off the diagonal.
func dense(nodes []core.Node, conv func(float64) float64) (*matrix.Dense, error) {
	m, err := matrix.NewSquare(len(nodes))
	if err != nil {
		return nil, err
	}
	for _, p := range Pairs(nodes) {
		if err = m.SetSymmetric(p.I, p.J, conv(p.Similarity)); err != nil {
			return nil, err
		}
	}

	return m, nil
}
