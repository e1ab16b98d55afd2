// SPDX-License-Identifier: MIT

// Package pairwise computes the cosine similarity relation between graph nodes,
// the input of nearly every strategy in package algorithms.
//
// Two presentations are provided:
//
//   - Pairs: an edge stream of {I, J, Similarity} for every unordered pair,
//     emitted once with I < J in node order (row-major over the upper triangle).
//     Used by threshold, adaptive, spanning-tree, hierarchical and community
//     strategies.
//   - Similarity / Distance: dense symmetric n×n matrices (diagonal 0) used by
//     Pathfinder scaling. Distance is 1 − similarity, the metric conversion
//     applied wherever distances are needed.
//
// Adjacency derives a boolean matrix (similarity ≥ minSim) for clique search.
//
// Every call recomputes from scratch: O(N²·D) time. Results are never cached
// between calls, so switching strategies always pays the full cost again.
package pairwise
