// SPDX-License-Identifier: MIT

// Package algorithms holds the interchangeable strategies that turn an ordered
// node set into a weighted edge list, and the static registry that selects one
// by key.
//
// Strategies (key → rule)
//
//	threshold     keep every pair with similarity > minSim (0.7).
//	adaptive      cutoff = mean + 0.5·σ over all pair similarities (population σ);
//	              keep pairs with similarity > cutoff (strict).
//	knn           every node keeps its top k (3) neighbours with similarity > minSim (0.5).
//	              Each node searches on its own, so a pair found from both ends is
//	              emitted twice (A→B and B→A); no deduplication.
//	mst           Kruskal over pairs with similarity > minSim (0.3), heaviest first:
//	              a maximum-weight spanning forest, at most N−1 edges.
//	hierarchical  single-linkage merges: pairs heaviest first, emit and merge when
//	              similarity > threshold (0.5) and the endpoints sit in different clusters.
//	community     pass 1 seeds shallow communities (similarity to the seed >
//	              communityThreshold, 0.6); pass 2 keeps intra-community pairs above
//	              threshold (0.5) and inter-community pairs above communityThreshold.
//	cliques       maximal cliques (Bron–Kerbosch, pivot) of the graph similarity ≥ minSim
//	              (0.6), size ≥ 3; one edge per pair inside each clique, repeated
//	              across overlapping cliques.
//	pathfinder    Pathfinder scaling of d = 1 − similarity with Minkowski r (2); keep
//	              minimal links whose similarity 1 − d > minSim (0.3).
//
// Output contract
//
//   - Edges reference nodes by ID; Weight is the cosine similarity.
//   - Pair-scanning strategies emit Source = earlier node, Target = later node.
//   - Fewer than two nodes always yield an empty, non-nil edge list.
//   - Parameters are never range-checked: out-of-range values produce an empty or
//     over-dense, but structurally valid, edge list.
//
// Every call is a pure function of (nodes, params): no shared state, no caching,
// safe to run concurrently on the same read-only node slice.
package algorithms
