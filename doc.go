// SPDX-License-Identifier: MIT

// Package simgraph turns a collection of embedded records (job postings,
// resume profiles) into a weighted similarity graph for exploratory
// visualization.
//
// A construction call runs in three steps:
//
//	records ──builder.Build──▶ nodes ──algorithms.Compute──▶ edges
//
// Records sharing a label collapse into one Node whose embedding is the mean
// of the normalized member embeddings. A strategy picked by registry key then
// links the nodes:
//
//	threshold     pairs strictly above minSim
//	adaptive      pairs strictly above mean + 0.5·σ of all similarities
//	knn           top k neighbours per node, both directions kept
//	mst           maximum spanning forest (Kruskal over a DisjointSet)
//	hierarchical  single-linkage merge edges
//	community     shallow seed communities with two cuts
//	cliques       every pair inside a maximal clique of size ≥ 3
//	pathfinder    minimal links after Minkowski distance relaxation
//
// Subpackages:
//
//	vecmath/    cosine, normalization, averaging
//	core/       Record, Node, Edge, Graph, Dedup and Components
//	builder/    records → nodes
//	matrix/     dense distance matrix, boolean adjacency, Minkowski closure
//	pairwise/   pair stream and dense similarity/distance views
//	dsu/        union-find keyed by node ID
//	clique/     Bron–Kerbosch with pivoting
//	pathfinder/ Pathfinder network scaling
//	algorithms/ the strategy registry
//
// Engine wires them together with optional logging and deduplication:
//
//	eng := simgraph.New(simgraph.WithLogger(log), simgraph.WithDedup(true))
//	g, err := eng.Build(records, "mst", algorithms.Params{"minSim": 0.4})
//	if errors.Is(err, builder.ErrNoUsableData) {
//		// ask for fresh data
//	}
//
// Every call is a pure function of its input; concurrent calls over
// different node sets are safe.
package simgraph
