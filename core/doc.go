// SPDX-License-Identifier: MIT

// Package core defines the data model shared by every simgraph package:
// raw input Records, graph Nodes (one per label group), weighted Edges and the
// Graph document handed to a rendering layer.
//
// Identity
//
//	A Node is identified by its ID (the group label). Every Edge references its
//	endpoints by Node ID only; there is no pointer identity anywhere in the
//	model, so two edges with the same endpoints and weight compare equal with ==.
//
// Lifetime
//
//	Nodes are created once per construction call by package builder, are never
//	mutated afterwards, and may be shared read-only across goroutines.
//
// Invariants
//
//   - All Nodes of one Graph share the same embedding dimension D.
//   - Node.Count ≥ 1 and Node.Embedding is non-empty.
//   - Edge.Source != Edge.Target.
//   - Edge.Weight is a cosine similarity in [-1, 1] for every strategy output.
//
// Deduplication
//
//	Strategies that discover a pair from both endpoints (k-nearest-neighbors) or
//	from several overlapping cliques return the pair more than once. Dedup folds
//	those repeats into one Edge keyed by the unordered pair {min(id), max(id)}.
package core
