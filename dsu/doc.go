// SPDX-License-Identifier: MIT

// Package dsu implements a disjoint-set (union-find) forest keyed by node ID,
// used by the spanning-tree strategy to reject cycle-forming edges.
//
// Behavior
//
//   - Find registers an unseen ID as its own parent and returns it.
//   - Find follows the parent chain recursively to the self-parented root and
//     compresses the path on the way back, so repeated queries are near O(1).
//   - Union(a, b) points Find(a)'s root at Find(b)'s root.
//
// There is deliberately no union-by-rank or union-by-size: the root of a merged
// set is always the root of the second argument. Adding a rank heuristic would
// change which ID becomes the representative and therefore the order in which
// tied edges are accepted, so it is not done here. Worst-case chains are longer
// than with rank, which is fine for graphs of a few hundred nodes.
//
// A DisjointSet is not safe for concurrent use; create one per call.
package dsu
