// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage every pairwise relation of the
// engine is materialized in: a row-major float64 matrix (similarities and
// distances), a boolean adjacency matrix (clique search), and the in-place
// Minkowski closure used by Pathfinder network scaling.
//
// Storage
//
//   - Dense keeps r×c values in one flat buffer, offset = i*c + j.
//   - Adjacency keeps n×n booleans the same way; Link(i,j) always writes both
//     (i,j) and (j,i) so the relation stays symmetric, and the diagonal is
//     never set.
//
// Safety
//
//	Public accessors return sentinel errors instead of panicking: At/Set on an
//	index outside the shape yield ErrOutOfRange, constructors reject
//	non-positive shapes with ErrInvalidDimensions. Errors are wrapped with the
//	method context ("Dense.At(3,9): matrix: index out of range") and stay
//	matchable with errors.Is.
//
// Closure
//
//	MinkowskiClosure relaxes a distance matrix with the Minkowski triangle
//	inequality d(i,j) ← min(d(i,j), (d(i,k)^r + d(k,j)^r)^(1/r)), using the
//	same fixed k → i → j loop order as Floyd–Warshall. For r = 1 it is exactly
//	Floyd–Warshall; as r → ∞ it approaches the minimax path distance.
//
// Determinism: every loop has a fixed order; no map iteration, no randomness.
package matrix
