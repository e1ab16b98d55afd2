// SPDX-License-Identifier: MIT

// Package pathfinder implements Pathfinder network scaling: pruning a complete
// distance graph down to the links that are not beaten by any indirect path.
//
// What & Why
//
//	A dense similarity graph over a few hundred nodes is an unreadable hairball.
//	Pathfinder keeps a link (i, j) only when no intermediate node k offers a
//	path at least as short under the Minkowski r-metric
//
//	    len(i→k→j) = (d(i,k)^r + d(k,j)^r)^(1/r)
//
//	r = 1 sums legs (shortest-path pruning), r = 2 is Euclidean composition,
//	r → ∞ keeps only the widest-bottleneck links.
//
// Steps
//
//  1. Scale: relax a copy of the distance matrix with matrix.MinkowskiClosure
//     (fixed k → i → j order, O(n³)).
//  2. MinimalLinks: for every pair i<j of the relaxed matrix, the link is
//     minimal iff for every k ∉ {i, j} the two-hop length through k exceeds
//     d(i,j) by more than eps. Equal-within-eps alternatives disqualify the link.
//
// Epsilon
//
//	DefaultEpsilon (1e-10) is the tolerance of the minimality test. It is a
//	tunable constant (WithEpsilon); it must not be tightened or loosened
//	silently, because whether an exact tie is pruned depends on it.
//
// Parameters are not validated: r ≤ 0 or negative distances degrade the result
// (NaN path lengths never shrink a cell and never disqualify a link) but never
// produce an error.
package pathfinder
