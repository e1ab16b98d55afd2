// SPDX-License-Identifier: MIT

// Package clique enumerates maximal cliques with the Bron–Kerbosch algorithm
// with pivoting.
//
// Formulation
//
//	BK(R, P, X):
//	  if P and X are empty: report R
//	  pivot ← first vertex of P, else first of X
//	  for v in P \ N(pivot):
//	    BK(R ∪ {v}, P ∩ N(v), X ∩ N(v))
//	    P ← P \ {v};  X ← X ∪ {v}
//
// The pivot is simply the first vertex of P∪X (P listed before X); no
// degree-maximizing pivot is searched for. Vertex sets are kept as ascending
// index slices, so enumeration order is deterministic for a given graph.
//
// Input is any Graph (Order + Adjacent), e.g. *matrix.Adjacency. Adjacent must
// be symmetric and false on the diagonal.
//
// Complexity: O(3^(n/3)) worst case (Moon–Moser bound on the number of maximal
// cliques), O(n²) extra space across the recursion.
package clique
