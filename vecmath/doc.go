// SPDX-License-Identifier: MIT

// Package vecmath provides the numeric kernels every similarity graph is built
// from: cosine similarity, L2 normalization and the component-wise mean of a
// set of embeddings.
//
// What & Why
//
//	Embeddings are fixed-dimensional []float64 vectors. Two embeddings are
//	"close" when the angle between them is small, so the whole engine measures
//	closeness with cosine similarity in [-1, 1]. Averaging normalized member
//	embeddings yields one representative vector per group.
//
// Functions
//
//   - Cosine(a, b)    dot(a,b) / (‖a‖·‖b‖), single pass, O(D) time, O(1) space.
//   - Normalize(v)    v / ‖v‖, or nil when v is empty, zero or non-finite.
//   - Average(vs)     component-wise mean, or nil for an empty input.
//   - Dot(a, b), Norm(v) helpers used by the kernels above.
//
// Numeric policy
//
//   - Cosine returns 0 when the inputs differ in length, are empty, or exactly
//     one of them has zero magnitude.
//   - When BOTH inputs are the zero vector Cosine returns NaN (0/0). This edge
//     case is deliberately left unguarded; callers that can feed two zero
//     vectors must check math.IsNaN themselves. NodeBuilder never produces zero
//     vectors, so the graph engine does not hit it.
//   - Average does not check dimensions; every vector must have the length of
//     the first one (the caller's responsibility). Longer vectors are
//     truncated, shorter ones panic with an index error.
//
// All functions are pure and safe for concurrent use.
package vecmath
