// SPDX-License-Identifier: MIT

package vecmath

import "math"

// Cosine returns the cosine similarity of a and b.
//
// Dot product and both squared magnitudes are accumulated in one loop.
// Returns 0 for mismatched or empty inputs and when exactly one input has zero
// magnitude; returns NaN when both inputs are zero vectors.
//
// Complexity: O(D) time, O(1) extra space.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}

	// 0/0 is left to produce NaN when both vectors are zero.
	if (magA == 0) != (magB == 0) {
		return 0
	}

	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// Dot returns the dot product of a and b, or 0 when lengths differ.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// Norm returns the Euclidean (L2) magnitude of v.
func Norm(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}

	return math.Sqrt(s)
}

// Normalize returns a new vector with unit L2 norm pointing in the direction of v.
//
// Returns nil when v is empty, has zero magnitude, or its magnitude is not
// finite (any NaN/Inf component). The input is never modified.
func Normalize(v []float64) []float64 {
	if len(v) == 0 {
		return nil
	}
	mag := Norm(v)
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return nil
	}

	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / mag
	}

	return out
}

// Average returns the component-wise mean of vectors, or nil when vectors is empty.
// All vectors are assumed to share the length of vectors[0].
func Average(vectors [][]float64) []float64 {
	if len(vectors) == 0 {
		return nil
	}

	dim := len(vectors[0])
	sum := make([]float64, dim)
	for _, v := range vectors {
		for i := 0; i < dim; i++ {
			sum[i] += v[i]
		}
	}

	inv := 1.0 / float64(len(vectors))
	for i := range sum {
		sum[i] *= inv
	}

	return sum
}
