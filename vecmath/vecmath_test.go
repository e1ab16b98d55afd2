// SPDX-License-Identifier: MIT

package vecmath_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/simgraph/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// TestCosine_Self verifies cosine(v, v) == 1 for non-zero vectors of various shapes.
func TestCosine_Self(t *testing.T) {
	cases := [][]float64{
		{1},
		{3, 4},
		{-1, 2, -3},
		{0, 0, 5},
		{1e-6, 2e-6, 3e-6},
		{1e6, -1e6, 42},
	}
	for _, v := range cases {
		assert.InDelta(t, 1.0, vecmath.Cosine(v, v), 1e-9, "cosine(%v,%v)", v, v)
	}
}

// TestCosine_Symmetry verifies cosine(a, b) == cosine(b, a) for arbitrary inputs.
func TestCosine_Symmetry(t *testing.T) {
	pairs := [][2][]float64{
		{{1, 0}, {0, 1}},
		{{1, 2, 3}, {-3, 2, 1}},
		{{0.5, 0.5}, {0.9, 0.1}},
		{{1, 2}, {1, 2, 3}}, // mismatched
		{{0, 0}, {1, 1}},    // one zero
		{nil, {1}},
	}
	for _, p := range pairs {
		assert.Equal(t, vecmath.Cosine(p[0], p[1]), vecmath.Cosine(p[1], p[0]))
	}

	// Both-zero is symmetric too, in the NaN sense.
	assert.True(t, math.IsNaN(vecmath.Cosine([]float64{0, 0}, []float64{0, 0})))
}

// TestCosine_Degenerate covers the numerically safe zero returns.
func TestCosine_Degenerate(t *testing.T) {
	assert.Zero(t, vecmath.Cosine(nil, nil))
	assert.Zero(t, vecmath.Cosine([]float64{}, []float64{}))
	assert.Zero(t, vecmath.Cosine([]float64{1, 2}, []float64{1}))
	assert.Zero(t, vecmath.Cosine([]float64{0, 0}, []float64{1, 0}))
	assert.Zero(t, vecmath.Cosine([]float64{1, 0}, []float64{0, 0}))
}

// TestCosine_KnownValues checks orthogonal, opposite and a hand-computed pair.
func TestCosine_KnownValues(t *testing.T) {
	assert.InDelta(t, 0.0, vecmath.Cosine([]float64{1, 0}, []float64{0, 1}), eps)
	assert.InDelta(t, -1.0, vecmath.Cosine([]float64{1, 1}, []float64{-2, -2}), eps)
	// [1,0]·[0.9,0.1] = 0.9; ‖[0.9,0.1]‖ = sqrt(0.82)
	assert.InDelta(t, 0.9/math.Sqrt(0.82), vecmath.Cosine([]float64{1, 0}, []float64{0.9, 0.1}), eps)
}

// TestNormalize_UnitNorm verifies the output has unit L2 norm and the input is untouched.
func TestNormalize_UnitNorm(t *testing.T) {
	cases := [][]float64{
		{3, 4},
		{1, 1, 1, 1},
		{-7},
		{1e-9, 0, 0},
		{123.4, -56.7, 8.9},
	}
	for _, v := range cases {
		orig := append([]float64(nil), v...)
		n := vecmath.Normalize(v)
		require.NotNil(t, n)
		assert.InDelta(t, 1.0, vecmath.Norm(n), 1e-12)
		assert.Equal(t, orig, v, "input must not be modified")
	}
	assert.Equal(t, []float64{0.6, 0.8}, vecmath.Normalize([]float64{3, 4}))
}

// TestNormalize_Rejects verifies nil for empty, zero and non-finite inputs.
func TestNormalize_Rejects(t *testing.T) {
	assert.Nil(t, vecmath.Normalize(nil))
	assert.Nil(t, vecmath.Normalize([]float64{}))
	assert.Nil(t, vecmath.Normalize([]float64{0, 0, 0}))
	assert.Nil(t, vecmath.Normalize([]float64{1, math.NaN()}))
	assert.Nil(t, vecmath.Normalize([]float64{math.Inf(1), 1}))
}

// TestAverage verifies the component-wise mean and the empty case.
func TestAverage(t *testing.T) {
	assert.Nil(t, vecmath.Average(nil))
	assert.Equal(t, []float64{1, 2}, vecmath.Average([][]float64{{1, 2}}))
	assert.Equal(t, []float64{2, 3}, vecmath.Average([][]float64{{1, 2}, {3, 4}}))
	got := vecmath.Average([][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	for _, x := range got {
		assert.InDelta(t, 1.0/3.0, x, eps)
	}
}

// TestDotNorm covers the two helpers.
func TestDotNorm(t *testing.T) {
	assert.Equal(t, 11.0, vecmath.Dot([]float64{1, 2}, []float64{3, 4}))
	assert.Zero(t, vecmath.Dot([]float64{1}, []float64{1, 2}))
	assert.Equal(t, 5.0, vecmath.Norm([]float64{3, 4}))
	assert.Zero(t, vecmath.Norm(nil))
}
