// SPDX-License-Identifier: MIT

package vecmath_test

import (
	"fmt"

	"github.com/katalvlaran/simgraph/vecmath"
)

// ExampleCosine shows similarity between a vector, a near neighbour and an orthogonal vector.
func ExampleCosine() {
	a := []float64{1, 0}
	b := []float64{1, 1}
	c := []float64{0, 1}

	fmt.Printf("%.4f %.4f %.4f\n", vecmath.Cosine(a, a), vecmath.Cosine(a, b), vecmath.Cosine(a, c))
	// Output: 1.0000 0.7071 0.0000
}

// ExampleNormalize shows the unit vector of a 3-4-5 triangle.
func ExampleNormalize() {
	fmt.Println(vecmath.Normalize([]float64{3, 4}))
	fmt.Println(vecmath.Normalize([]float64{0, 0}) == nil)
	// Output:
	// [0.6 0.8]
	// true
}
