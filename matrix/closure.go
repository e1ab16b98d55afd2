// SPDX-License-Identifier: MIT

package matrix

import "math"

// opMinkowskiClosure tags errors from MinkowskiClosure.
const opMinkowskiClosure = "MinkowskiClosure"

// MinkowskiClosure relaxes the distance matrix d in place under the Minkowski
// r-metric path composition:
//
//	for k, i, j:  cand = (d[i,k]^r + d[k,j]^r)^(1/r);  if cand < d[i,j] { d[i,j] = cand }
//
// Contract:
//   - d must be square; the diagonal is expected to be 0.
//   - r is not validated. r ≤ 0 or negative entries may produce NaN candidates,
//     which never compare less than anything, so such cells stay unchanged.
//
// Determinism:
//   - Loop order is fixed (k → i → j), matching Floyd–Warshall; later
//     iterations see cells already shrunk by earlier ones.
//
// Complexity: Time O(n³) with two math.Pow calls per cell, extra space O(1).
func MinkowskiClosure(d *Dense, r float64) error {
	if d == nil {
		return matrixErrorf(opMinkowskiClosure, ErrNilMatrix)
	}
	if d.r != d.c {
		return matrixErrorf(opMinkowskiClosure, ErrNonSquare)
	}

	n := d.r
	data := d.data
	inv := 1 / r

	var (
		k, i, j      int
		baseK, baseI int
		ikR, cand    float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			baseI = i * n
			ikR = math.Pow(data[baseI+k], r)
			for j = 0; j < n; j++ {
				cand = math.Pow(ikR+math.Pow(data[baseK+j], r), inv)
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

// MinkowskiPath returns (a^r + b^r)^(1/r), the length of a two-hop path with
// legs a and b under the Minkowski r-metric.
func MinkowskiPath(a, b, r float64) float64 {
	return math.Pow(math.Pow(a, r)+math.Pow(b, r), 1/r)
}
