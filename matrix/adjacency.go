// SPDX-License-Identifier: MIT

package matrix

// Adjacency is a symmetric n×n boolean matrix with a false diagonal.
type Adjacency struct {
	n    int
	bits []bool
}

// NewAdjacency creates an n×n adjacency with no links.
// Returns ErrInvalidDimensions when n is not positive.
func NewAdjacency(n int) (*Adjacency, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Adjacency{n: n, bits: make([]bool, n*n)}, nil
}

// Order returns n.
func (a *Adjacency) Order() int { return a.n }

// Adjacent reports whether i and j are linked. Out-of-range indices and the
// diagonal report false.
func (a *Adjacency) Adjacent(i, j int) bool {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		return false
	}

	return a.bits[i*a.n+j]
}

// Link connects i and j in both directions. Self-links are ignored so the
// diagonal stays false.
func (a *Adjacency) Link(i, j int) error {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		return indexErrorf("Adjacency.Link", i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	a.bits[i*a.n+j] = true
	a.bits[j*a.n+i] = true

	return nil
}

// Neighbors returns the indices linked to i in ascending order.
func (a *Adjacency) Neighbors(i int) []int {
	if i < 0 || i >= a.n {
		return nil
	}
	out := make([]int, 0)
	base := i * a.n
	for j := 0; j < a.n; j++ {
		if a.bits[base+j] {
			out = append(out, j)
		}
	}

	return out
}
