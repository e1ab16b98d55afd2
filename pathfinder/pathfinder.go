// SPDX-License-Identifier: MIT

package pathfinder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simgraph/matrix"
)

// DefaultR is the default Minkowski exponent (Euclidean composition).
const DefaultR = 2.0

// DefaultEpsilon is the tolerance of the minimality test.
const DefaultEpsilon = 1e-10

// Link is a surviving (minimal) edge of the scaled network, I < J.
type Link struct {
	I, J     int
	Distance float64
}

// Option customizes MinimalLinks and Network.
type Option func(*options)

type options struct {
	eps float64
}

// WithEpsilon overrides DefaultEpsilon. Panics on a negative or NaN eps.
func WithEpsilon(eps float64) Option {
	if !(eps >= 0) {
		panic("pathfinder: WithEpsilon: eps must be non-negative")
	}
	return func(o *options) { o.eps = eps }
}

func gatherOptions(opts []Option) options {
	o := options{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Scale returns a relaxed copy of dist under the Minkowski r-metric.
// dist itself is not modified.
func Scale(dist *matrix.Dense, r float64) (*matrix.Dense, error) {
	if dist == nil {
		return nil, fmt.Errorf("pathfinder: Scale: %w", matrix.ErrNilMatrix)
	}
	out := dist.Clone()
	if err := matrix.MinkowskiClosure(out, r); err != nil {
		return nil, fmt.Errorf("pathfinder: Scale: %w", err)
	}

	return out, nil
}

// MinimalLinks returns the links of the (already relaxed) matrix d that no
// intermediate node matches within eps, in row-major upper-triangle order.
//
// Complexity: O(n³) time, O(L) space for L surviving links.
func MinimalLinks(d *matrix.Dense, r float64, opts ...Option) ([]Link, error) {
	if d == nil {
		return nil, fmt.Errorf("pathfinder: MinimalLinks: %w", matrix.ErrNilMatrix)
	}
	n := d.Rows()
	if n != d.Cols() {
		return nil, fmt.Errorf("pathfinder: MinimalLinks: %w", matrix.ErrNonSquare)
	}
	o := gatherOptions(opts)

	out := make([]Link, 0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dij, err := d.At(i, j)
			if err != nil {
				return nil, err
			}
			minimal := true
			for k := 0; k < n && minimal; k++ {
				if k == i || k == j {
					continue
				}
				dik, err := d.At(i, k)
				if err != nil {
					return nil, err
				}
				dkj, err := d.At(k, j)
				if err != nil {
					return nil, err
				}
				if alt := matrix.MinkowskiPath(dik, dkj, r); alt <= dij || math.Abs(alt-dij) < o.eps {
					minimal = false
				}
			}
			if minimal {
				out = append(out, Link{I: i, J: j, Distance: dij})
			}
		}
	}

	return out, nil
}

// Network scales dist with exponent r and returns its minimal links.
func Network(dist *matrix.Dense, r float64, opts ...Option) ([]Link, error) {
	scaled, err := Scale(dist, r)
	if err != nil {
		return nil, err
	}

	return MinimalLinks(scaled, r, opts...)
}
