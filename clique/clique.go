// SPDX-License-Identifier: MIT

package clique

// Graph is the read-only view Bron–Kerbosch needs.
type Graph interface {
	Order() int
	Adjacent(i, j int) bool
}

// Maximal returns every maximal clique of g as an ascending index slice, in
// enumeration order. An empty graph yields no cliques; isolated vertices are
// reported as singleton cliques.
func Maximal(g Graph) [][]int {
	n := g.Order()
	if n == 0 {
		return [][]int{}
	}

	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	s := &search{g: g, out: make([][]int, 0)}
	s.expand(make([]int, 0, n), p, []int{})

	return s.out
}

// MaximalAtLeast returns the maximal cliques of g with at least minSize vertices.
func MaximalAtLeast(g Graph, minSize int) [][]int {
	all := Maximal(g)
	out := make([][]int, 0, len(all))
	for _, c := range all {
		if len(c) >= minSize {
			out = append(out, c)
		}
	}

	return out
}

// search carries the graph and the collected cliques through the recursion.
type search struct {
	g   Graph
	out [][]int
}

// expand is one BK(R, P, X) step. r is extended in place; reported cliques are copied.
func (s *search) expand(r, p, x []int) {
	if len(p) == 0 && len(x) == 0 {
		clique := make([]int, len(r))
		copy(clique, r)
		insertionSort(clique)
		s.out = append(s.out, clique)
		return
	}

	var pivot int
	if len(p) > 0 {
		pivot = p[0]
	} else {
		pivot = x[0]
	}

	// Candidates are fixed before the loop; P and X shrink/grow as we go.
	candidates := make([]int, 0, len(p))
	for _, v := range p {
		if !s.g.Adjacent(pivot, v) {
			candidates = append(candidates, v)
		}
	}

	for _, v := range candidates {
		s.expand(append(r, v), s.neighborsIn(p, v), s.neighborsIn(x, v))
		p = remove(p, v)
		x = insertSorted(x, v)
	}
}

// neighborsIn returns the members of set adjacent to v, preserving order.
func (s *search) neighborsIn(set []int, v int) []int {
	out := make([]int, 0, len(set))
	for _, u := range set {
		if s.g.Adjacent(v, u) {
			out = append(out, u)
		}
	}

	return out
}

// remove returns a copy of set without v.
func remove(set []int, v int) []int {
	out := make([]int, 0, len(set))
	for _, u := range set {
		if u != v {
			out = append(out, u)
		}
	}

	return out
}

// insertSorted returns a copy of the ascending set with v inserted.
func insertSorted(set []int, v int) []int {
	out := make([]int, 0, len(set)+1)
	placed := false
	for _, u := range set {
		if !placed && v < u {
			out = append(out, v)
			placed = true
		}
		out = append(out, u)
	}
	if !placed {
		out = append(out, v)
	}

	return out
}

// insertionSort sorts a short slice ascending in place.
func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
