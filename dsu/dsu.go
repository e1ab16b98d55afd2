// SPDX-License-Identifier: MIT

package dsu

// DisjointSet maps each registered ID to its parent ID.
type DisjointSet struct {
	parent map[string]string
}

// New returns an empty DisjointSet.
func New() *DisjointSet {
	return &DisjointSet{parent: make(map[string]string)}
}

// NewWithCapacity returns an empty DisjointSet sized for n IDs.
func NewWithCapacity(n int) *DisjointSet {
	return &DisjointSet{parent: make(map[string]string, n)}
}

// Find returns the representative of id's set, registering id as a singleton
// when it has not been seen before. Path compression is applied recursively.
func (s *DisjointSet) Find(id string) string {
	p, ok := s.parent[id]
	if !ok {
		s.parent[id] = id
		return id
	}
	if p == id {
		return id
	}
	root := s.Find(p)
	s.parent[id] = root

	return root
}

// Union merges the sets of a and b by pointing Find(a)'s root at Find(b)'s root.
// It reports whether a merge happened (false when a and b were already connected).
func (s *DisjointSet) Union(a, b string) bool {
	ra, rb := s.Find(a), s.Find(b)
	if ra == rb {
		return false
	}
	s.parent[ra] = rb

	return true
}

// Connected reports whether a and b belong to the same set.
func (s *DisjointSet) Connected(a, b string) bool {
	return s.Find(a) == s.Find(b)
}

// Len returns the number of registered IDs.
func (s *DisjointSet) Len() int {
	return len(s.parent)
}
