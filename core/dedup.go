// SPDX-License-Identifier: MIT

package core

// Dedup returns edges with every repeated unordered pair removed.
//
// The first occurrence of each pair wins (its orientation and weight are kept)
// and the relative order of survivors is preserved. The input slice is not
// modified. Complexity: O(E) time and space.
func Dedup(edges []Edge) []Edge {
	seen := make(map[pairKey]struct{}, len(edges))
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		k := e.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, e)
	}

	return out
}

// IndexByID maps every node ID to its position in nodes.
func IndexByID(nodes []Node) map[string]int {
	idx := make(map[string]int, len(nodes))
	for i, n := range nodes {
		idx[n.ID] = i
	}

	return idx
}
