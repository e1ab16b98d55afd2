// SPDX-License-Identifier: MIT

package core

// Components returns the connected components of g as lists of node IDs.
// Components are ordered by their first node in g.Nodes; inside a component
// IDs follow breadth-first visit order from that node. Edge direction is
// ignored; edges naming unknown IDs are skipped. An isolated node forms its
// own component.
func Components(g Graph) [][]string {
	index := IndexByID(g.Nodes)
	neighbors := make([][]int, len(g.Nodes))
	for _, e := range g.Edges {
		s, okS := index[e.Source]
		t, okT := index[e.Target]
		if !okS || !okT || s == t {
			continue
		}
		neighbors[s] = append(neighbors[s], t)
		neighbors[t] = append(neighbors[t], s)
	}

	visited := make([]bool, len(g.Nodes))
	out := make([][]string, 0)
	queue := make([]int, 0, len(g.Nodes))
	for start := range g.Nodes {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue = append(queue[:0], start)
		comp := make([]string, 0, 1)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, g.Nodes[cur].ID)
			for _, nb := range neighbors[cur] {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		out = append(out, comp)
	}

	return out
}
