// SPDX-License-Identifier: MIT

package core

// Record is one raw input row: a group label plus an embedding vector and the
// optional job metadata that is carried through to the Node.
type Record struct {
	// ID identifies the source row (job posting or resume id). May be empty.
	ID string

	// Label is the grouping key; records sharing a Label collapse into one Node.
	Label string

	// Embedding is the decoded embedding vector. Nil or empty means missing.
	Embedding []float64

	// Company and CountryCode are job-variant metadata. No algorithm reads them.
	Company     string
	CountryCode string
}

// Node is a graph vertex representing one group of Records.
type Node struct {
	// ID is the group label, unique within one Graph.
	ID string

	// Embedding is the mean of the normalized member embeddings.
	// It is not necessarily unit length.
	Embedding []float64

	// Count is the size of the group before normalization filtering (≥ 1).
	Count int

	// MemberIDs lists the non-empty Record.ID values of the group in input order.
	MemberIDs []string

	// Companies and CountryCodes hold distinct member metadata in first-seen order.
	Companies    []string
	CountryCodes []string

	// Attrs holds opaque presentation attributes (color, highlight flags).
	// Algorithms never read it.
	Attrs map[string]string
}

// Edge is a weighted relation between two Nodes, referenced by ID.
type Edge struct {
	Source string
	Target string
	Weight float64
}

// Graph is the output document: the nodes in emission order and the edges
// produced by one strategy.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// pairKey is the unordered endpoint pair used for deduplication.
type pairKey struct{ lo, hi string }

// key returns the unordered pair {min(Source,Target), max(Source,Target)}.
func (e Edge) key() pairKey {
	if e.Source < e.Target {
		return pairKey{e.Source, e.Target}
	}

	return pairKey{e.Target, e.Source}
}

// SameLink reports whether e and other join the same unordered pair of nodes.
func (e Edge) SameLink(other Edge) bool {
	return e.key() == other.key()
}
