// SPDX-License-Identifier: MIT

package builder

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/vecmath"
)

// group accumulates the records of one label in input order.
type group struct {
	label   string
	records []core.Record
}

// Build groups records by label and emits one Node per group that has at least
// one normalizable embedding. See the package documentation for the exact rules.
//
// Returns ErrNoUsableData when the whole input yields zero Nodes.
func Build(records []core.Record, opts ...Option) ([]core.Node, error) {
	cfg := newBuildConfig(opts...)
	log := cfg.logger

	// 1. Filter shape-invalid records and group the rest by first-seen label.
	dim := cfg.dimension
	if dim == 0 {
		dim = detectDimension(records)
	}
	groups := make([]*group, 0)
	byLabel := make(map[string]*group)
	var dropped int
	for _, r := range records {
		if len(r.Embedding) == 0 {
			dropped++
			continue
		}
		if len(r.Embedding) != dim {
			log.Debug("dropping record with mismatched dimension",
				zap.String("id", r.ID),
				zap.Int("got", len(r.Embedding)),
				zap.Int("want", dim),
			)
			dropped++
			continue
		}

		label := r.Label
		if label == "" {
			label = cfg.fallbackLabel
		}
		g, ok := byLabel[label]
		if !ok {
			g = &group{label: label}
			byLabel[label] = g
			groups = append(groups, g)
		}
		g.records = append(g.records, r)
	}
	if dropped > 0 {
		log.Debug("dropped records without a usable embedding", zap.Int("count", dropped))
	}

	// 2. Normalize, average and emit per group.
	nodes := make([]core.Node, 0, len(groups))
	for _, g := range groups {
		if n, ok := buildNode(g, log); ok {
			nodes = append(nodes, n)
		}
	}

	if len(nodes) == 0 {
		return nil, ErrNoUsableData
	}
	log.Debug("built nodes",
		zap.Int("records", len(records)),
		zap.Int("nodes", len(nodes)),
		zap.Int("dimension", dim),
	)

	return nodes, nil
}

// detectDimension returns the most common length among embeddings that
// normalize, ties going to the length seen first. Zero means no embedding
// normalizes.
func detectDimension(records []core.Record) int {
	counts := make(map[int]int)
	order := make([]int, 0, 1)
	for _, r := range records {
		if vecmath.Normalize(r.Embedding) == nil {
			continue
		}
		d := len(r.Embedding)
		if counts[d] == 0 {
			order = append(order, d)
		}
		counts[d]++
	}

	best := 0
	for _, d := range order {
		if counts[d] > counts[best] {
			best = d
		}
	}

	return best
}

// buildNode averages the normalized member embeddings of g.
// It reports false when no member embedding could be normalized.
func buildNode(g *group, log *zap.Logger) (core.Node, bool) {
	normalized := make([][]float64, 0, len(g.records))
	for _, r := range g.records {
		if v := vecmath.Normalize(r.Embedding); v != nil {
			normalized = append(normalized, v)
		}
	}
	if failed := len(g.records) - len(normalized); failed > 0 {
		log.Debug("members failed normalization",
			zap.String("label", g.label),
			zap.Int("failed", failed),
			zap.Int("members", len(g.records)),
		)
	}
	if len(normalized) == 0 {
		log.Debug("dropping group without survivors", zap.String("label", g.label))
		return core.Node{}, false
	}

	n := core.Node{
		ID:        g.label,
		Embedding: vecmath.Average(normalized),
		Count:     len(g.records),
		MemberIDs: make([]string, 0, len(g.records)),
	}
	seenCompany := make(map[string]struct{})
	seenCountry := make(map[string]struct{})
	for _, r := range g.records {
		if r.ID != "" {
			n.MemberIDs = append(n.MemberIDs, r.ID)
		}
		n.Companies = appendDistinct(n.Companies, seenCompany, r.Company)
		n.CountryCodes = appendDistinct(n.CountryCodes, seenCountry, r.CountryCode)
	}

	return n, true
}

// appendDistinct appends v to dst unless v is empty or already recorded in seen.
func appendDistinct(dst []string, seen map[string]struct{}, v string) []string {
	if v == "" {
		return dst
	}
	if _, ok := seen[v]; ok {
		return dst
	}
	seen[v] = struct{}{}

	return append(dst, v)
}
