// SPDX-License-Identifier: MIT

// Package export renders graphs as the JSON documents consumed by the
// rendering layer. Every document carries a fresh run id.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/simgraph"
	"github.com/katalvlaran/simgraph/algorithms"
	"github.com/katalvlaran/simgraph/core"
)

// Node is the exported form of core.Node. The embedding is left out; the
// rendering layer only needs identity and metadata.
type Node struct {
	ID           string            `json:"id"`
	Count        int               `json:"count"`
	MemberIDs    []string          `json:"member_ids"`
	Companies    []string          `json:"companies,omitempty"`
	CountryCodes []string          `json:"country_codes,omitempty"`
	Attrs        map[string]string `json:"attrs,omitempty"`
}

// Edge is the exported form of core.Edge.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// Document is one built graph.
type Document struct {
	RunID        string             `json:"run_id"`
	GeneratedAt  time.Time          `json:"generated_at"`
	Algorithm    string             `json:"algorithm"`
	DisplayName  string             `json:"display_name"`
	Params       map[string]float64 `json:"params"`
	Deduplicated bool               `json:"deduplicated"`
	Nodes        []Node             `json:"nodes"`
	Edges        []Edge             `json:"edges"`
	Components   int                `json:"components"`
	Communities  map[string]int     `json:"communities,omitempty"`
	Cliques      [][]string         `json:"cliques,omitempty"`
}

// NewDocument converts g, built by strategy a with params, into a Document.
// The effective params (defaults overlaid by params) are recorded.
func NewDocument(g core.Graph, a algorithms.Algorithm, params algorithms.Params, dedup bool) Document {
	effective := make(map[string]float64, len(a.Defaults)+len(params))
	for k, v := range a.Defaults {
		effective[k] = v
	}
	for k, v := range params {
		if _, ok := a.Defaults[k]; ok {
			effective[k] = v
		}
	}

	doc := Document{
		RunID:        uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		Algorithm:    a.Key,
		DisplayName:  a.DisplayName,
		Params:       effective,
		Deduplicated: dedup,
		Nodes:        make([]Node, len(g.Nodes)),
		Edges:        make([]Edge, len(g.Edges)),
		Components:   len(core.Components(g)),
	}
	for i, n := range g.Nodes {
		doc.Nodes[i] = Node{
			ID:           n.ID,
			Count:        n.Count,
			MemberIDs:    n.MemberIDs,
			Companies:    n.Companies,
			CountryCodes: n.CountryCodes,
			Attrs:        n.Attrs,
		}
	}
	for i, e := range g.Edges {
		doc.Edges[i] = Edge{Source: e.Source, Target: e.Target, Value: e.Weight}
	}

	return doc
}

// Result is one row of a Comparison.
type Result struct {
	Algorithm   string  `json:"algorithm"`
	DisplayName string  `json:"display_name"`
	Edges       int     `json:"edges"`
	ElapsedMS   float64 `json:"elapsed_ms"`
}

// Comparison is the output of one compare run.
type Comparison struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Nodes       int       `json:"nodes"`
	Results     []Result  `json:"results"`
}

// NewComparison converts engine comparisons over nodes into a Comparison.
func NewComparison(nodes int, cmp []simgraph.Comparison) Comparison {
	out := Comparison{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Nodes:       nodes,
		Results:     make([]Result, len(cmp)),
	}
	for i, c := range cmp {
		out.Results[i] = Result{
			Algorithm:   c.Key,
			DisplayName: c.DisplayName,
			Edges:       c.Edges,
			ElapsedMS:   float64(c.Elapsed.Microseconds()) / 1000,
		}
	}

	return out
}

// Write encodes v as JSON, indented when pretty.
func Write(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	return nil
}
