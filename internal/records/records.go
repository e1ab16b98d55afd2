// SPDX-License-Identifier: MIT

// Package records decodes raw embedded records from JSON, JSON Lines or YAML.
//
// Each record is an object:
//
//	{"id": "j1", "label": "Backend Engineer", "embedding": [0.1, 0.2],
//	 "company": "Acme", "country_code": "DE"}
//
// The embedding is either a numeric array or a string holding one
// ("[0.1,0.2]"), as stored by most vector columns. A missing, null or
// undecodable embedding becomes nil; the builder filters such records.
package records

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simgraph/core"
)

// ErrUnknownFormat indicates an input format other than json, jsonl or yaml.
var ErrUnknownFormat = errors.New("records: unknown format")

// Format names an input encoding.
type Format string

// Supported formats.
const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// maxLineBytes bounds one JSON Lines record; 1536 floats fit comfortably.
const maxLineBytes = 16 << 20

// ParseFormat validates s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatJSONL, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// FormatFromPath infers the format from the file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson":
		return FormatJSONL
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Embedding decodes from a numeric array or from a string holding one.
type Embedding []float64

// UnmarshalJSON implements json.Unmarshaler.
func (e *Embedding) UnmarshalJSON(data []byte) error {
	*e = decodeEmbedding(data)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Embedding) UnmarshalYAML(value *yaml.Node) error {
	*e = nil
	switch value.Kind {
	case yaml.SequenceNode:
		var v []float64
		if err := value.Decode(&v); err == nil {
			*e = v
		}
	case yaml.ScalarNode:
		if value.ShortTag() == "!!str" {
			*e = decodeEmbedding([]byte(value.Value))
		}
	}

	return nil
}

// decodeEmbedding accepts a JSON array or a JSON string wrapping one.
func decodeEmbedding(data []byte) Embedding {
	var v []float64
	if err := json.Unmarshal(data, &v); err == nil {
		return v
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &v); err != nil {
		return nil
	}

	return v
}

// ID decodes a record id given as a string, a number or a boolean.
// Numbers keep their literal spelling, so 17 and "17" are the same id.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*id = ""
	case string:
		*id = ID(t)
	case json.Number:
		*id = ID(t.String())
	case bool:
		*id = ID(strconv.FormatBool(t))
	default:
		return fmt.Errorf("records: id must be a scalar, got %s", data)
	}

	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (id *ID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("records: id must be a scalar (line %d)", value.Line)
	}
	*id = ""
	if value.ShortTag() != "!!null" {
		*id = ID(value.Value)
	}

	return nil
}

// raw is the wire shape of one record.
type raw struct {
	ID          ID        `json:"id" yaml:"id"`
	Label       string    `json:"label" yaml:"label"`
	Embedding   Embedding `json:"embedding" yaml:"embedding"`
	Company     string    `json:"company" yaml:"company"`
	CountryCode string    `json:"country_code" yaml:"country_code"`
}

func (r raw) record() core.Record {
	return core.Record{
		ID:          string(r.ID),
		Label:       strings.TrimSpace(r.Label),
		Embedding:   r.Embedding,
		Company:     r.Company,
		CountryCode: r.CountryCode,
	}
}

// Decode reads every record from r.
func Decode(r io.Reader, f Format) ([]core.Record, error) {
	var rows []raw
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&rows); err != nil {
			return nil, fmt.Errorf("decode json records: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&rows); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml records: %w", err)
		}
	case FormatJSONL:
		var err error
		if rows, err = decodeLines(r); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}

	out := make([]core.Record, len(rows))
	for i, row := range rows {
		out[i] = row.record()
	}

	return out, nil
}

// decodeLines reads one JSON object per non-blank line.
func decodeLines(r io.Reader) ([]raw, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	rows := make([]raw, 0)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var row raw
		if err := json.Unmarshal([]byte(text), &row); err != nil {
			return nil, fmt.Errorf("decode jsonl record on line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan jsonl records: %w", err)
	}

	return rows, nil
}

// ReadFile decodes the records stored at path. An empty format is inferred
// from the extension.
func ReadFile(path, format string) ([]core.Record, error) {
	f := FormatFromPath(path)
	if format != "" {
		var err error
		if f, err = ParseFormat(format); err != nil {
			return nil, err
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer file.Close()

	return Decode(file, f)
}
