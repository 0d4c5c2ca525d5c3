// Package graphio reads and writes graph documents and renders distance
// arrays for the command-line driver.
//
// A document names the vertex count, an optional source vertex and the edge
// list. Edges may be written as [from, to, weight] triples or as mappings:
//
//	vertices: 5
//	source: 0
//	edges:
//	  - [0, 1, 10]
//	  - {from: 0, to: 2, weight: 3}
//
// The same schema is accepted as JSON.
package graphio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/frontier/digraph"
)

// ErrBadDocument indicates a document that does not follow the schema.
var ErrBadDocument = errors.New("graphio: malformed document")

// Format selects the document encoding.
type Format int

const (
	// YAML is the default encoding.
	YAML Format = iota
	// JSON encoding.
	JSON
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from the file extension; anything other
// than .json is treated as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}

	return YAML
}

// EdgeSpec is one edge of a document.
type EdgeSpec struct {
	From   int   `yaml:"from" json:"from"`
	To     int   `yaml:"to" json:"to"`
	Weight int64 `yaml:"weight" json:"weight"`
}

// Document is the decoded form of a graph file.
type Document struct {
	Vertices int        `yaml:"vertices" json:"vertices"`
	Source   int        `yaml:"source" json:"source"`
	Edges    []EdgeSpec `yaml:"edges" json:"edges"`
}

// UnmarshalYAML accepts both the triple and the mapping edge forms. Every
// value must be a plain integer; the mapping form needs all three keys.
func (e *EdgeSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		triple := make([]int64, len(value.Content))
		for i, n := range value.Content {
			v, err := intNode(n, "edge")
			if err != nil {
				return err
			}
			triple[i] = v
		}
		return e.fromTriple(triple, fmt.Sprintf("line %d", value.Line))
	case yaml.MappingNode:
		seen := make(map[string]bool, 3)
		err := eachKey(value, func(key string, n *yaml.Node) error {
			if key != "from" && key != "to" && key != "weight" {
				return fmt.Errorf("line %d: unknown edge key %q: %w", n.Line, key, ErrBadDocument)
			}
			v, err := intNode(n, key)
			if err != nil {
				return err
			}
			switch key {
			case "from":
				e.From = int(v)
			case "to":
				e.To = int(v)
			default:
				e.Weight = v
			}
			seen[key] = true
			return nil
		})
		if err != nil {
			return err
		}
		for _, key := range []string{"from", "to", "weight"} {
			if !seen[key] {
				return fmt.Errorf("line %d: edge is missing %q: %w", value.Line, key, ErrBadDocument)
			}
		}
		return nil
	default:
		return fmt.Errorf("line %d: edge must be a sequence or mapping: %w", value.Line, ErrBadDocument)
	}
}

// UnmarshalYAML decodes the top-level mapping, rejecting unknown keys and
// non-integer counts.
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: document must be a mapping: %w", value.Line, ErrBadDocument)
	}

	return eachKey(value, func(key string, n *yaml.Node) error {
		switch key {
		case "vertices", "source":
			v, err := intNode(n, key)
			if err != nil {
				return err
			}
			if key == "vertices" {
				d.Vertices = int(v)
			} else {
				d.Source = int(v)
			}
			return nil
		case "edges":
			if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null" {
				d.Edges = nil
				return nil
			}
			if n.Kind != yaml.SequenceNode {
				return fmt.Errorf("line %d: edges must be a sequence: %w", n.Line, ErrBadDocument)
			}
			d.Edges = make([]EdgeSpec, len(n.Content))
			for i, item := range n.Content {
				if err := d.Edges[i].UnmarshalYAML(item); err != nil {
					return err
				}
			}
			return nil
		default:
			return fmt.Errorf("line %d: unknown key %q: %w", n.Line, key, ErrBadDocument)
		}
	})
}

// eachKey calls fn for every key/value pair of a mapping node, rejecting
// duplicate and non-string keys.
func eachKey(m *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	seen := make(map[string]bool, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		k := m.Content[i]
		if k.Kind != yaml.ScalarNode || k.ShortTag() != "!!str" {
			return fmt.Errorf("line %d: mapping key must be a string: %w", k.Line, ErrBadDocument)
		}
		if seen[k.Value] {
			return fmt.Errorf("line %d: duplicate key %q: %w", k.Line, k.Value, ErrBadDocument)
		}
		seen[k.Value] = true
		if err := fn(k.Value, m.Content[i+1]); err != nil {
			return err
		}
	}

	return nil
}

// intNode decodes a scalar tagged !!int. Floats, strings and nested nodes are
// rejected so YAML accepts exactly what the JSON decoder accepts.
func intNode(n *yaml.Node, what string) (int64, error) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!int" {
		return 0, fmt.Errorf("line %d: %s: %q is not an integer: %w", n.Line, what, n.Value, ErrBadDocument)
	}
	var v int64
	if err := n.Decode(&v); err != nil {
		return 0, fmt.Errorf("line %d: %s: %v: %w", n.Line, what, err, ErrBadDocument)
	}

	return v, nil
}

// MarshalYAML writes the edge as a flow-style [from, to, weight] triple.
func (e EdgeSpec) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []int64{int64(e.From), int64(e.To), e.Weight} {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)})
	}

	return n, nil
}

// UnmarshalJSON accepts both the triple and the object edge forms.
func (e *EdgeSpec) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var triple []int64
		if err := json.Unmarshal(data, &triple); err != nil {
			return fmt.Errorf("%v: %w", err, ErrBadDocument)
		}
		return e.fromTriple(triple, string(data))
	}

	var p struct {
		From   *int   `json:"from"`
		To     *int   `json:"to"`
		Weight *int64 `json:"weight"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return fmt.Errorf("%v: %w", err, ErrBadDocument)
	}
	if p.From == nil || p.To == nil || p.Weight == nil {
		return fmt.Errorf("%s: edge needs from, to and weight: %w", data, ErrBadDocument)
	}
	e.From, e.To, e.Weight = *p.From, *p.To, *p.Weight

	return nil
}

// MarshalJSON writes the edge as a [from, to, weight] array.
func (e EdgeSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal([]int64{int64(e.From), int64(e.To), e.Weight})
}

func (e *EdgeSpec) fromTriple(triple []int64, where string) error {
	if len(triple) != 3 {
		return fmt.Errorf("%s: edge needs [from, to, weight], got %d values: %w", where, len(triple), ErrBadDocument)
	}
	e.From, e.To, e.Weight = int(triple[0]), int(triple[1]), triple[2]

	return nil
}

// Decode reads one document from r.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("graphio: empty document: %w", ErrBadDocument)
			}
			return nil, fmt.Errorf("graphio: decode yaml: %w", wrapBad(err))
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("graphio: decode json: %w", wrapBad(err))
		}
	default:
		return nil, fmt.Errorf("graphio: unknown format %v: %w", format, ErrBadDocument)
	}

	return &doc, nil
}

// ReadFile decodes the document at path, choosing the format by extension.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Encode writes doc to w.
func Encode(w io.Writer, format Format, doc *Document) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("graphio: unknown format %v: %w", format, ErrBadDocument)
	}
}

// WriteFile encodes doc to path, choosing the format by extension.
func WriteFile(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Encode(f, FormatFromPath(path), doc); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Graph builds the digraph described by the document. Range and weight
// violations surface as digraph sentinels.
func (d *Document) Graph() (*digraph.Graph, error) {
	edges := make([]digraph.Edge, len(d.Edges))
	for i, e := range d.Edges {
		edges[i] = digraph.Edge{From: e.From, To: e.To, Weight: e.Weight}
	}

	return digraph.FromEdges(d.Vertices, edges)
}

// FromGraph captures g and source as a document.
func FromGraph(g *digraph.Graph, source int) *Document {
	doc := &Document{Vertices: g.VertexCount(), Source: source}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeSpec{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc
}

// wrapBad tags decoder errors with ErrBadDocument unless already tagged.
func wrapBad(err error) error {
	if errors.Is(err, ErrBadDocument) {
		return err
	}

	return fmt.Errorf("%v: %w", err, ErrBadDocument)
}
