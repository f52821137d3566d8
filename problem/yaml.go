package problem

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/searchlab/core"
)

// FileYAML is the YAML document layout.
type FileYAML struct {
	Nodes        []NodeYAML `yaml:"nodes"`
	Edges        []EdgeYAML `yaml:"edges"`
	Origin       int        `yaml:"origin"`
	Destinations []int      `yaml:"destinations,flow"`
}

// NodeYAML is one node entry.
type NodeYAML struct {
	ID int     `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

// EdgeYAML is one directed edge entry.
type EdgeYAML struct {
	From int     `yaml:"from"`
	To   int     `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

// ParseYAML reads the YAML format. Unknown keys are rejected.
func ParseYAML(r io.Reader, opts ...core.GraphOption) (*File, error) {
	var doc FileYAML
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrSyntax)
		}
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return convertYAML(&doc).build(opts...)
}

// convertYAML maps the document onto a draft. Entry positions stand in for
// line numbers in error messages.
func convertYAML(doc *FileYAML) *draft {
	d := &draft{origin: core.NodeID(doc.Origin)}
	for i, n := range doc.Nodes {
		d.nodes = append(d.nodes, nodeDecl{line: i + 1, id: core.NodeID(n.ID), x: n.X, y: n.Y})
	}
	for i, e := range doc.Edges {
		d.edges = append(d.edges, edgeDecl{line: i + 1, from: core.NodeID(e.From), to: core.NodeID(e.To), cost: e.Cost})
	}
	for _, id := range doc.Destinations {
		d.destinations = append(d.destinations, core.NodeID(id))
	}

	return d
}

// WriteYAML renders f as a YAML document.
func WriteYAML(w io.Writer, f *File) error {
	doc := FileYAML{Origin: int(f.Origin)}
	for _, id := range f.Graph.Nodes() {
		p, err := f.Graph.Coordinates(id)
		if err != nil {
			return err
		}
		doc.Nodes = append(doc.Nodes, NodeYAML{ID: int(id), X: p.X, Y: p.Y})
	}
	for _, e := range f.Graph.Edges() {
		doc.Edges = append(doc.Edges, EdgeYAML{From: int(e.From), To: int(e.To), Cost: e.Cost})
	}
	for _, id := range f.Destinations {
		doc.Destinations = append(doc.Destinations, int(id))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("problem: encode yaml: %w", err)
	}

	return enc.Close()
}
