package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/graphlight/pkg/graph"
)

// FromGraph converts g into its nodes/edges document form.
//
// When g has fixed positions every node is written as a placed entry, so the
// document stays readable by [Document.Build]. Nodes that only entered g as
// edge endpoints sit at the origin.
func FromGraph(g *graph.Graph) *Document {
	ids := g.Nodes()
	doc := &Document{
		Nodes: make([]NodeEntry, len(ids)),
		Edges: make([]EdgeEntry, 0, g.EdgeCount()),
	}
	placed := g.HasPositions()
	for i, id := range ids {
		n := NodeEntry{ID: id, Placed: placed}
		if p, ok := g.Position(id); ok {
			n.X, n.Y = p.X, p.Y
		}
		doc.Nodes[i] = n
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeEntry{From: e.From, To: e.To})
	}
	return doc
}

// exportDocument is the written form of [FromGraph]. Both lists are always
// present so an empty graph still reads back as a nodes/edges document.
type exportDocument struct {
	Nodes []NodeEntry `json:"nodes"`
	Edges []EdgeEntry `json:"edges"`
}

// WriteJSON encodes g as an indented JSON document and writes it to w.
// The output can be read back with [ReadDocument].
func WriteJSON(g *graph.Graph, w io.Writer) error {
	doc := FromGraph(g)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(exportDocument{Nodes: doc.Nodes, Edges: doc.Edges}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g as a JSON document to the file at path.
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
