package io

import (
	"github.com/matzehuels/graphlight/pkg/errors"
	"github.com/matzehuels/graphlight/pkg/graph"
	"github.com/matzehuels/graphlight/pkg/style"
)

// Build constructs the graph the document describes.
//
// Documents that mix graph forms, or that mix bare and placed node entries,
// are rejected with INVALID_INPUT. Edges may name nodes missing from the node
// list; those nodes are added.
func (d *Document) Build() (*graph.Graph, error) {
	forms := 0
	if d.Matrix != nil {
		forms++
	}
	if d.Nodes != nil || d.Edges != nil {
		forms++
	}
	if d.Graph6 != "" {
		forms++
	}
	switch {
	case forms == 0:
		return nil, errors.New(errors.ErrCodeInvalidInput, "document has no matrix, nodes/edges or graph6")
	case forms > 1:
		return nil, errors.New(errors.ErrCodeInvalidInput, "document must use exactly one of matrix, nodes/edges or graph6")
	}

	switch {
	case d.Matrix != nil:
		return graph.FromAdjacency(d.Matrix), nil
	case d.Graph6 != "":
		g, err := graph.FromGraph6(d.Graph6)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode graph6")
		}
		return g, nil
	}

	edges := make([]graph.Edge, len(d.Edges))
	for i, e := range d.Edges {
		edges[i] = graph.Edge{From: e.From, To: e.To}
	}

	placed := 0
	for _, n := range d.Nodes {
		if n.Placed {
			placed++
		}
	}
	switch placed {
	case 0:
		ids := make([]string, len(d.Nodes))
		for i, n := range d.Nodes {
			ids[i] = n.ID
		}
		return graph.FromNodes(ids, edges), nil
	case len(d.Nodes):
		nodes := make([]graph.PlacedNode, len(d.Nodes))
		for i, n := range d.Nodes {
			nodes[i] = graph.PlacedNode{ID: n.ID, Pos: graph.Position{X: n.X, Y: n.Y}}
		}
		return graph.FromPlaced(nodes, edges), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "nodes must be all identifiers or all placed objects, got %d of %d placed", placed, len(d.Nodes))
	}
}

// Selection returns the highlight section as a selection.
// A document without a highlight section selects nothing.
func (d *Document) Selection() style.Selection {
	h := d.Highlight
	if h == nil {
		return style.Selection{}
	}

	sel := style.Selection{
		Nodes: make(style.NodeSet, len(h.Nodes)),
		Edges: make(style.EdgeSet, len(h.Edges)),
	}
	for _, r := range h.Nodes {
		sel.Nodes[string(r)] = struct{}{}
	}
	for _, e := range h.Edges {
		sel.Edges[graph.Edge{From: e.From, To: e.To}] = struct{}{}
	}
	if h.Symmetric {
		sel.Edges = style.Symmetric(sel.Edges)
	}
	if len(h.Path) > 0 {
		path := make([]string, len(h.Path))
		for i, r := range h.Path {
			path[i] = string(r)
		}
		sel = sel.Merge(style.ForPath(path))
	}
	return sel
}

// Kind names the form describing the graph: "matrix", "nodes", "placed" or
// "graph6". It returns "" for a document without a graph.
func (d *Document) Kind() string {
	switch {
	case d.Matrix != nil:
		return "matrix"
	case d.Graph6 != "":
		return "graph6"
	case len(d.Nodes) > 0 && d.Nodes[0].Placed:
		return "placed"
	case d.Nodes != nil || d.Edges != nil:
		return "nodes"
	}
	return ""
}
