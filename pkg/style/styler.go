package style

import "github.com/matzehuels/graphlight/pkg/graph"

// Graph is the read-only view the stylers need.
// *graph.Graph satisfies it.
type Graph interface {
	Nodes() []string
	Edges() []graph.Edge
	Degree(id string) int
}

// NodeStyle holds the resolved attributes of one node.
type NodeStyle struct {
	ID          string
	Color       string
	Size        float64 // marker area in points²
	Label       string  // empty when hidden
	Highlighted bool
}

// EdgeStyle holds the resolved attributes of one edge.
type EdgeStyle struct {
	Edge        graph.Edge
	Color       string
	Width       float64
	Highlighted bool
}

// Nodes resolves color, size and label for every node of g, in g's node order.
func Nodes(g Graph, highlighted NodeSet, opts Options) []NodeStyle {
	ids := g.Nodes()
	out := make([]NodeStyle, len(ids))
	for i, id := range ids {
		hl := highlighted.Has(id)
		degree := float64(g.Degree(id))

		ns := NodeStyle{ID: id, Highlighted: hl}
		if hl {
			ns.Color = opts.HighlightedNodeColor
			ns.Size = degree * opts.HighlightedNodeSize
		} else {
			ns.Color = opts.RegularNodeColor
			ns.Size = degree * opts.RegularNodeSize
		}
		if (hl && opts.HighlightedShowLabel) || (!hl && opts.RegularShowLabel) {
			ns.Label = id
		}
		out[i] = ns
	}
	return out
}

// Edges resolves color and width for every edge of g, in g's edge order.
// An edge is highlighted only if the exact pair g yields is in highlighted.
func Edges(g Graph, highlighted EdgeSet, opts Options) []EdgeStyle {
	edges := g.Edges()
	out := make([]EdgeStyle, len(edges))
	for i, e := range edges {
		hl := highlighted.Has(e)

		es := EdgeStyle{Edge: e, Highlighted: hl}
		if hl {
			es.Color = opts.HighlightedEdgeColor
			es.Width = opts.HighlightedEdgeWidth
		} else {
			es.Color = opts.RegularEdgeColor
			es.Width = opts.RegularEdgeWidth
		}
		out[i] = es
	}
	return out
}

// NodeLabels returns the label of every node keyed by ID, hidden labels as "".
func NodeLabels(nodes []NodeStyle) map[string]string {
	out := make(map[string]string, len(nodes))
	for _, n := range nodes {
		out[n.ID] = n.Label
	}
	return out
}
