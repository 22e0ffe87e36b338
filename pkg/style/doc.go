// Package style resolves per-node and per-edge visual attributes for a graph
// and a highlight selection.
//
// # Overview
//
// Styling is the step between building a graph and drawing it. [Nodes] and
// [Edges] walk the graph in its iteration order and return one attribute
// record per element, aligned with [graph.Graph.Nodes] and
// [graph.Graph.Edges]:
//
//	sel := style.Selection{Nodes: style.NewNodeSet("0")}
//	nodes := style.Nodes(g, sel.Nodes, style.DefaultOptions())
//	edges := style.Edges(g, sel.Edges, style.DefaultOptions())
//
// Both functions are pure: attributes are recomputed on every call and the
// selection is never modified.
//
// # Node Rules
//
//   - Color: HighlightedNodeColor for selected nodes, RegularNodeColor otherwise.
//   - Size: the node's degree times HighlightedNodeSize or RegularNodeSize.
//     Isolated nodes therefore get size 0 whether or not they are selected.
//   - Label: the node ID when the matching show-label flag is set, else "".
//
// # Edge Rules
//
// An edge takes the highlighted color and width when the exact pair the graph
// yields is in the [EdgeSet]. No normalisation happens: {(0,1)} does not match
// an edge yielded as (1,0). Use [PathEdges] or [Symmetric] to add both
// orientations when undirected matching is wanted.
//
// # Selections
//
// A nil [NodeSet] or [EdgeSet] is the empty selection. [ForPath] turns a node
// path into a selection of its nodes and both orientations of its edges.
package style
