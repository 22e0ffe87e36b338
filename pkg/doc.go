// Package pkg provides the core libraries for graphlight graph highlighting.
//
// # Overview
//
// Graphlight draws an undirected graph with a chosen set of nodes and edges
// highlighted in their own color, size and line width. The pkg directory is
// organized by stage:
//
//  1. [graph] - Graph construction from matrices, node/edge lists and graph6
//  2. [io] - JSON, YAML and graph6 documents with highlight sections
//  3. [style] - Per-node and per-edge styling from a highlight selection
//  4. [render] - Layout, DOT generation and Graphviz rendering to SVG or PNG
//  5. [pipeline] - Orchestration (build → render) with caching
//  6. [cache] - File, Redis and null figure caches
//
// # Architecture
//
// The typical data flow through graphlight:
//
//	JSON/YAML/graph6 document
//	         ↓
//	    [io] package (decode document + highlight section)
//	         ↓
//	    [graph] package (nodes, edges, optional fixed positions)
//	         ↓
//	    [style] package (node colors/sizes/labels, edge colors/widths)
//	         ↓
//	    [render] package (placement + Graphviz)
//	         ↓
//	    SVG/PNG output
//
// # Quick Start
//
//	g := graph.FromAdjacency([][]float64{{0, 1}, {1, 0}})
//	sel := style.Selection{Nodes: style.NewNodeSet("0")}
//	err := render.Draw(ctx, os.Stdout, g, sel, render.Options{Style: style.DefaultOptions()})
//
// [graph]: github.com/matzehuels/graphlight/pkg/graph
// [io]: github.com/matzehuels/graphlight/pkg/io
// [style]: github.com/matzehuels/graphlight/pkg/style
// [render]: github.com/matzehuels/graphlight/pkg/render
// [pipeline]: github.com/matzehuels/graphlight/pkg/pipeline
// [cache]: github.com/matzehuels/graphlight/pkg/cache
package pkg
