// Package io reads and writes graph documents in JSON, YAML and graph6.
//
// # Overview
//
// A document describes one graph in one of three forms, plus an optional
// highlight section:
//
//	{"matrix": [[0, 1], [1, 0]]}
//
//	{"nodes": ["a", "b", "c"], "edges": [["a", "b"], ["b", "c"]]}
//
//	{
//	  "nodes": [{"id": "a", "x": 0, "y": 0}, {"id": "b", "x": 1, "y": 0}],
//	  "edges": [{"from": "a", "to": "b"}],
//	  "highlight": {"nodes": ["a"], "edges": [["a", "b"]], "symmetric": true}
//	}
//
// Node references may be strings or numbers; numbers keep their literal text.
// Placed node objects carry a fixed position that the renderer keeps. A node
// list must be all bare identifiers or all placed objects.
//
// # Highlight Section
//
//   - nodes: identifiers to highlight
//   - edges: ordered pairs to highlight, matched exactly as written
//   - symmetric: also highlight the reverse of every listed edge
//   - path: a node sequence; its nodes and both orientations of its edges
//
// # Encodings
//
// [DetectFormat] picks the encoding from the file extension: .yaml and .yml
// are YAML, .g6 and .graph6 hold a single graph6 string, anything else is
// JSON. YAML goes through [github.com/goccy/go-yaml] and is converted to JSON,
// so both encodings accept the same shapes.
//
// # Import and Export
//
//	doc, err := io.ImportFile("graph.yaml")
//	g, err := doc.Build()
//	sel := doc.Selection()
//
// [WriteJSON] writes a graph back out in the nodes/edges form, keeping fixed
// positions, so that an exported graph re-imports to the same node and edge
// order.
package io
