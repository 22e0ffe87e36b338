package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/graphlight/pkg/errors"
	"github.com/matzehuels/graphlight/pkg/graph"
)

func TestReadDocument_JSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNodes []string
		wantEdges []graph.Edge
		wantPos   bool
	}{
		{
			name:      "matrix",
			input:     `{"matrix": [[0, 1, 1], [1, 0, 0], [1, 0, 0]]}`,
			wantNodes: []string{"0", "1", "2"},
			wantEdges: []graph.Edge{{From: "0", To: "1"}, {From: "0", To: "2"}},
		},
		{
			name:      "identifiers",
			input:     `{"nodes": ["a", "b", "c"], "edges": [["a", "b"], {"from": "c", "to": "b"}]}`,
			wantNodes: []string{"a", "b", "c"},
			wantEdges: []graph.Edge{{From: "a", To: "b"}, {From: "b", To: "c"}},
		},
		{
			name:      "numeric identifiers",
			input:     `{"nodes": [1, 2], "edges": [[2, 1]]}`,
			wantNodes: []string{"1", "2"},
			wantEdges: []graph.Edge{{From: "1", To: "2"}},
		},
		{
			name:      "placed",
			input:     `{"nodes": [{"id": "a", "x": 0, "y": 0}, {"id": "b", "x": 1, "y": 2}], "edges": [["a", "b"]]}`,
			wantNodes: []string{"a", "b"},
			wantEdges: []graph.Edge{{From: "a", To: "b"}},
			wantPos:   true,
		},
		{
			name:      "edges only",
			input:     `{"edges": [["x", "y"]]}`,
			wantNodes: []string{"x", "y"},
			wantEdges: []graph.Edge{{From: "x", To: "y"}},
		},
		{
			name:      "empty node list",
			input:     `{"nodes": []}`,
			wantNodes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ReadDocument(strings.NewReader(tt.input), FormatJSON)
			if err != nil {
				t.Fatalf("ReadDocument() error: %v", err)
			}
			g, err := doc.Build()
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if diff := cmp.Diff(tt.wantNodes, g.Nodes()); diff != "" {
				t.Errorf("nodes mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantEdges, g.Edges()); diff != "" {
				t.Errorf("edges mismatch (-want +got):\n%s", diff)
			}
			if g.HasPositions() != tt.wantPos {
				t.Errorf("HasPositions() = %v, want %v", g.HasPositions(), tt.wantPos)
			}
		})
	}
}

func TestReadDocument_YAML(t *testing.T) {
	input := `
nodes: [a, b, c]
edges:
  - [a, b]
  - [b, c]
highlight:
  nodes: [b]
  edges:
    - [c, b]
  symmetric: true
`
	doc, err := ReadDocument(strings.NewReader(input), FormatYAML)
	if err != nil {
		t.Fatalf("ReadDocument() error: %v", err)
	}
	g, err := doc.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, g.Nodes()); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}

	sel := doc.Selection()
	if !sel.Nodes.Has("b") {
		t.Error("selection missing node b")
	}
	if !sel.Edges.Has(graph.Edge{From: "b", To: "c"}) {
		t.Error("symmetric selection missing (b, c)")
	}
}

func TestReadDocument_Graph6(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(">>graph6<<Bw\n"), FormatGraph6)
	if err != nil {
		t.Fatalf("ReadDocument() error: %v", err)
	}
	g, err := doc.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if g.NodeCount() != 3 || g.EdgeCount() != 3 {
		t.Errorf("graph6 Bw = %d nodes, %d edges, want 3, 3", g.NodeCount(), g.EdgeCount())
	}
}

func TestReadDocument_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		code   errors.Code
	}{
		{"malformed json", `{"nodes": [`, FormatJSON, errors.ErrCodeInvalidInput},
		{"bad edge arity", `{"edges": [["a"]]}`, FormatJSON, errors.ErrCodeInvalidInput},
		{"bad node type", `{"nodes": [true]}`, FormatJSON, errors.ErrCodeInvalidInput},
		{"placed without y", `{"nodes": [{"id": "a", "x": 1}]}`, FormatJSON, errors.ErrCodeInvalidInput},
		{"malformed yaml", "nodes: [a, b\n", FormatYAML, errors.ErrCodeInvalidInput},
		{"unclosed yaml sequence", "nodes: [a, b\nedges: [[a, b]]\n", FormatYAML, errors.ErrCodeInvalidInput},
		{"unclosed yaml mapping", "edges:\n  - {from: a, to: b\n", FormatYAML, errors.ErrCodeInvalidInput},
		{"stray yaml bracket", "nodes: [a, b]]\n", FormatYAML, errors.ErrCodeInvalidInput},
		{"empty graph6", "  \n", FormatGraph6, errors.ErrCodeInvalidInput},
		{"unknown format", `{}`, Format("toml"), errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDocument(strings.NewReader(tt.input), tt.format)
			if !errors.Is(err, tt.code) {
				t.Errorf("ReadDocument() = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
	}{
		{"empty", Document{}},
		{"two forms", Document{Matrix: [][]float64{{0}}, Nodes: []NodeEntry{{ID: "a"}}}},
		{"mixed placement", Document{Nodes: []NodeEntry{{ID: "a"}, {ID: "b", Placed: true}}}},
		{"bad graph6", Document{Graph6: "\x01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.doc.Build()
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Build() = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestSelection(t *testing.T) {
	doc := Document{Highlight: &Highlight{
		Nodes: []Ref{"a"},
		Edges: []EdgeEntry{{From: "a", To: "b"}},
		Path:  []Ref{"c", "d"},
	}}
	sel := doc.Selection()

	if diff := cmp.Diff([]string{"a", "c", "d"}, sel.Nodes.Sorted()); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}
	want := []graph.Edge{{From: "a", To: "b"}, {From: "c", To: "d"}, {From: "d", To: "c"}}
	if diff := cmp.Diff(want, sel.Edges.Sorted()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestSelection_NoHighlight(t *testing.T) {
	doc := Document{Matrix: [][]float64{{0}}}
	if !doc.Selection().IsEmpty() {
		t.Error("Selection() without highlight section is not empty")
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	original := graph.FromPlaced(
		[]graph.PlacedNode{
			{ID: "a", Pos: graph.Position{X: 0, Y: 0}},
			{ID: "b", Pos: graph.Position{X: 1.5, Y: -2}},
			{ID: "c", Pos: graph.Position{X: 3, Y: 1}},
		},
		[]graph.Edge{{From: "c", To: "a"}, {From: "a", To: "b"}},
	)

	var buf bytes.Buffer
	if err := WriteJSON(original, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	doc, err := ReadDocument(&buf, FormatJSON)
	if err != nil {
		t.Fatalf("ReadDocument() error: %v", err)
	}
	got, err := doc.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if diff := cmp.Diff(original.Nodes(), got.Nodes()); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(original.Edges(), got.Edges()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(original.Positions(), got.Positions()); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSON_RoundTripImplicitEndpoints(t *testing.T) {
	original := graph.FromPlaced(
		[]graph.PlacedNode{{ID: "a", Pos: graph.Position{X: 2, Y: 3}}},
		[]graph.Edge{{From: "a", To: "b"}},
	)

	var buf bytes.Buffer
	if err := WriteJSON(original, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	doc, err := ReadDocument(&buf, FormatJSON)
	if err != nil {
		t.Fatalf("ReadDocument() error: %v", err)
	}
	got, err := doc.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := map[string]graph.Position{"a": {X: 2, Y: 3}, "b": {}}
	if diff := cmp.Diff(want, got.Positions()); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(original.Edges(), got.Edges()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSON_EmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(graph.FromNodes(nil, nil), &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	if diff := cmp.Diff("{\n  \"nodes\": [],\n  \"edges\": []\n}\n", buf.String()); diff != "" {
		t.Errorf("WriteJSON() mismatch (-want +got):\n%s", diff)
	}

	doc, err := ReadDocument(&buf, FormatJSON)
	if err != nil {
		t.Fatalf("ReadDocument() error: %v", err)
	}
	g, err := doc.Build()
	if err != nil {
		t.Fatalf("Build() of exported empty graph error: %v", err)
	}
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("empty graph read back with %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
}

func TestWriteJSON_Shape(t *testing.T) {
	g := graph.FromNodes([]string{"a", "b"}, []graph.Edge{{From: "a", To: "b"}})
	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"nodes\": [\n    \"a\",\n    \"b\"\n  ],\n  \"edges\": [\n    [\n      \"a\",\n      \"b\"\n    ]\n  ]\n}\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteJSON() mismatch (-want +got):\n%s", diff)
	}
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "g.yml")
	if err := os.WriteFile(yamlPath, []byte("matrix:\n  - [0, 1]\n  - [1, 0]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := ImportFile(yamlPath)
	if err != nil {
		t.Fatalf("ImportFile() error: %v", err)
	}
	if len(doc.Matrix) != 2 {
		t.Errorf("Matrix = %v, want 2 rows", doc.Matrix)
	}

	_, err = ImportFile(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportFile(missing) = %v, want FILE_NOT_FOUND", err)
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	g := graph.FromAdjacency([][]float64{{0, 1}, {1, 0}})
	if err := ExportJSON(g, path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	doc, err := ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile() error: %v", err)
	}
	if diff := cmp.Diff([]EdgeEntry{{From: "0", To: "1"}}, doc.Edges); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"g.json":     FormatJSON,
		"g.YAML":     FormatYAML,
		"g.yml":      FormatYAML,
		"g.g6":       FormatGraph6,
		"g.graph6":   FormatGraph6,
		"no-ext":     FormatJSON,
		"dir.v1/g.x": FormatJSON,
	}
	for path, want := range tests {
		if got := DetectFormat(path); got != want {
			t.Errorf("DetectFormat(%q) = %q, want %q", path, got, want)
		}
	}
}
