package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/graphlight/pkg/errors"
	"github.com/matzehuels/graphlight/pkg/graph"
)

func TestNilSetsAreEmpty(t *testing.T) {
	var ns NodeSet
	var es EdgeSet
	if ns.Has("0") {
		t.Error("nil NodeSet reports membership")
	}
	if es.Has(graph.Edge{From: "0", To: "1"}) {
		t.Error("nil EdgeSet reports membership")
	}
	if !(Selection{}).IsEmpty() {
		t.Error("zero Selection is not empty")
	}
}

func TestPathEdges(t *testing.T) {
	tests := []struct {
		name string
		path []string
		want []graph.Edge
	}{
		{"empty", nil, nil},
		{"single", []string{"a"}, nil},
		{"pair", []string{"a", "b"}, []graph.Edge{{From: "a", To: "b"}, {From: "b", To: "a"}}},
		{"three", []string{"0", "2", "1"}, []graph.Edge{
			{From: "0", To: "2"}, {From: "1", To: "2"}, {From: "2", To: "0"}, {From: "2", To: "1"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PathEdges(tt.path).Sorted()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PathEdges(%v) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}

func TestSymmetric(t *testing.T) {
	in := NewEdgeSet(graph.Edge{From: "0", To: "1"}, graph.Edge{From: "2", To: "2"})
	got := Symmetric(in).Sorted()
	want := []graph.Edge{{From: "0", To: "1"}, {From: "1", To: "0"}, {From: "2", To: "2"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Symmetric() mismatch (-want +got):\n%s", diff)
	}
	if len(in) != 2 {
		t.Errorf("Symmetric mutated its input: %v", in)
	}
}

func TestForPath(t *testing.T) {
	sel := ForPath([]string{"0", "1", "2"})
	if diff := cmp.Diff([]string{"0", "1", "2"}, sel.Nodes.Sorted()); diff != "" {
		t.Errorf("ForPath nodes mismatch (-want +got):\n%s", diff)
	}
	if len(sel.Edges) != 4 {
		t.Errorf("ForPath edges = %v, want 4 members", sel.Edges.Sorted())
	}
}

func TestSelectionMerge(t *testing.T) {
	a := Selection{Nodes: NewNodeSet("0")}
	b := Selection{Edges: NewEdgeSet(graph.Edge{From: "0", To: "1"})}
	got := a.Merge(b)
	if !got.Nodes.Has("0") || !got.Edges.Has(graph.Edge{From: "0", To: "1"}) {
		t.Errorf("Merge() = %+v", got)
	}
	if a.Edges != nil || b.Nodes != nil {
		t.Error("Merge mutated its inputs")
	}
}

func TestSelectionValidate(t *testing.T) {
	g := path4()
	tests := []struct {
		name    string
		sel     Selection
		wantErr bool
	}{
		{"empty", Selection{}, false},
		{"known nodes", Selection{Nodes: NewNodeSet("0", "3")}, false},
		{"known edge reversed", Selection{Edges: NewEdgeSet(graph.Edge{From: "1", To: "0"})}, false},
		{"unknown node", Selection{Nodes: NewNodeSet("9")}, true},
		{"non-adjacent pair", Selection{Edges: NewEdgeSet(graph.Edge{From: "0", To: "3"})}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.Validate(g)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidReference) {
				t.Errorf("Validate() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidReference)
			}
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatalf("DefaultOptions().Validate() = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Options)
		code   errors.Code
	}{
		{"bad color", func(o *Options) { o.RegularNodeColor = "#xyz123" }, errors.ErrCodeInvalidColor},
		{"empty color", func(o *Options) { o.HighlightedEdgeColor = "" }, errors.ErrCodeInvalidColor},
		{"negative size", func(o *Options) { o.RegularNodeSize = -1 }, errors.ErrCodeInvalidInput},
		{"negative width", func(o *Options) { o.HighlightedEdgeWidth = -0.5 }, errors.ErrCodeInvalidInput},
		{"zero figure", func(o *Options) { o.FigureHeight = 0 }, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.mutate(&o)
			err := o.Validate()
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestOptionsNormalized(t *testing.T) {
	o := DefaultOptions()
	o.RegularNodeColor = "#4287F5"
	o.HighlightedEdgeColor = "red"
	got := o.Normalized()
	if got.RegularNodeColor != "#4287f5" {
		t.Errorf("RegularNodeColor = %q", got.RegularNodeColor)
	}
	if got.HighlightedEdgeColor != "red" {
		t.Errorf("HighlightedEdgeColor = %q", got.HighlightedEdgeColor)
	}
}
