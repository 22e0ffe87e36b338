package style

import (
	"cmp"
	"maps"
	"slices"

	"github.com/matzehuels/graphlight/pkg/errors"
	"github.com/matzehuels/graphlight/pkg/graph"
)

// NodeSet is a set of node identifiers. The nil set is empty and safe to query.
type NodeSet map[string]struct{}

// NewNodeSet returns a set holding ids.
func NewNodeSet(ids ...string) NodeSet {
	s := make(NodeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s NodeSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in ascending order.
func (s NodeSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// EdgeSet is a set of ordered node pairs. Membership is exact: {a, b} and
// {b, a} are different members. The nil set is empty and safe to query.
type EdgeSet map[graph.Edge]struct{}

// NewEdgeSet returns a set holding edges exactly as given.
func NewEdgeSet(edges ...graph.Edge) EdgeSet {
	s := make(EdgeSet, len(edges))
	for _, e := range edges {
		s[e] = struct{}{}
	}
	return s
}

// Has reports whether the exact pair e is in the set.
func (s EdgeSet) Has(e graph.Edge) bool {
	_, ok := s[e]
	return ok
}

// Sorted returns the members ordered by (From, To).
func (s EdgeSet) Sorted() []graph.Edge {
	out := slices.Collect(maps.Keys(s))
	slices.SortFunc(out, func(a, b graph.Edge) int {
		return cmp.Or(cmp.Compare(a.From, b.From), cmp.Compare(a.To, b.To))
	})
	return out
}

// Symmetric returns a new set containing every member in both orientations.
func Symmetric(s EdgeSet) EdgeSet {
	out := make(EdgeSet, 2*len(s))
	for e := range s {
		out[e] = struct{}{}
		out[e.Reversed()] = struct{}{}
	}
	return out
}

// PathEdges returns both orientations of every consecutive pair in path.
// A path with fewer than two nodes has no edges.
func PathEdges(path []string) EdgeSet {
	s := make(EdgeSet)
	for i := 0; i+1 < len(path); i++ {
		e := graph.Edge{From: path[i], To: path[i+1]}
		s[e] = struct{}{}
		s[e.Reversed()] = struct{}{}
	}
	return s
}

// Selection is the caller-supplied set of nodes and edges to emphasise.
// The zero value selects nothing.
type Selection struct {
	Nodes NodeSet
	Edges EdgeSet
}

// ForPath selects every node on path and both orientations of its edges.
func ForPath(path []string) Selection {
	return Selection{
		Nodes: NewNodeSet(path...),
		Edges: PathEdges(path),
	}
}

// Merge returns the union of s and other. Neither input is modified.
func (s Selection) Merge(other Selection) Selection {
	nodes := make(NodeSet, len(s.Nodes)+len(other.Nodes))
	maps.Copy(nodes, s.Nodes)
	maps.Copy(nodes, other.Nodes)
	edges := make(EdgeSet, len(s.Edges)+len(other.Edges))
	maps.Copy(edges, s.Edges)
	maps.Copy(edges, other.Edges)
	return Selection{Nodes: nodes, Edges: edges}
}

// IsEmpty reports whether nothing is selected.
func (s Selection) IsEmpty() bool {
	return len(s.Nodes) == 0 && len(s.Edges) == 0
}

// Validate checks that every selected node and edge exists in g.
// Edge existence ignores orientation. It returns an INVALID_REFERENCE error
// naming the first missing element in sorted order.
//
// Rendering never calls Validate on its own; it is for callers that want
// strict input checking.
func (s Selection) Validate(g *graph.Graph) error {
	for _, id := range s.Nodes.Sorted() {
		if !g.HasNode(id) {
			return errors.New(errors.ErrCodeInvalidReference, "highlighted node %q is not in the graph", id)
		}
	}
	for _, e := range s.Edges.Sorted() {
		if !g.HasEdge(e.From, e.To) {
			return errors.New(errors.ErrCodeInvalidReference, "highlighted edge (%s, %s) is not in the graph", e.From, e.To)
		}
	}
	return nil
}
