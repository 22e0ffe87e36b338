package graph

import (
	"maps"

	"gonum.org/v1/gonum/graph/simple"
)

// Edge is a node pair in the orientation the graph yields it.
// Graphs are undirected, so {a, b} and {b, a} denote the same edge;
// only lookups by exact pair distinguish them.
type Edge struct {
	From string
	To   string
}

// Reversed returns the edge with its endpoints swapped.
func (e Edge) Reversed() Edge { return Edge{From: e.To, To: e.From} }

// IsLoop reports whether both endpoints are the same node.
func (e Edge) IsLoop() bool { return e.From == e.To }

// Position is a fixed node coordinate in caller units.
type Position struct {
	X float64
	Y float64
}

// PlacedNode is a node identifier with a fixed position.
type PlacedNode struct {
	ID  string
	Pos Position
}

// Graph is an undirected graph with deterministic iteration order.
//
// The zero value is not usable - use one of the From* builders or New.
type Graph struct {
	g     *simple.UndirectedGraph
	index map[string]int64    // node ID -> gonum ID
	ids   []string            // insertion order; ids[i] has gonum ID i
	adj   map[string][]string // neighbour creation order
	loops map[string]bool
	pos   map[string]Position // nil when no fixed layout was supplied
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		g:     simple.NewUndirectedGraph(),
		index: make(map[string]int64),
		adj:   make(map[string][]string),
		loops: make(map[string]bool),
	}
}

// AddNode adds id to the graph. Adding an existing node is a no-op.
func (g *Graph) AddNode(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	n := simple.Node(int64(len(g.ids)))
	g.g.AddNode(n)
	g.index[id] = n.ID()
	g.ids = append(g.ids, id)
}

// AddEdge adds the undirected edge {from, to}, adding missing endpoints.
// Adding an edge that already exists, in either orientation, is a no-op.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)

	if from == to {
		if !g.loops[from] {
			g.loops[from] = true
			g.adj[from] = append(g.adj[from], to)
		}
		return
	}

	u, v := g.index[from], g.index[to]
	if g.g.HasEdgeBetween(u, v) {
		return
	}
	g.g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
	g.adj[from] = append(g.adj[from], to)
	g.adj[to] = append(g.adj[to], from)
}

// SetPosition pins id to p. The node is added if missing.
func (g *Graph) SetPosition(id string, p Position) {
	g.AddNode(id)
	if g.pos == nil {
		g.pos = make(map[string]Position)
	}
	g.pos[id] = p
}

// Nodes returns node identifiers in insertion order.
// The returned slice is a copy.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)
	return out
}

// Edges returns every undirected edge exactly once.
//
// Nodes are visited in insertion order and each node's neighbours in the order
// the adjacency was created; an edge is yielded from whichever endpoint is
// visited first.
func (g *Graph) Edges() []Edge {
	var out []Edge
	seen := make(map[string]bool, len(g.ids))
	for _, u := range g.ids {
		for _, v := range g.adj[u] {
			if !seen[v] {
				out = append(out, Edge{From: u, To: v})
			}
		}
		seen[u] = true
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.ids) }

// EdgeCount returns the number of undirected edges, self loops included.
func (g *Graph) EdgeCount() int {
	return g.g.Edges().Len() + len(g.loops)
}

// HasNode reports whether id is in the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// HasEdge reports whether {a, b} is an edge, in either orientation.
func (g *Graph) HasEdge(a, b string) bool {
	if a == b {
		return g.loops[a]
	}
	u, okU := g.index[a]
	v, okV := g.index[b]
	if !okU || !okV {
		return false
	}
	return g.g.HasEdgeBetween(u, v)
}

// Degree returns the number of edges incident to id, counting a self loop twice.
// Returns 0 for an unknown node.
func (g *Graph) Degree(id string) int {
	n, ok := g.index[id]
	if !ok {
		return 0
	}
	d := g.g.From(n).Len()
	if g.loops[id] {
		d += 2
	}
	return d
}

// HasPositions reports whether the graph was built with fixed node positions.
func (g *Graph) HasPositions() bool { return g.pos != nil }

// Positions returns a copy of the fixed node positions, or nil if none were supplied.
func (g *Graph) Positions() map[string]Position {
	if g.pos == nil {
		return nil
	}
	return maps.Clone(g.pos)
}

// Position returns the fixed position of id and whether one exists.
func (g *Graph) Position(id string) (Position, bool) {
	p, ok := g.pos[id]
	return p, ok
}
