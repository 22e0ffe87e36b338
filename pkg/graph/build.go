package graph

import (
	"errors"
	"slices"
	"strconv"

	gograph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/graph6"
	"gonum.org/v1/gonum/mat"
)

// ErrInvalidGraph6 is returned by [FromGraph6] for a malformed graph6 string.
var ErrInvalidGraph6 = errors.New("invalid graph6 string")

// FromAdjacency builds a graph from a 0/1 adjacency matrix given as rows.
//
// Nodes are "0" through strconv.Itoa(len(rows)-1). Every entry equal to 1
// yields an edge in row-major order, so a symmetric matrix produces each
// undirected edge once, oriented (lower row, higher row). Ragged rows are
// zero-padded to the longest row; a column index at or past len(rows) adds
// that node implicitly.
func FromAdjacency(rows [][]float64) *Graph {
	n := len(rows)
	cols := 0
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	if n == 0 || cols == 0 {
		g := New()
		for i := range n {
			g.AddNode(strconv.Itoa(i))
		}
		return g
	}

	data := make([]float64, n*cols)
	for i, r := range rows {
		copy(data[i*cols:], r)
	}
	return FromMatrix(mat.NewDense(n, cols, data))
}

// FromMatrix builds a graph from a gonum matrix using the same rules as
// [FromAdjacency]: the row count fixes the node set and entries equal to 1
// become edges.
func FromMatrix(m mat.Matrix) *Graph {
	g := New()
	r, c := m.Dims()
	for i := range r {
		g.AddNode(strconv.Itoa(i))
	}
	for i := range r {
		for j := range c {
			if m.At(i, j) == 1 {
				g.AddEdge(strconv.Itoa(i), strconv.Itoa(j))
			}
		}
	}
	return g
}

// FromNodes builds a graph from a plain node sequence and an edge list.
// Edge endpoints missing from nodes are added after the listed nodes.
func FromNodes(nodes []string, edges []Edge) *Graph {
	g := New()
	for _, id := range nodes {
		g.AddNode(id)
	}
	for _, e := range edges {
		g.AddEdge(e.From, e.To)
	}
	return g
}

// FromPlaced builds a graph whose nodes carry fixed positions.
// The renderer draws such graphs at the supplied coordinates instead of
// computing a layout.
func FromPlaced(nodes []PlacedNode, edges []Edge) *Graph {
	g := New()
	g.pos = make(map[string]Position, len(nodes))
	for _, n := range nodes {
		g.SetPosition(n.ID, n.Pos)
	}
	for _, e := range edges {
		g.AddEdge(e.From, e.To)
	}
	return g
}

// FromGraph6 decodes a graph6 string. Nodes are named by their graph6 index.
func FromGraph6(s string) (*Graph, error) {
	enc := graph6.Graph(s)
	if !graph6.IsValid(enc) {
		return nil, ErrInvalidGraph6
	}

	nodes := gograph.NodesOf(enc.Nodes())
	slices.SortFunc(nodes, func(a, b gograph.Node) int { return int(a.ID() - b.ID()) })

	g := New()
	for _, n := range nodes {
		g.AddNode(strconv.FormatInt(n.ID(), 10))
	}
	for _, u := range nodes {
		nbrs := gograph.NodesOf(enc.From(u.ID()))
		slices.SortFunc(nbrs, func(a, b gograph.Node) int { return int(a.ID() - b.ID()) })
		for _, v := range nbrs {
			if v.ID() > u.ID() {
				g.AddEdge(strconv.FormatInt(u.ID(), 10), strconv.FormatInt(v.ID(), 10))
			}
		}
	}
	return g, nil
}

// Graph6 encodes the graph in graph6 format, nodes numbered in insertion order.
// Self loops cannot be represented and are omitted.
func (g *Graph) Graph6() string {
	return string(graph6.Encode(g.g))
}
