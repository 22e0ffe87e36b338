// Package graph provides the undirected graph that graphlight styles and renders.
//
// # Overview
//
// A [Graph] is an ordered set of node identifiers plus a set of unordered node
// pairs. It is backed by a gonum [simple.UndirectedGraph] for adjacency and
// degree queries, with an extra index that remembers the order in which nodes
// and adjacencies were created so that iteration is deterministic.
//
// # Building
//
// Graphs are built from one of four sources:
//
//	g := graph.FromAdjacency([][]float64{{0, 1}, {1, 0}})    // nodes "0", "1"
//	g := graph.FromMatrix(mat.NewDense(2, 2, []float64{0, 1, 1, 0}))
//	g := graph.FromNodes([]string{"a", "b"}, []graph.Edge{{From: "a", To: "b"}})
//	g := graph.FromPlaced([]graph.PlacedNode{{ID: "a", Pos: graph.Position{X: 0, Y: 0}}}, nil)
//
// [FromGraph6] decodes the graph6 interchange format. None of the builders
// validate their input: a matrix entry counts as an edge only when it is
// exactly 1, ragged matrices are zero-padded, and an edge naming an unknown
// node adds that node.
//
// # Iteration Order
//
// [Graph.Nodes] returns identifiers in insertion order. [Graph.Edges] walks the
// nodes in that order and, for each node, its neighbours in the order the
// adjacency was created, yielding every undirected pair exactly once. The
// orientation of a yielded [Edge] is therefore (first visited, other), which
// matters to callers that look edges up by exact pair.
//
// # Self Loops
//
// A self loop is kept as an edge and contributes 2 to its node's degree. Loops
// are tracked outside the gonum graph, which does not admit them.
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. Once built it is only read, and
// concurrent reads are safe.
package graph
