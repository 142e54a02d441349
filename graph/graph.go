package graph

import "github.com/katalvlaran/graphtiers/bitset"

// Graph is an undirected simple graph on n vertices indexed 0..n-1.
// Edges are stored as a lower-triangle bit sequence of length
// n*(n-1)/2: edge (i,j) with i<j lives at index j*(j-1)/2 + i.
type Graph struct {
	numVerts int
	edges    *bitset.BitVec
}

// NewGraph returns a graph on n vertices with all edges absent.
// Complexity: O(n^2) (allocates n*(n-1)/2 bits).
func NewGraph(n int) *Graph {
	numEdges := n * (n - 1) / 2
	e := bitset.New()
	for i := 0; i < numEdges; i++ {
		e.Push(false)
	}

	return &Graph{numVerts: n, edges: e}
}

// NumVerts returns the number of vertices.
func (g *Graph) NumVerts() int {
	return g.numVerts
}

// edgeIndex returns the bit index backing edge (i,j), i != j.
func edgeIndex(i, j int) int {
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}

	return hi*(hi-1)/2 + lo
}

// GetEdge reports whether an edge exists between i and j. It is
// symmetric: GetEdge(i,j) == GetEdge(j,i). Calling it with i == j is a
// precondition violation the caller must not make; the result in that
// case is unspecified: it reads an unrelated bit, or panics when that
// index lies past the stored bytes (e.g. GetEdge(0, 0) on a one-vertex
// graph).
func (g *Graph) GetEdge(i, j int) bool {
	return g.edges.Get(edgeIndex(i, j))
}
