package graph

import "github.com/katalvlaran/graphtiers/bitset"

// Extensions returns the 2^n graphs on n+1 vertices obtained by adding
// one new vertex to g and choosing, independently, its adjacency to
// each of the n existing vertices. Child k (0 <= k < 2^n) carries g's
// edges unchanged plus an edge from the new vertex to old vertex j iff
// bit j of k is set; the order is stable (ascending k).
func (g *Graph) Extensions() []*Graph {
	n := g.numVerts
	count := 1 << uint(n)
	out := make([]*Graph, count)
	for k := 0; k < count; k++ {
		out[k] = g.extend(k)
	}

	return out
}

// extend builds the single child identified by adjacency pattern k.
func (g *Graph) extend(k int) *Graph {
	n := g.numVerts
	oldBits := g.edges.Len()
	childEdges := bitset.New()
	for i := 0; i < oldBits; i++ {
		childEdges.Push(g.edges.Get(i))
	}
	for j := 0; j < n; j++ {
		childEdges.Push((k>>uint(j))&1 != 0)
	}

	return &Graph{numVerts: n + 1, edges: childEdges}
}
