package label_test

import (
	"testing"

	"github.com/katalvlaran/graphtiers/graph"
	"github.com/katalvlaran/graphtiers/label"
	"github.com/stretchr/testify/require"
)

func complete(n int) *graph.Graph {
	g := graph.NewGraph(1)
	for g.NumVerts() < n {
		children := g.Extensions()
		g = children[len(children)-1]
	}

	return g
}

func TestLabelTinyGraphsReturnZeroVector(t *testing.T) {
	e := label.NewEngine(1)
	require.Equal(t, []uint32{0}, e.Label(graph.NewGraph(1)))
}

func TestLabelK4AllVerticesEqual(t *testing.T) {
	g := complete(4)
	e := label.NewEngine(4)
	sig := e.Label(g)
	require.Len(t, sig, 4)
	for _, s := range sig[1:] {
		require.Equal(t, sig[0], s, "every vertex of K_4 must carry the same signature")
	}
}

func TestLabelIsAutomorphismInvariantUnderRelabeling(t *testing.T) {
	// A 4-cycle: 0-1-2-3-0, built by extending step by step.
	g := pathPlusClosingEdge(t)
	e := label.NewEngine(g.NumVerts())
	sig := e.Label(g)

	// In a 4-cycle every vertex has the same degree and the same
	// polygon profile, so all signatures must coincide.
	for _, s := range sig[1:] {
		require.Equal(t, sig[0], s)
	}
}

func TestLabelDeterministic(t *testing.T) {
	g := complete(5)
	e1 := label.NewEngine(5)
	e2 := label.NewEngine(5)
	require.Equal(t, e1.Label(g), e2.Label(g))
}

func TestLabelEngineReusableAcrossGraphs(t *testing.T) {
	e := label.NewEngine(4)
	k4 := complete(4)
	first := append([]uint32(nil), e.Label(k4)...)
	second := e.Label(k4)
	require.Equal(t, first, second)
}

// pathPlusClosingEdge builds the 4-cycle 0-1-2-3-0.
func pathPlusClosingEdge(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph(1)
	// vertex 1: adjacent to 0 (pattern bit0=1 -> k=1)
	g = g.Extensions()[1]
	// vertex 2: adjacent to 1 only (bit0=0,bit1=1 -> k=2)
	g = g.Extensions()[2]
	// vertex 3: adjacent to 0 and 2 (bit0=1,bit1=0,bit2=1 -> k=5)
	g = g.Extensions()[5]

	return g
}
