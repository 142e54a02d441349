package tier_test

import (
	"testing"

	"github.com/katalvlaran/graphtiers/graph"
	"github.com/katalvlaran/graphtiers/label"
	"github.com/katalvlaran/graphtiers/tier"
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

func empty(n int) *graph.Graph {
	g := graph.NewGraph(1)
	for g.NumVerts() < n {
		g = g.Extensions()[0]
	}

	return g
}

func rawSig(g *graph.Graph) []uint32 {
	e := label.NewEngine(g.NumVerts())

	return e.Label(g)
}

func TestTierInsertUncheckedGroupsBySignature(t *testing.T) {
	tr := tier.NewTier()
	k4 := complete(4)
	e4 := empty(4)

	tr.InsertUnchecked(k4, rawSig(k4))
	tr.InsertUnchecked(e4, rawSig(e4))

	require.Equal(t, 2, tr.CountChunks(), "K_4 and the empty graph on 4 vertices have distinct signatures")
	checked, unchecked := tr.CountGraphs()
	require.Equal(t, 0, checked)
	require.Equal(t, 2, unchecked)
}

func TestTierCleanAllParallelDedupsIsomorphicCopies(t *testing.T) {
	tr := tier.NewTier()
	a := complete(4)
	b := complete(4) // built independently but isomorphic (identical here)

	tr.InsertUnchecked(a, rawSig(a))
	tr.InsertUnchecked(b, rawSig(b))

	checked, unchecked := tr.CountGraphs()
	require.Equal(t, 0, checked)
	require.Equal(t, 2, unchecked)

	tr.CleanAllParallel(4)

	checked, unchecked = tr.CountGraphs()
	require.Equal(t, 1, checked, "duplicate K_4 copies must collapse to one representative")
	require.Equal(t, 0, unchecked)
}

func TestTierCleanAllParallelKeepsNonIsomorphicGraphsSeparate(t *testing.T) {
	tr := tier.NewTier()
	k4 := complete(4)
	e4 := empty(4)
	tr.InsertUnchecked(k4, rawSig(k4))
	tr.InsertUnchecked(e4, rawSig(e4))

	tr.CleanAllParallel(2)

	checked, unchecked := tr.CountGraphs()
	require.Equal(t, 2, checked)
	require.Equal(t, 0, unchecked)
	require.Equal(t, 2, tr.CountChunks())
}

func TestTierMergeFromMovesGraphsAndEmptiesLocal(t *testing.T) {
	global := tier.NewTier()
	local := tier.NewTier()

	k4 := complete(4)
	local.InsertUnchecked(k4, rawSig(k4))
	require.Equal(t, 1, local.CountChunks())

	global.MergeFrom(local)

	require.Equal(t, 0, local.CountChunks())
	_, unchecked := global.CountGraphs()
	require.Equal(t, 1, unchecked)
}

func TestNewTierFromGraphSeedsAsChecked(t *testing.T) {
	one := graph.NewGraph(1)
	tr := tier.NewTierFromGraph(one, []uint32{0})

	checked, unchecked := tr.CountGraphs()
	require.Equal(t, 1, checked)
	require.Equal(t, 0, unchecked)
}

func TestTierRangeVisitsEveryChunk(t *testing.T) {
	tr := tier.NewTier()
	k4 := complete(4)
	e4 := empty(4)
	tr.InsertUnchecked(k4, rawSig(k4))
	tr.InsertUnchecked(e4, rawSig(e4))

	seen := 0
	tr.Range(func(key string, c *tier.Chunk) {
		seen++
		require.NotEmpty(t, key)
		require.NotNil(t, c)
	})
	require.Equal(t, 2, seen)
}
