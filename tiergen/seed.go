package tiergen

import (
	"github.com/katalvlaran/graphtiers/graph"
	"github.com/katalvlaran/graphtiers/label"
	"github.com/katalvlaran/graphtiers/tier"
)

// FirstTier returns T_1: the one-vertex, zero-edge graph, seeded
// directly as a checked representative: tier 1 always has exactly one
// graph.
func FirstTier() *tier.Tier {
	g := graph.NewGraph(1)
	raw := label.NewEngine(1).Label(g)

	return tier.NewTierFromGraph(g, raw)
}
