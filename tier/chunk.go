package tier

import (
	"github.com/katalvlaran/graphtiers/graph"
	"github.com/katalvlaran/graphtiers/iso"
)

// LabeledGraph pairs a Graph with its GraphLabeling. It is created once
// when a graph enters a tier and never mutated afterward; it is dropped
// only when found isomorphic to a checked representative, or when its
// tier is released.
type LabeledGraph struct {
	Graph  *graph.Graph
	Labels GraphLabeling
}

// NumVerts, GetEdge and Label implement iso.Labeled, so LabeledGraph
// can be passed directly to the isomorphism checker without tier
// importing iso's concrete types.
func (lg *LabeledGraph) NumVerts() int         { return lg.Graph.NumVerts() }
func (lg *LabeledGraph) GetEdge(i, j int) bool { return lg.Graph.GetEdge(i, j) }
func (lg *LabeledGraph) Label(v int) int       { return int(lg.Labels[v]) }

// Chunk is a bucket of graphs sharing one ChunkLabeling.
type Chunk struct {
	Labeling ChunkLabeling
	Comp     uint64

	Checked   []*LabeledGraph
	unchecked []*LabeledGraph // nil entries are tombstones
}

// newChunk creates an empty chunk for the given sorted signature,
// computing its comp once up front.
func newChunk(sorted ChunkLabeling) *Chunk {
	return &Chunk{
		Labeling: sorted,
		Comp:     complexity(sorted),
	}
}

// UncheckedLen reports the number of live (non-tombstone) unchecked
// entries, used by the generator's spill-threshold accounting.
func (c *Chunk) UncheckedLen() int {
	n := 0
	for _, u := range c.unchecked {
		if u != nil {
			n++
		}
	}

	return n
}

// CleanIsos drains c.unchecked into c.Checked, discarding duplicates.
// Two stages: first every checked representative against every live
// unchecked entry (checked representatives tend to witness the
// smallest equivalence classes, so this kills most duplicates cheaply);
// then a pairwise sweep among whatever unchecked entries survive.
// Postcondition: c.unchecked is empty and no two entries in c.Checked
// are isomorphic.
func (c *Chunk) CleanIsos() {
	for _, rep := range c.Checked {
		for i, u := range c.unchecked {
			if u == nil {
				continue
			}
			if iso.IsIso(rep, u) {
				c.unchecked[i] = nil
			}
		}
	}

	for i := 0; i < len(c.unchecked); i++ {
		u := c.unchecked[i]
		if u == nil {
			continue
		}
		for j := i + 1; j < len(c.unchecked); j++ {
			v := c.unchecked[j]
			if v == nil {
				continue
			}
			if iso.IsIso(u, v) {
				c.unchecked[j] = nil
			}
		}
		c.Checked = append(c.Checked, u)
	}
	c.unchecked = c.unchecked[:0]
}

// Trim releases spare capacity from Checked and the drained unchecked
// buffer, called once per chunk during final cleanup.
func (c *Chunk) Trim() {
	checked := make([]*LabeledGraph, len(c.Checked))
	copy(checked, c.Checked)
	c.Checked = checked
	c.unchecked = nil
}
