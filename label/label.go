package label

// Label computes g's raw signature vector: one u32 per vertex,
// invariant under graph automorphism. Graphs with fewer than 2 vertices
// short-circuit to the single-element zero vector, matching the
// prototype's own convention (there is nothing to discriminate below 2
// vertices, and tier 1's one-vertex graph still needs a usable
// ChunkLabeling).
func (e *Engine) Label(g Graph) []uint32 {
	n := g.NumVerts()
	if n < 2 {
		return []uint32{0}
	}
	e.ensureSize(n)

	d := degrees(g)
	p := e.polygonSignatures(g)
	l0 := make([]uint32, n)
	for i := 0; i < n; i++ {
		l0[i] = hashUint32s(d[i], p[i])
	}
	e.convolve(g, l0)

	return l0
}
