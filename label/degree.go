package label

// degrees returns, for each vertex, its number of incident edges.
func degrees(g Graph) []uint32 {
	n := g.NumVerts()
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		var k uint32
		for j := 0; j < n; j++ {
			// The i != j guard is what skips the diagonal: GetEdge(i, i)
			// is unspecified (it reads an unrelated bit), so it must not
			// be asked.
			if i != j && g.GetEdge(i, j) {
				k++
			}
		}
		out[i] = k
	}

	return out
}
