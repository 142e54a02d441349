package label

// polygonSignatures computes, for each vertex root, a hash of its
// shortest-polygon-length histogram: for every unordered pair (left,
// right) of root's neighbors, the shortest cycle through root, left and
// right (found by a BFS from left, forbidden from reusing root, left,
// or right, looking for right) contributes one entry to the histogram.
//
// Length accounting: length = dist + 2, where dist is 1 for left itself
// and grows by one per BFS hop, so it counts the vertices on the path
// from left to right's neighbor; adding root and right makes dist + 2
// the number of edges of the shortest cycle through root, left and
// right. A length of 2 (histogram slot 0) records that no such cycle
// exists. Graphs with fewer than 3 vertices have no polygons; their
// signature vector is all zero.
func (e *Engine) polygonSignatures(g Graph) []uint32 {
	n := g.NumVerts()
	out := make([]uint32, n)
	if n < 3 {
		return out
	}

	for root := 0; root < n; root++ {
		loops := e.resetLoops()
		for left := 0; left < n-1; left++ {
			if left == root || !g.GetEdge(root, left) {
				continue
			}
			for right := left + 1; right < n; right++ {
				if right == root || !g.GetEdge(root, right) {
					continue
				}
				length := e.shortestPolygonLength(g, root, left, right, n)
				loops[length-2]++
			}
		}
		out[root] = hashUint32s(loops...)
	}

	return out
}

// shortestPolygonLength runs the left-to-right BFS described above and
// returns the polygon length, or 2 if left and right share no path
// avoiding root.
func (e *Engine) shortestPolygonLength(g Graph, root, left, right, n int) int {
	length := 2
	visited := e.resetVisited()
	visited[root] = true
	visited[left] = true
	visited[right] = true

	queue := e.queue[:0]
	queue = append(queue, bfsItem{vertex: left, dist: 1})
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if g.GetEdge(cur.vertex, right) {
			length = int(cur.dist) + 2
			break
		}
		for i := 0; i < n; i++ {
			if visited[i] || i == cur.vertex || !g.GetEdge(cur.vertex, i) {
				continue
			}
			visited[i] = true
			queue = append(queue, bfsItem{vertex: i, dist: cur.dist + 1})
		}
	}
	e.queue = queue[:0]

	return length
}
