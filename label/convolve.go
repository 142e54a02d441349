package label

import "sort"

// convolve performs one refinement pass over labels in place: for each
// vertex root, a BFS-wave expansion of the graph visits the
// as-yet-unvisited neighbors of the current frontier round by round;
// every newly discovered vertex w at round curr_dist contributes the
// pair (curr_dist, labels[w]) to root's evidence multiset. Once sorted,
// that multiset — combined with root's own previous label — becomes
// root's refined label.
//
// Composing the previous label into the hash guarantees the resulting
// partition is never coarser than the one labels already encoded
// ("convolution monotonicity").
func (e *Engine) convolve(g Graph, labels []uint32) {
	n := g.NumVerts()
	for i := range e.evidenceBuf {
		e.evidenceBuf[i] = e.evidenceBuf[i][:0]
	}

	for root := 0; root < n; root++ {
		visited := e.resetVisited()
		visited[root] = true
		current := e.evidenceBuf[root]
		currDist := uint32(0)
		for {
			currDist++
			copy(e.prevVisited, visited)
			toBreak := true
			for i := 0; i < n; i++ {
				if !e.prevVisited[i] {
					continue
				}
				for j := 0; j < n; j++ {
					if i == j || visited[j] || !g.GetEdge(i, j) {
						continue
					}
					visited[j] = true
					toBreak = false
					current = append(current, evidence{dist: currDist, label: labels[j]})
				}
			}
			if toBreak {
				break
			}
		}
		e.evidenceBuf[root] = current
	}

	for i := 0; i < n; i++ {
		ev := e.evidenceBuf[i]
		sort.Slice(ev, func(a, b int) bool {
			if ev[a].dist != ev[b].dist {
				return ev[a].dist < ev[b].dist
			}

			return ev[a].label < ev[b].label
		})
		labels[i] = hashEvidence(labels[i], ev)
	}
}
