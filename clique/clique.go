package clique

// Cliquer is the minimal read-only capability clique detection needs:
// vertex count and a symmetric edge lookup. graph.Graph satisfies this
// interface without clique importing graph, keeping the dependency
// direction leaf-ward.
type Cliquer interface {
	NumVerts() int
	GetEdge(i, j int) bool
}

// MinK and MaxK bound the clique sizes this package supports (k in
// {3..7}).
const (
	MinK = 3
	MaxK = 7
)

// HasK reports whether g contains a monochromatic K_k in color (true =
// edge-present, false = edge-absent). k must be in [MinK, MaxK].
func HasK(g Cliquer, color bool, k int) bool {
	n := g.NumVerts()
	if n < k {
		return false
	}

	chosen := make([]int, 0, k)

	return searchClique(g, color, k, n, 0, chosen)
}

// HasKIncludingLast reports whether g contains a monochromatic K_k that
// includes vertex n-1 (the highest-indexed vertex). This is the only
// form the tier generator uses in production: when extending a tier,
// any clique not touching the new vertex was already absent from the
// (already-filtered) parent.
func HasKIncludingLast(g Cliquer, color bool, k int) bool {
	n := g.NumVerts()
	if n < k {
		return false
	}
	last := n - 1
	chosen := make([]int, 0, k)
	chosen = append(chosen, last)

	return searchCliqueFixedLast(g, color, k, last, 0, chosen)
}

// searchClique enumerates increasing k-tuples of vertex indices in
// [0,limit) whose every pairwise edge matches color, backtracking as
// soon as a newly-added candidate mismatches an already-chosen vertex.
func searchClique(g Cliquer, color bool, k, limit, start int, chosen []int) bool {
	if len(chosen) == k {
		return true
	}
	// Not enough remaining candidates to complete the clique.
	need := k - len(chosen)
	for v := start; v <= limit-need; v++ {
		if matchesAll(g, color, v, chosen) {
			if searchClique(g, color, k, limit, v+1, append(chosen, v)) {
				return true
			}
		}
	}

	return false
}

// searchCliqueFixedLast enumerates increasing (k-1)-tuples of vertex
// indices in [0,last) to complete a clique that already contains last.
func searchCliqueFixedLast(g Cliquer, color bool, k, last, start int, chosen []int) bool {
	if len(chosen) == k {
		return true
	}
	need := k - len(chosen)
	for v := start; v <= last-need; v++ {
		if matchesAll(g, color, v, chosen) {
			if searchCliqueFixedLast(g, color, k, last, v+1, append(chosen, v)) {
				return true
			}
		}
	}

	return false
}

// matchesAll reports whether edge(v, c) == color for every c already chosen.
func matchesAll(g Cliquer, color bool, v int, chosen []int) bool {
	for _, c := range chosen {
		if g.GetEdge(v, c) != color {
			return false
		}
	}

	return true
}

// Forbids is the forbidden-pair query used by the tier generator: it
// returns true iff g contains a true-colored K_r, or a false-colored
// K_s, including the last vertex. r and s must each be in [MinK, MaxK].
func Forbids(g Cliquer, r, s int) bool {
	if HasKIncludingLast(g, true, r) {
		return true
	}

	return HasKIncludingLast(g, false, s)
}
