package clique

// MembershipCounts returns, for each vertex v, the number of
// monochromatic K_k cliques (in color) that v participates in. k must
// be in [MinK, MaxK].
//
// label.Engine.Label does not call this — it is a standalone
// diagnostic for tests and tooling that want to inspect why two graphs
// collapsed into the same chunk, not a production signature ingredient.
func MembershipCounts(g Cliquer, color bool, k int) []uint32 {
	n := g.NumVerts()
	counts := make([]uint32, n)
	if n < k {
		return counts
	}

	chosen := make([]int, 0, k)
	countMemberships(g, color, k, n, 0, chosen, counts)

	return counts
}

// countMemberships enumerates every increasing k-tuple forming a
// monochromatic clique and increments the membership count of each of
// its vertices.
func countMemberships(g Cliquer, color bool, k, limit, start int, chosen []int, counts []uint32) {
	if len(chosen) == k {
		for _, v := range chosen {
			counts[v]++
		}
		return
	}
	need := k - len(chosen)
	for v := start; v <= limit-need; v++ {
		if matchesAll(g, color, v, chosen) {
			countMemberships(g, color, k, limit, v+1, append(chosen, v), counts)
		}
	}
}
