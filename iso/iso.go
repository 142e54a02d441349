package iso

import "sort"

// Labeled is the capability IsIso needs: vertex count, edge lookup, and
// a per-vertex label whose value range is [0, NumVerts()). Within one
// chunk, every graph's labels partition its vertices into color classes
// of the same sizes, in the same order once sorted — that invariant is
// what lets IsIso compare two graphs' partitions position by position.
type Labeled interface {
	NumVerts() int
	GetEdge(i, j int) bool
	Label(v int) int
}

// IsIso reports whether g and h are isomorphic as unlabeled graphs, by
// searching for a label-respecting vertex bijection under which every
// edge matches. Callers are expected to only compare graphs already
// known to share a ChunkLabeling; graphs of different sizes are
// reported non-isomorphic without searching.
func IsIso(g, h Labeled) bool {
	n := g.NumVerts()
	if h.NumVerts() != n {
		return false
	}
	if n == 0 {
		return true
	}

	vertsG := partitionByLabel(g, n)
	vertsH := partitionByLabel(h, n)
	sortByLen(vertsG)
	sortByLen(vertsH)
	collapsedH := collapse(vertsH)

	// Skip directly to the first class with more than one member:
	// singleton classes have exactly one possible assignment, so there
	// is nothing to branch on for them.
	start := len(vertsG)
	for start > 0 && len(vertsG[start-1]) > 1 {
		start--
	}

	return recIsoCheck(start, vertsG, collapsedH, g, h)
}

// partitionByLabel buckets vertices 0..n-1 of g by their label value.
func partitionByLabel(g Labeled, n int) [][]int {
	buckets := make([][]int, n)
	for v := 0; v < n; v++ {
		l := g.Label(v)
		buckets[l] = append(buckets[l], v)
	}

	return buckets
}

// sortByLen orders classes smallest-first. It is stable, and since two
// graphs sharing a chunk have identical class-size sequences indexed by
// label, a stable sort produces the same class ordering for both
// graphs — which is what lets recIsoCheck compare g's and h's classes
// position by position.
func sortByLen(parts [][]int) {
	sort.SliceStable(parts, func(i, j int) bool { return len(parts[i]) < len(parts[j]) })
}

// collapse flattens a partition into a single vertex-index sequence.
func collapse(parts [][]int) []int {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]int, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// compare rebuilds g's current collapsed order from vertsG and checks
// that every edge among the first nCompare positions agrees between g
// (under collapsedG) and h (under the fixed collapsedH).
func compare(g, h Labeled, nCompare int, vertsG [][]int, collapsedH []int) bool {
	collapsedG := collapse(vertsG)
	for i := 0; i < nCompare-1; i++ {
		for j := i + 1; j < nCompare; j++ {
			if g.GetEdge(collapsedG[i], collapsedG[j]) != h.GetEdge(collapsedH[i], collapsedH[j]) {
				return false
			}
		}
	}

	return true
}

// recIsoCheck dispatches on depth, a color-class index: once every
// class has been assigned an internal order, the whole collapsed
// sequence is compared; otherwise permute explores that class's
// orderings.
func recIsoCheck(depth int, vertsG [][]int, collapsedH []int, g, h Labeled) bool {
	if depth >= len(vertsG) {
		return compare(g, h, g.NumVerts(), vertsG, collapsedH)
	}

	depthToNow := 0
	for i := 0; i < depth; i++ {
		depthToNow += len(vertsG[i])
	}

	return permute(depthToNow, 0, depth, vertsG, collapsedH, g, h)
}

// permute generates orderings of vertsG[depth] by recursive swapping.
// Once sub_depth reaches the class size, the class's order is fixed and
// recIsoCheck moves to the next class. Before branching further, it
// compares every vertex fixed so far (across all classes) and prunes
// immediately on the first mismatch — class sizes below 2 vertices
// fixed overall never prune, matching the top-level skip-to-start
// optimization.
func permute(depthToNow, subDepth, depth int, vertsG [][]int, collapsedH []int, g, h Labeled) bool {
	class := vertsG[depth]
	if subDepth == len(class) {
		return recIsoCheck(depth+1, vertsG, collapsedH, g, h)
	}
	if depthToNow+subDepth > 1 && !compare(g, h, depthToNow+subDepth, vertsG, collapsedH) {
		return false
	}

	orig := append([]int(nil), class...)
	for i := subDepth; i < len(class); i++ {
		next := append([]int(nil), orig...)
		next[subDepth], next[i] = next[i], next[subDepth]
		vertsG[depth] = next
		if permute(depthToNow, subDepth+1, depth, vertsG, collapsedH, g, h) {
			return true
		}
	}
	vertsG[depth] = orig

	return false
}
