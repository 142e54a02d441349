// Package label computes per-vertex isomorphism-invariant signatures
// used to partition a tier into equivalence classes guaranteed to be
// closed under isomorphism.
//
// The pipeline: degree, a shortest-polygon profile per vertex (a BFS
// through each pair of neighbors, forbidden from revisiting the root),
// combined into an initial label L0, then refined by one convolution
// pass that folds in a sorted (distance, neighbor-label) evidence
// multiset gathered by a Kruskal-style BFS-wave expansion from each
// vertex. Composing the previous label's hash into the next guarantees
// the refinement never coarsens the partition.
//
// Engine holds every scratch buffer the pipeline needs — reused across
// calls within one tier, under a "callers supply a reusable buffer"
// contract. An Engine must
// not be shared across goroutines: the tier generator gives each worker
// its own.
package label
