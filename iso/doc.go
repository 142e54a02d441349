// Package iso decides graph isomorphism restricted to graphs that
// already share a label multiset (a tier.ChunkLabeling): given two
// Labeled graphs of equal size whose per-vertex labels partition into
// matching-size color classes, IsIso searches for a vertex permutation,
// respecting those color classes, under which every edge matches.
//
// The search generates permutations one color class at a time via
// recursive swapping, smallest class first, and aborts a branch as
// soon as the vertices fixed so far already disagree on an edge — the
// same early-exit, color-partitioned backtracking used by the
// prototype's is_color_iso/rec_iso_check/permute.
package iso
