// Package tier implements Chunk and Tier bookkeeping: grouping labeled
// graphs by their sorted raw signature multiset (ChunkLabeling), and,
// within each chunk, deduping `unchecked` candidates against `checked`
// representatives and each other via package iso's color-refined
// isomorphism oracle.
//
// A Tier is a single shared container guarded by one mutex covering
// both reads and writes, rather than a split reader/writer lock pair:
// a global tier is written far more than it is read without writing
// during production, so a plain sync.Mutex fits better than an
// RWMutex here.
package tier
