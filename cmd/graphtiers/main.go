// Command graphtiers generates, tier by tier, every finite simple
// graph avoiding a forbidden monochromatic clique pattern, up to
// isomorphism, and writes each tier's representatives to out/n.txt.
//
// It takes no arguments. It runs from the one-vertex graph up through
// maxTier, or until a tier comes back empty, whichever happens first,
// and exits 0 on success. Any I/O failure terminates the run.
package main

import (
	"log"
	"time"

	"github.com/katalvlaran/graphtiers/catalog"
	"github.com/katalvlaran/graphtiers/tiergen"
)

// maxTier bounds the run: tier 20 extensions is well past R(4,4)'s
// known lower bound, so the forbids(4, 4) configuration always
// terminates by an empty tier before this limit is reached.
const maxTier = 20

func main() {
	log.SetFlags(log.Lmicroseconds)

	cur := tiergen.FirstTier()
	checked, unchecked := cur.CountGraphs()
	logTierStats(1, cur.CountChunks(), checked+unchecked, 0)
	if err := catalog.WriteTier(1, cur); err != nil {
		log.Fatalf("graphtiers: writing tier 1: %v", err)
	}

	for n := 2; n <= maxTier; n++ {
		start := time.Now()
		next := tiergen.GenerateNextSize(cur, tiergen.ForbidR(4), tiergen.ForbidS(4))
		checked, unchecked := next.CountGraphs()
		total := checked + unchecked
		logTierStats(n, next.CountChunks(), total, time.Since(start))

		if total == 0 {
			log.Printf("graphtiers: tier %d empty, stopping", n)
			return
		}

		if err := catalog.WriteTier(n, next); err != nil {
			log.Fatalf("graphtiers: writing tier %d: %v", n, err)
		}

		// cur (tier n-1) is no longer reachable from anywhere but this
		// loop once it is overwritten; nothing keeps its graphs alive
		// past this point, so tier n-2 was already released the
		// previous time through.
		cur = next
	}
}

func logTierStats(n, chunks, graphs int, elapsed time.Duration) {
	log.Printf("tier %d: %d graphs in %d chunks (%v)", n, graphs, chunks, elapsed)
}
