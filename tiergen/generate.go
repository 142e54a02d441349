package tiergen

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/graphtiers/clique"
	"github.com/katalvlaran/graphtiers/label"
	"github.com/katalvlaran/graphtiers/tier"
)

// sweepInterval is how often the coordinator checks whether enough
// spills have accumulated to justify a dedup sweep. Production is
// CPU-bound between spills, so a short, cheap poll interval
// keeps the coordinator out of the way without missing sweep windows.
const sweepInterval = 2 * time.Millisecond

type chunkRef struct {
	key string
	c   *tier.Chunk
}

// GenerateNextSize produces T_{n+1} from T_n: every representative of
// prev is extended, extensions matching the forbidden-clique
// configuration are discarded, survivors are labeled and routed into a
// shared tier, and the result is fully deduplicated before return
// An empty prev yields an empty result.
func GenerateNextSize(prev *tier.Tier, opts ...Option) *tier.Tier {
	cfg := newOptions(opts...)
	global := tier.NewTier()

	var chunks []chunkRef
	prev.Range(func(key string, c *tier.Chunk) {
		chunks = append(chunks, chunkRef{key: key, c: c})
	})
	if len(chunks) == 0 {
		return global
	}

	numWorkers := cfg.numWorkers
	if numWorkers > len(chunks) {
		numWorkers = len(chunks)
	}

	var spills int64
	stop := make(chan struct{})
	coordinatorDone := make(chan struct{})
	go runCoordinator(global, cfg, &spills, stop, coordinatorDone)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerIdx int) {
			defer wg.Done()
			runWorker(workerIdx, numWorkers, chunks, global, cfg, &spills)
		}(w)
	}
	wg.Wait()

	close(stop)
	<-coordinatorDone

	beforeFinal := global.CountChunks()
	global.CleanAllParallel(cfg.numWorkers)
	afterFinal := global.CountChunks()
	if afterFinal != beforeFinal {
		// Equal ChunkLabeling always maps to the same chunk from the
		// moment it is first created; dedup only removes isomorphic
		// duplicates within a chunk, it never merges or splits chunks.
		panic("tiergen: chunk count changed across final dedup, chunk routing invariant violated")
	}

	global.Range(func(key string, c *tier.Chunk) {
		if c.Comp > cfg.monitorCompThreshold {
			cfg.logger.Printf("tiergen: chunk comp=%d exceeds monitor threshold (%d checked graphs)", c.Comp, len(c.Checked))
		}
		c.Trim()
	})

	return global
}

// runWorker processes every chunk assigned to workerIdx by
// round-robin index, spilling its local tier into global whenever it
// grows past the configured threshold.
func runWorker(workerIdx, numWorkers int, chunks []chunkRef, global *tier.Tier, cfg *Options, spills *int64) {
	local := tier.NewTier()
	eng := label.NewEngine(0)

	for idx := workerIdx; idx < len(chunks); idx += numWorkers {
		for _, rep := range chunks[idx].c.Checked {
			for _, child := range rep.Graph.Extensions() {
				if clique.Forbids(child, cfg.forbidR, cfg.forbidS) {
					continue
				}
				raw := eng.Label(child)
				local.InsertUnchecked(child, raw)
			}
		}

		if local.UncheckedTotal() >= cfg.spillThreshold {
			global.MergeFrom(local)
			atomic.AddInt64(spills, 1)
		}
	}

	global.MergeFrom(local)
	atomic.AddInt64(spills, 1)
}

// runCoordinator periodically runs a parallel dedup sweep over global
// while production is ongoing, reclaiming memory early rather than
// deferring all dedup to the end. It stops as soon
// as stop is closed, signaling its own exit via done.
func runCoordinator(global *tier.Tier, cfg *Options, spills *int64, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	var lastSweep int64
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if atomic.LoadInt64(spills)-lastSweep >= cfg.sweepEvery {
				global.CleanAllParallel(cfg.numWorkers)
				lastSweep = atomic.LoadInt64(spills)
			}
		}
	}
}
