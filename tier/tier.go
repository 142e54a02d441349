package tier

import (
	"sync"

	"github.com/katalvlaran/graphtiers/graph"
)

// Tier is the shared store for one graph size: every chunk discovered
// so far for that size, keyed by its ChunkLabeling. All access goes
// through mu, including reads: a global tier is written
// concurrently by many workers, and a local (per-worker) tier is a Tier
// too, so the same type serves both roles without a second API.
type Tier struct {
	mu     sync.Mutex
	chunks map[string]*Chunk
}

// NewTier returns an empty tier.
func NewTier() *Tier {
	return &Tier{chunks: make(map[string]*Chunk)}
}

// NewTierFromGraph returns a tier containing a single graph, used to
// seed tier 1 with its lone one-vertex graph.
func NewTierFromGraph(g *graph.Graph, raw []uint32) *Tier {
	t := NewTier()
	t.InsertChecked(g, raw)

	return t
}

// InsertChecked adds g directly to its chunk's Checked list, bypassing
// dedup. Used when the caller already knows g has no duplicate in its
// chunk, e.g. seeding tier 1.
func (t *Tier) InsertChecked(g *graph.Graph, raw []uint32) {
	t.insert(g, raw, true)
}

// InsertUnchecked adds g to its chunk's unchecked queue, to be
// deduplicated later by CleanAllParallel.
func (t *Tier) InsertUnchecked(g *graph.Graph, raw []uint32) {
	t.insert(g, raw, false)
}

func (t *Tier) insert(g *graph.Graph, raw []uint32, toChecked bool) {
	sorted := sortedSignature(raw)
	lg := &LabeledGraph{Graph: g, Labels: normalize(raw, sorted)}

	key := sorted.key()

	t.mu.Lock()
	defer t.mu.Unlock()

	c, ok := t.chunks[key]
	if !ok {
		c = newChunk(sorted)
		t.chunks[key] = c
	}
	if toChecked {
		c.Checked = append(c.Checked, lg)
	} else {
		c.unchecked = append(c.unchecked, lg)
	}
}

// CountChunks reports the number of distinct chunks currently held.
func (t *Tier) CountChunks() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.chunks)
}

// CountGraphs reports the total number of checked and unchecked graphs
// across all chunks.
func (t *Tier) CountGraphs() (checked, unchecked int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, c := range t.chunks {
		checked += len(c.Checked)
		unchecked += c.UncheckedLen()
	}

	return checked, unchecked
}

// UncheckedTotal reports the live unchecked graph count across all
// chunks, used by the generator to decide when a worker's local tier
// has grown past its spill threshold.
func (t *Tier) UncheckedTotal() int {
	_, unchecked := t.CountGraphs()

	return unchecked
}

// MergeFrom moves every graph in local into t's matching chunks (as
// unchecked candidates, since local never ran dedup against t's
// representatives) and empties local. This is the periodic "spill" by
// which a worker's thread-local tier feeds the shared global tier.
func (t *Tier) MergeFrom(local *Tier) {
	local.mu.Lock()
	localChunks := local.chunks
	local.chunks = make(map[string]*Chunk)
	local.mu.Unlock()

	t.mu.Lock()
	defer t.mu.Unlock()

	for key, lc := range localChunks {
		c, ok := t.chunks[key]
		if !ok {
			c = newChunk(lc.Labeling)
			t.chunks[key] = c
		}
		c.unchecked = append(c.unchecked, lc.Checked...)
		c.unchecked = append(c.unchecked, lc.unchecked...)
	}
}

// CleanAllParallel runs CleanIsos over every chunk, distributing chunks
// across at most workers goroutines. mu is held for the whole sweep, so
// no MergeFrom can append to a chunk while it is being cleaned.
func (t *Tier) CleanAllParallel(workers int) {
	if workers < 1 {
		workers = 1
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	snapshot := make([]*Chunk, 0, len(t.chunks))
	for _, c := range t.chunks {
		snapshot = append(snapshot, c)
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for _, c := range snapshot {
		c := c
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			c.CleanIsos()
		}()
	}
	wg.Wait()
}

// Range calls fn once per chunk currently stored, for catalog
// serialization. fn must not call back into t.
func (t *Tier) Range(fn func(key string, c *Chunk)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for key, c := range t.chunks {
		fn(key, c)
	}
}
