package label

// Cliquer-shaped capability: the labeling engine only needs vertex
// count and symmetric edge lookup, exactly like package clique.
type Graph interface {
	NumVerts() int
	GetEdge(i, j int) bool
}

// evidence is one (distance, neighbor-label) observation gathered
// during a convolution BFS wave.
type evidence struct {
	dist  uint32
	label uint32
}

// bfsItem is one queue entry of the polygon-profile BFS.
type bfsItem struct {
	vertex int
	dist   uint32
}

// Engine holds every scratch buffer the labeling pipeline reuses across
// calls: the polygon histogram, BFS visited sets and queue, and the
// per-vertex convolution evidence. The degree, polygon-signature and
// output vectors are still allocated on every Label call.
type Engine struct {
	n int

	loops       []uint32    // polygon histogram scratch, length n
	visited     []bool      // BFS visited scratch, length n
	prevVisited []bool      // convolution "previous round" snapshot, length n
	queue       []bfsItem   // polygon-profile BFS queue, capacity n
	evidenceBuf [][]evidence // per-vertex convolution evidence, length n
}

// NewEngine returns an Engine with scratch buffers pre-sized for graphs
// on n vertices. n should be the vertex count of the tier this Engine
// will label; Label resizes automatically (and wastefully, if n keeps
// changing) for callers that don't know it in advance.
func NewEngine(n int) *Engine {
	e := &Engine{}
	e.ensureSize(n)

	return e
}

// ensureSize grows (or shrinks) every scratch buffer to size n if it
// isn't already, clearing what it reallocates.
func (e *Engine) ensureSize(n int) {
	if e.n == n {
		return
	}
	e.n = n
	e.loops = make([]uint32, n)
	e.visited = make([]bool, n)
	e.prevVisited = make([]bool, n)
	e.queue = make([]bfsItem, 0, n)
	e.evidenceBuf = make([][]evidence, n)
	for i := range e.evidenceBuf {
		e.evidenceBuf[i] = make([]evidence, 0, n)
	}
}

// resetLoops zeroes and returns the polygon-histogram scratch buffer.
func (e *Engine) resetLoops() []uint32 {
	for i := range e.loops {
		e.loops[i] = 0
	}

	return e.loops
}

// resetVisited zeroes and returns the visited scratch buffer.
func (e *Engine) resetVisited() []bool {
	for i := range e.visited {
		e.visited[i] = false
	}

	return e.visited
}
