package catalog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/graphtiers/graph"
	"github.com/katalvlaran/graphtiers/tier"
)

// Dir is the directory tier catalog files are written under and read
// from. It is ensured to exist before every write.
const Dir = "out"

func tierPath(n int) string {
	return filepath.Join(Dir, fmt.Sprintf("%d.txt", n))
}

// WriteTier writes tier n's checked representatives to out/n.txt, one
// line per chunk, semicolon-joined base64 graphs per line.
func WriteTier(n int, t *tier.Tier) error {
	if err := os.MkdirAll(Dir, 0o755); err != nil {
		return err
	}

	f, err := os.Create(tierPath(n))
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	var writeErr error
	t.Range(func(key string, c *tier.Chunk) {
		if writeErr != nil {
			return
		}
		parts := make([]string, len(c.Checked))
		for i, lg := range c.Checked {
			parts[i] = lg.Graph.ToString()
		}
		if _, err := w.WriteString(strings.Join(parts, ";")); err != nil {
			writeErr = err
			return
		}
		if err := w.WriteByte('\n'); err != nil {
			writeErr = err
		}
	})
	if writeErr != nil {
		return writeErr
	}

	return w.Flush()
}

func isDelimiter(r rune) bool { return r == ';' || r == '{' || r == '}' }

// ReadTier reads out/n.txt back into per-chunk graph slices. numVerts
// must be supplied by the caller: vertex count travels out-of-band
// from the serialized edge bits.
func ReadTier(n, numVerts int) ([][]*graph.Graph, error) {
	f, err := os.Open(tierPath(n))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var chunks [][]*graph.Graph
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.FieldsFunc(sc.Text(), isDelimiter)
		var chunkGraphs []*graph.Graph
		for _, field := range fields {
			if len(field) < 2 {
				continue
			}
			g, err := graph.FromString(field, numVerts)
			if err != nil {
				return nil, err
			}
			chunkGraphs = append(chunkGraphs, g)
		}
		chunks = append(chunks, chunkGraphs)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return chunks, nil
}

// VerifyTier writes t to disk as tier n, then reads it back and
// confirms the chunk count and total representative count survive the
// round-trip (see DESIGN.md).
func VerifyTier(n, numVerts int, t *tier.Tier) error {
	if err := WriteTier(n, t); err != nil {
		return err
	}

	chunks, err := ReadTier(n, numVerts)
	if err != nil {
		return err
	}

	if len(chunks) != t.CountChunks() {
		return fmt.Errorf("%w: wrote %d, read %d", ErrChunkCountMismatch, t.CountChunks(), len(chunks))
	}

	checked, _ := t.CountGraphs()
	gotGraphs := 0
	for _, c := range chunks {
		gotGraphs += len(c)
	}
	if gotGraphs != checked {
		return fmt.Errorf("%w: wrote %d, read %d", ErrGraphCountMismatch, checked, gotGraphs)
	}

	return nil
}
