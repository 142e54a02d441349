package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/graphtiers/catalog"
	"github.com/katalvlaran/graphtiers/graph"
	"github.com/katalvlaran/graphtiers/label"
	"github.com/katalvlaran/graphtiers/tier"
	"github.com/katalvlaran/graphtiers/tiergen"
	"github.com/stretchr/testify/require"
)

// chdirTemp switches the working directory to a fresh temp dir for the
// duration of the test, so catalog's fixed "out/" directory never
// touches the real repo.
func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}

func sampleTier(t *testing.T) (*tier.Tier, int) {
	t.Helper()
	t1 := tiergen.FirstTier()
	t2 := tiergen.GenerateNextSize(t1, tiergen.ForbidR(4), tiergen.ForbidS(4))

	return t2, 2
}

func TestWriteTierCreatesOutDirAndFile(t *testing.T) {
	chdirTemp(t)
	tr, n := sampleTier(t)

	require.NoError(t, catalog.WriteTier(n, tr))

	info, err := os.Stat(catalog.Dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	_, err = os.Stat(catalog.Dir + "/2.txt")
	require.NoError(t, err)
}

func TestReadTierRoundTripsGraphCount(t *testing.T) {
	chdirTemp(t)
	tr, n := sampleTier(t)
	require.NoError(t, catalog.WriteTier(n, tr))

	chunks, err := catalog.ReadTier(n, n)
	require.NoError(t, err)

	checked, _ := tr.CountGraphs()
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	require.Equal(t, checked, total)
	require.Equal(t, tr.CountChunks(), len(chunks))
}

func TestVerifyTierSucceedsOnFreshlyWrittenTier(t *testing.T) {
	chdirTemp(t)
	tr, n := sampleTier(t)
	require.NoError(t, catalog.VerifyTier(n, n, tr))
}

func TestWriteTierFormatIsSemicolonDelimited(t *testing.T) {
	chdirTemp(t)

	tr := tier.NewTier()
	e := label.NewEngine(1)
	g1 := graph.NewGraph(1)
	tr.InsertChecked(g1, e.Label(g1))

	require.NoError(t, catalog.WriteTier(1, tr))

	contents, err := os.ReadFile(catalog.Dir + "/1.txt")
	require.NoError(t, err)
	require.NotContains(t, string(contents), ";;")
}

func TestReadTierPropagatesMalformedBase64(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.MkdirAll(catalog.Dir, 0o755))
	path := filepath.Join(catalog.Dir, "3.txt")
	require.NoError(t, os.WriteFile(path, []byte("not-valid-base64!!!\n"), 0o644))

	_, err := catalog.ReadTier(3, 3)
	require.ErrorIs(t, err, graph.ErrMalformedBase64)
}
