package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triadic/labels"
	"github.com/katalvlaran/triadic/loader"
)

const edgesCSV = `source,target
alice,bob
bob,carol
carol,alice
carol,dave
bob,alice
dave,dave
`

const labelsCSV = `vertex,label
alice,red
bob,red
carol,red
dave,blue
erin,blue
`

func TestLoad(t *testing.T) {
	ds, err := loader.Load(strings.NewReader(edgesCSV), strings.NewReader(labelsCSV), loader.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"alice", "bob", "carol", "dave", "erin"}, ds.Names)
	assert.Equal(t, 5, ds.Graph.VertexCount())
	assert.Equal(t, 4, ds.Graph.EdgeCount())
	assert.Equal(t, 1, ds.SelfLoops)
	assert.Equal(t, 1, ds.Repeated)
	assert.Empty(t, ds.Graph.Neighbors(5), "labeled but unconnected vertex is isolated")

	// blue=1, red=2 in sorted label order.
	assert.Equal(t, labels.Assignment{2, 2, 2, 1, 1}, ds.Labels)
	assert.Equal(t, []string{"blue", "red"}, ds.Encoder.Names())
	assert.Equal(t, "carol", ds.Name(3))
	assert.Equal(t, "", ds.Name(9))
	assert.True(t, ds.Graph.HasEdge(3, 4))
}

func TestLoad_MissingLabel(t *testing.T) {
	_, err := loader.Load(
		strings.NewReader("a,b\n"),
		strings.NewReader("a,x\n"),
		loader.Options{Delimiter: ','},
	)
	assert.ErrorIs(t, err, loader.ErrMissingLabel)
}

func TestLoad_ConflictingLabel(t *testing.T) {
	_, err := loader.Load(
		strings.NewReader("a,b\n"),
		strings.NewReader("a,x\nb,y\na,z\n"),
		loader.Options{Delimiter: ','},
	)
	assert.ErrorIs(t, err, loader.ErrConflictingLabel)

	// Repeating the same label is fine.
	_, err = loader.Load(
		strings.NewReader("a,b\n"),
		strings.NewReader("a,x\nb,y\na,x\n"),
		loader.Options{Delimiter: ','},
	)
	assert.NoError(t, err)
}

func TestLoad_ShortRow(t *testing.T) {
	_, err := loader.Load(
		strings.NewReader("a\n"),
		strings.NewReader("a,x\n"),
		loader.Options{Delimiter: ','},
	)
	assert.ErrorIs(t, err, loader.ErrShortRow)
}

func TestLoad_TabsCommentsAndExtraColumns(t *testing.T) {
	edges := "# exported edges\nu\tv\tweight\nx\ty\t0.5\n"
	labs := "vertex\tlabel\nx\tA\ny\tB\n"
	ds, err := loader.Load(strings.NewReader(edges), strings.NewReader(labs),
		loader.Options{Delimiter: '\t', Header: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, ds.Names)
	assert.Equal(t, 1, ds.Graph.EdgeCount())
	assert.Equal(t, labels.Assignment{1, 2}, ds.Labels)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	ep := filepath.Join(dir, "edges.csv")
	lp := filepath.Join(dir, "labels.csv")
	require.NoError(t, os.WriteFile(ep, []byte(edgesCSV), 0o600))
	require.NoError(t, os.WriteFile(lp, []byte(labelsCSV), 0o600))

	ds, err := loader.LoadFiles(ep, lp, loader.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 4, ds.Graph.EdgeCount())

	_, err = loader.LoadFiles(filepath.Join(dir, "missing.csv"), lp, loader.DefaultOptions())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
