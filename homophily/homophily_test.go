package homophily_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triadic/adjacency"
	"github.com/katalvlaran/triadic/builder"
	"github.com/katalvlaran/triadic/homophily"
	"github.com/katalvlaran/triadic/labels"
)

func TestMixing_Counts(t *testing.T) {
	g, err := adjacency.New(4, []adjacency.Edge{{X: 1, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 3}, {X: 3, Y: 4}})
	require.NoError(t, err)

	m, edges, err := homophily.Mixing(g, labels.Assignment{1, 1, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 4, edges)
	assert.Equal(t, 6.0, m.At(0, 0))
	assert.Equal(t, 1.0, m.At(0, 1))
	assert.Equal(t, 1.0, m.At(1, 0))
	assert.Equal(t, 0.0, m.At(1, 1))
}

func TestAnalyze_PerfectlyAssortative(t *testing.T) {
	g, lab, err := builder.BuildGraph(nil, builder.PlantedPartition([]int{3, 3}, 1, 0))
	require.NoError(t, err)

	s, err := homophily.Analyze(g, lab)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Categories)
	assert.Equal(t, 6, s.SameLabel)
	assert.InDelta(t, 1.0, s.EdgeHomophily.Float64Or(-9), 1e-12)
	assert.InDelta(t, 1.0, s.Assortativity.Float64Or(-9), 1e-12)

	r, c := s.Mixing.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.InDelta(t, 0.5, s.Mixing.At(0, 0), 1e-12)
}

func TestAnalyze_PerfectlyDisassortative(t *testing.T) {
	g, err := adjacency.New(4, []adjacency.Edge{{X: 1, Y: 3}, {X: 1, Y: 4}, {X: 2, Y: 3}, {X: 2, Y: 4}})
	require.NoError(t, err)

	s, err := homophily.Analyze(g, labels.Assignment{1, 1, 2, 2})
	require.NoError(t, err)
	assert.Zero(t, s.SameLabel)
	assert.True(t, s.EdgeHomophily.IsZero())
	assert.InDelta(t, -1.0, s.Assortativity.Float64Or(9), 1e-12)
}

func TestAnalyze_Undefined(t *testing.T) {
	// One category: Σa² == 1.
	g, lab, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)
	s, err := homophily.Analyze(g, lab)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s.EdgeHomophily.Float64Or(-9), 1e-12)
	assert.False(t, s.Assortativity.Defined())

	// No edges.
	iso, err := adjacency.New(3, nil)
	require.NoError(t, err)
	s, err = homophily.Analyze(iso, labels.Assignment{1, 2, 1})
	require.NoError(t, err)
	assert.False(t, s.EdgeHomophily.Defined())
	assert.False(t, s.Assortativity.Defined())
	assert.Nil(t, s.Mixing)
}

func TestAnalyze_Errors(t *testing.T) {
	g, err := adjacency.New(2, []adjacency.Edge{{X: 1, Y: 2}})
	require.NoError(t, err)
	_, err = homophily.Analyze(g, labels.Assignment{1})
	assert.ErrorIs(t, err, labels.ErrLengthMismatch)

	empty, err := adjacency.New(0, nil)
	require.NoError(t, err)
	_, err = homophily.Analyze(empty, labels.Assignment{})
	assert.ErrorIs(t, err, homophily.ErrNoCategories)
}
