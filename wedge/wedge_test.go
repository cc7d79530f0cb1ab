package wedge_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triadic/adjacency"
	"github.com/katalvlaran/triadic/builder"
	"github.com/katalvlaran/triadic/labels"
	"github.com/katalvlaran/triadic/measure"
	"github.com/katalvlaran/triadic/wedge"
)

func TestClosure_FourNode(t *testing.T) {
	g, err := adjacency.New(4, []adjacency.Edge{{X: 1, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 3}, {X: 3, Y: 4}})
	require.NoError(t, err)

	res := wedge.Closure(g, labels.Assignment{1, 1, 1, 2})
	assert.Equal(t, 3, res.Wedges)
	assert.Equal(t, 3, res.Closed)
	assert.Equal(t, measure.Of(1), res.Rate)
}

func TestClosure_Star(t *testing.T) {
	g, lab, err := builder.BuildGraph(nil, builder.Star(5))
	require.NoError(t, err)

	res := wedge.Closure(g, lab)
	assert.Equal(t, 6, res.Wedges) // C(4,2) at the hub
	assert.Equal(t, 0, res.Closed)
	assert.True(t, res.Rate.IsZero())
}

func TestClosure_NoWedgesIsUndefined(t *testing.T) {
	// Hub labeled differently from its leaves: no center has two same-label neighbors.
	g, lab, err := builder.BuildGraph(nil,
		builder.Labeled(2, builder.Star(5)),
	)
	require.NoError(t, err)
	lab[0] = 1

	res := wedge.Closure(g, lab)
	assert.Zero(t, res.Wedges)
	assert.False(t, res.Rate.Defined())

	empty, err := adjacency.New(0, nil)
	require.NoError(t, err)
	assert.False(t, wedge.Closure(empty, nil).Rate.Defined())
}

func TestClosure_Complete(t *testing.T) {
	g, lab, err := builder.BuildGraph(nil, builder.Complete(5))
	require.NoError(t, err)

	res := wedge.Closure(g, lab)
	assert.Equal(t, 30, res.Wedges) // 5 centers × C(4,2)
	assert.Equal(t, 30, res.Closed)
}

func TestClosure_MatchesBruteForce(t *testing.T) {
	g, _, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSparse(35, 0.2))
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(2))
	lab := make(labels.Assignment, g.VertexCount())
	for i := range lab {
		lab[i] = 1 + rng.Intn(2)
	}

	n := g.VertexCount()
	wedges, closed := 0, 0
	for a := 1; a <= n; a++ {
		for b := 1; b <= n; b++ {
			for c := b + 1; c <= n; c++ {
				if b == a || c == a || !g.HasEdge(a, b) || !g.HasEdge(a, c) {
					continue
				}
				if lab.Label(a) != lab.Label(b) || lab.Label(a) != lab.Label(c) {
					continue
				}
				wedges++
				if g.HasEdge(b, c) {
					closed++
				}
			}
		}
	}

	res := wedge.Closure(g, lab)
	assert.Equal(t, wedges, res.Wedges)
	assert.Equal(t, closed, res.Closed)
	assert.Equal(t, measure.Ratio(closed, wedges), res.Rate)
}

func TestClosure_DoesNotMutateLabels(t *testing.T) {
	g, lab, err := builder.BuildGraph(nil, builder.Complete(4), builder.Labeled(2, builder.Cycle(4)))
	require.NoError(t, err)
	before := lab.Clone()
	wedge.Closure(g, lab)
	assert.Equal(t, before, lab)
}
