package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/triadic/adjacency"
)

// listGraph is a Graph over raw lists that performs no checks of its own.
type listGraph [][]int

func (l listGraph) VertexCount() int { return len(l) }

func (l listGraph) Neighbors(v int) []int {
	if v < 1 || v > len(l) {
		return nil
	}
	return l[v-1]
}

func (l listGraph) HasEdge(x, y int) bool {
	for _, w := range l.Neighbors(x) {
		if w == y {
			return true
		}
	}
	return false
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		lists listGraph
		want  error
	}{
		{"ok", listGraph{{2}, {1}}, nil},
		{"out of range", listGraph{{3}, {}}, adjacency.ErrVertexOutOfRange},
		{"loop", listGraph{{1}}, adjacency.ErrLoopNotAllowed},
		{"unsorted", listGraph{{3, 2}, {1}, {1}}, adjacency.ErrUnsorted},
		{"duplicate neighbor", listGraph{{2, 2}, {1}}, adjacency.ErrUnsorted},
		{"asymmetric", listGraph{{2}, {}}, adjacency.ErrAsymmetric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := adjacency.Validate(tc.lists)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromLists_RejectsInvalid(t *testing.T) {
	_, err := adjacency.FromLists([][]int{{2}, {}})
	assert.ErrorIs(t, err, adjacency.ErrAsymmetric)
}

func TestEdgeCount_AnyGraph(t *testing.T) {
	g := listGraph{{2, 3}, {1, 3}, {1, 2}, {}}
	assert.Equal(t, 3, adjacency.EdgeCount(g))
	assert.Equal(t, []adjacency.Edge{{1, 2}, {1, 3}, {2, 3}}, adjacency.Edges(g))
}

func TestEdge_Canonical(t *testing.T) {
	assert.Equal(t, adjacency.Edge{X: 2, Y: 5}, adjacency.Edge{X: 5, Y: 2}.Canonical())
	assert.Equal(t, adjacency.Edge{X: 2, Y: 5}, adjacency.Edge{X: 2, Y: 5}.Canonical())
}
