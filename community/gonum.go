// SPDX-License-Identifier: MIT
// Package: triadic/community
//
// gonum.go - adjacency.Graph → gonum simple.UndirectedGraph adapter.

package community

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/triadic/adjacency"
)

// ToGonum copies g into a gonum undirected graph whose node ids equal the
// vertex ids 1..N. Isolated vertices are kept.
//
// Complexity: O(V + E).
func ToGonum(g adjacency.Graph) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	n := g.VertexCount()
	for v := 1; v <= n; v++ {
		out.AddNode(simple.Node(int64(v)))
	}
	for _, e := range adjacency.Edges(g) {
		out.SetEdge(simple.Edge{F: simple.Node(int64(e.X)), T: simple.Node(int64(e.Y))})
	}
	return out
}

// toIDs converts gonum node groups into ascending vertex id groups.
func toIDs(groups [][]graph.Node) [][]int {
	out := make([][]int, 0, len(groups))
	for _, grp := range groups {
		ids := make([]int, 0, len(grp))
		for _, nd := range grp {
			ids = append(ids, int(nd.ID()))
		}
		sort.Ints(ids)
		out = append(out, ids)
	}
	sortGroups(out)
	return out
}

// toNodes converts vertex id groups back into gonum node groups.
func toNodes(groups [][]int) [][]graph.Node {
	out := make([][]graph.Node, len(groups))
	for i, grp := range groups {
		out[i] = make([]graph.Node, len(grp))
		for j, v := range grp {
			out[i][j] = simple.Node(int64(v))
		}
	}
	return out
}
