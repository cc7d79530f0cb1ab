// SPDX-License-Identifier: MIT
// Package: triadic/builder
//
// draft.go - mutable edge/label accumulator shared by constructors.

package builder

import (
	"github.com/katalvlaran/triadic/adjacency"
	"github.com/katalvlaran/triadic/labels"
)

// Draft accumulates vertices, labels and edges before freezing into an
// *adjacency.Sorted. Vertex ids are dense and 1-based.
type Draft struct {
	labels labels.Assignment
	edges  []adjacency.Edge
}

// AddVertices appends k vertices with the given label and returns the id of
// the first one.
func (d *Draft) AddVertices(k, label int) int {
	first := len(d.labels) + 1
	for i := 0; i < k; i++ {
		d.labels = append(d.labels, label)
	}
	return first
}

// AddEdge records the undirected edge x-y.
func (d *Draft) AddEdge(x, y int) {
	d.edges = append(d.edges, adjacency.Edge{X: x, Y: y})
}

// VertexCount returns the number of vertices added so far.
func (d *Draft) VertexCount() int { return len(d.labels) }
