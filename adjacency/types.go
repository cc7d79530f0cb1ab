// SPDX-License-Identifier: MIT
// Package: triadic/adjacency
//
// types.go - Graph accessor interface, Edge, options and sentinel errors.

package adjacency

import "errors"

// Sentinel errors for adjacency construction and validation.
var (
	// ErrBadVertexCount indicates a negative vertex count.
	ErrBadVertexCount = errors.New("adjacency: vertex count is negative")

	// ErrVertexOutOfRange indicates a vertex id outside 1..N.
	ErrVertexOutOfRange = errors.New("adjacency: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop (x == y).
	ErrLoopNotAllowed = errors.New("adjacency: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates the same undirected edge was given twice.
	ErrMultiEdgeNotAllowed = errors.New("adjacency: multi-edges not allowed")

	// ErrUnsorted indicates a neighbor list that is not strictly ascending.
	ErrUnsorted = errors.New("adjacency: neighbor list not sorted ascending")

	// ErrAsymmetric indicates y ∈ N(x) while x ∉ N(y).
	ErrAsymmetric = errors.New("adjacency: neighbor lists not symmetric")
)

// Graph is the read-only view of an undirected simple graph over vertices 1..N.
//
// Neighbors MUST return a strictly ascending slice that callers treat as
// read-only. HasEdge MUST answer in O(1) or O(log degree).
type Graph interface {
	// VertexCount returns N.
	VertexCount() int

	// Neighbors returns the ascending neighbor ids of v.
	// Out-of-range v yields nil.
	Neighbors(v int) []int

	// HasEdge reports whether the undirected edge {x,y} exists.
	HasEdge(x, y int) bool
}

// Edge is an undirected edge between X and Y.
type Edge struct {
	X int
	Y int
}

// Canonical returns the edge with X < Y.
func (e Edge) Canonical() Edge {
	if e.X > e.Y {
		return Edge{X: e.Y, Y: e.X}
	}
	return e
}

// Option configures construction of a *Sorted.
type Option func(*options)

type options struct {
	dedup bool // collapse repeated edges instead of failing
}

// WithDedup collapses repeated (and reversed) edges into one instead of
// returning ErrMultiEdgeNotAllowed.
func WithDedup() Option {
	return func(o *options) { o.dedup = true }
}
