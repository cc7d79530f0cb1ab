// SPDX-License-Identifier: MIT
// Package: triadic/adjacency
//
// validate.go - precondition checks and read-only helpers over any Graph.

package adjacency

import (
	"fmt"
	"sort"
)

// Validate checks that g satisfies the Graph preconditions: every neighbor
// list is strictly ascending, in range, loop-free and symmetric.
//
// Errors (wrapped with the offending vertex):
//   - ErrBadVertexCount, ErrVertexOutOfRange, ErrLoopNotAllowed,
//     ErrUnsorted, ErrAsymmetric.
//
// Complexity: O(V + E·log d).
func Validate(g Graph) error {
	n := g.VertexCount()
	if n < 0 {
		return fmt.Errorf("Validate: n=%d: %w", n, ErrBadVertexCount)
	}
	for v := 1; v <= n; v++ {
		nb := g.Neighbors(v)
		for i, w := range nb {
			if w < 1 || w > n {
				return fmt.Errorf("Validate: vertex %d neighbor %d: %w", v, w, ErrVertexOutOfRange)
			}
			if w == v {
				return fmt.Errorf("Validate: vertex %d: %w", v, ErrLoopNotAllowed)
			}
			if i > 0 && nb[i-1] >= w {
				return fmt.Errorf("Validate: vertex %d at position %d (%d >= %d): %w", v, i, nb[i-1], w, ErrUnsorted)
			}
		}
	}
	// Symmetry needs sortedness of the reverse list, so it runs as a second pass.
	for v := 1; v <= n; v++ {
		for _, w := range g.Neighbors(v) {
			back := g.Neighbors(w)
			i := sort.SearchInts(back, v)
			if i >= len(back) || back[i] != v {
				return fmt.Errorf("Validate: edge %d-%d: %w", v, w, ErrAsymmetric)
			}
		}
	}
	return nil
}

// Edges returns the canonical (X<Y) edge list of g in lexicographic order.
// Complexity: O(V + E).
func Edges(g Graph) []Edge {
	var out []Edge
	n := g.VertexCount()
	for x := 1; x <= n; x++ {
		for _, y := range g.Neighbors(x) {
			if y > x {
				out = append(out, Edge{X: x, Y: y})
			}
		}
	}
	return out
}

// EdgeCount returns |E| for any Graph.
// Complexity: O(V).
func EdgeCount(g Graph) int {
	if s, ok := g.(*Sorted); ok {
		return s.EdgeCount()
	}
	total := 0
	n := g.VertexCount()
	for v := 1; v <= n; v++ {
		total += len(g.Neighbors(v))
	}
	return total / 2
}
