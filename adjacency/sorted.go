// SPDX-License-Identifier: MIT
// Package: triadic/adjacency
//
// sorted.go - compressed-sparse-row Graph implementation.
//
// Determinism:
//   - Neighbors(v) is ascending by construction.
//   - Edges(g) is lexicographic by (X,Y).
// Concurrency:
//   - Immutable after New/FromLists; any number of concurrent readers.

package adjacency

import (
	"fmt"
	"sort"
)

// Sorted is an immutable CSR adjacency over vertices 1..N.
type Sorted struct {
	n       int
	offsets []int // len n+2; neighbors of v are targets[offsets[v]:offsets[v+1]]
	targets []int // concatenated ascending neighbor lists
}

// compile-time check
var _ Graph = (*Sorted)(nil)

// New builds a Sorted graph with n vertices from an undirected edge list.
//
// Implementation:
//   - Stage 1: validate n and every endpoint, reject loops.
//   - Stage 2: canonicalise edges (x<y), sort, detect or collapse duplicates.
//   - Stage 3: count degrees, prefix-sum offsets, scatter both directions.
//   - Stage 4: sort each neighbor list.
//
// Complexity:
//   - Time O(V + E·log E), Space O(V + E).
func New(n int, edges []Edge, opts ...Option) (*Sorted, error) {
	if n < 0 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrBadVertexCount)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	canon := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.X < 1 || e.X > n || e.Y < 1 || e.Y > n {
			return nil, fmt.Errorf("New: edge (%d,%d) with n=%d: %w", e.X, e.Y, n, ErrVertexOutOfRange)
		}
		if e.X == e.Y {
			return nil, fmt.Errorf("New: edge (%d,%d): %w", e.X, e.Y, ErrLoopNotAllowed)
		}
		canon = append(canon, e.Canonical())
	}
	sort.Slice(canon, func(i, j int) bool {
		if canon[i].X != canon[j].X {
			return canon[i].X < canon[j].X
		}
		return canon[i].Y < canon[j].Y
	})

	// Drop or reject duplicates in a single sweep over the sorted list.
	uniq := canon[:0]
	for i, e := range canon {
		if i > 0 && e == canon[i-1] {
			if !o.dedup {
				return nil, fmt.Errorf("New: edge (%d,%d): %w", e.X, e.Y, ErrMultiEdgeNotAllowed)
			}
			continue
		}
		uniq = append(uniq, e)
	}

	g := &Sorted{
		n:       n,
		offsets: make([]int, n+2),
		targets: make([]int, 2*len(uniq)),
	}
	for _, e := range uniq {
		g.offsets[e.X+1]++
		g.offsets[e.Y+1]++
	}
	for v := 1; v <= n+1; v++ {
		g.offsets[v] += g.offsets[v-1]
	}

	fill := make([]int, n+1)
	copy(fill, g.offsets[:n+1])
	for _, e := range uniq {
		g.targets[fill[e.X]] = e.Y
		fill[e.X]++
		g.targets[fill[e.Y]] = e.X
		fill[e.Y]++
	}
	for v := 1; v <= n; v++ {
		sort.Ints(g.targets[g.offsets[v]:g.offsets[v+1]])
	}

	return g, nil
}

// FromLists builds a Sorted graph from per-vertex neighbor lists, where
// lists[i] holds the neighbors of vertex i+1. The lists are copied and must
// already satisfy the Graph preconditions; they are validated, not repaired.
//
// Complexity: O(V + E·log d).
func FromLists(lists [][]int) (*Sorted, error) {
	n := len(lists)
	g := &Sorted{n: n, offsets: make([]int, n+2)}
	for i, l := range lists {
		g.offsets[i+2] = g.offsets[i+1] + len(l)
	}
	g.targets = make([]int, 0, g.offsets[n+1])
	for _, l := range lists {
		g.targets = append(g.targets, l...)
	}
	if err := Validate(g); err != nil {
		return nil, fmt.Errorf("FromLists: %w", err)
	}
	return g, nil
}

// VertexCount returns N.
func (g *Sorted) VertexCount() int { return g.n }

// Neighbors returns the ascending neighbors of v. The slice aliases internal
// storage and must not be modified.
func (g *Sorted) Neighbors(v int) []int {
	if v < 1 || v > g.n {
		return nil
	}
	return g.targets[g.offsets[v]:g.offsets[v+1]:g.offsets[v+1]]
}

// Degree returns the number of neighbors of v (0 when out of range).
func (g *Sorted) Degree(v int) int {
	if v < 1 || v > g.n {
		return 0
	}
	return g.offsets[v+1] - g.offsets[v]
}

// HasEdge binary-searches the shorter of the two neighbor lists.
// Complexity: O(log min(deg x, deg y)).
func (g *Sorted) HasEdge(x, y int) bool {
	if x < 1 || x > g.n || y < 1 || y > g.n || x == y {
		return false
	}
	if g.Degree(x) > g.Degree(y) {
		x, y = y, x
	}
	return contains(g.Neighbors(x), y)
}

// EdgeCount returns |E| in O(1).
func (g *Sorted) EdgeCount() int { return len(g.targets) / 2 }

// contains reports whether ascending list holds x.
func contains(list []int, x int) bool {
	i := sort.SearchInts(list, x)
	return i < len(list) && list[i] == x
}
