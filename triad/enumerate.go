// SPDX-License-Identifier: MIT
// Package: triadic/triad
//
// enumerate.go - duplicate-free triangle enumeration over sorted adjacency.
//
// Determinism:
//   - Emission order is u asc, then v asc, then w asc. Callers should not rely
//     on it beyond canonical dedup.
// Concurrency:
//   - Read-only over g and lab; safe to run concurrently with other readers.

package triad

import (
	"github.com/katalvlaran/triadic/adjacency"
	"github.com/katalvlaran/triadic/labels"
	"github.com/katalvlaran/triadic/measure"
)

// Enumerate calls yield once per triangle of g, with signs taken from lab.
// Returning false from yield stops the walk.
//
// Preconditions (not re-checked here; see adjacency.Validate):
//   - neighbor lists ascending and symmetric, len(lab) == g.VertexCount().
//
// Complexity: O(Σ_{(u,v)∈E} (deg u + deg v)) time, O(1) extra space.
func Enumerate(g adjacency.Graph, lab labels.Assignment, yield func(Triad) bool) {
	walk(g, func(u, v, w int) bool {
		return yield(Triad{
			U: u, V: v, W: w,
			Signs: [3]Sign{SignOf(lab, u, v), SignOf(lab, v, w), SignOf(lab, u, w)},
		})
	})
}

// All collects every triad of g.
func All(g adjacency.Graph, lab labels.Assignment) []Triad {
	var out []Triad
	Enumerate(g, lab, func(t Triad) bool {
		out = append(out, t)
		return true
	})
	return out
}

// Count returns the number of triangles in g; labels are not needed.
func Count(g adjacency.Graph) int {
	total := 0
	walk(g, func(_, _, _ int) bool {
		total++
		return true
	})
	return total
}

// Ratio returns balanced/total over triads, undefined when triads is empty.
func Ratio(triads []Triad) measure.Value {
	balanced := 0
	for _, t := range triads {
		if t.Balanced() {
			balanced++
		}
	}
	return measure.Ratio(balanced, len(triads))
}

// walk drives the merge intersection and reports canonical (u,v,w) triples.
func walk(g adjacency.Graph, emit func(u, v, w int) bool) {
	n := g.VertexCount()
	if n < 3 {
		return
	}
	for u := 1; u <= n; u++ {
		nu := g.Neighbors(u)
		for _, v := range nu {
			if v <= u {
				continue
			}
			if !intersect(nu, g.Neighbors(v), u, v, emit) {
				return
			}
		}
	}
}

// intersect merges the ascending lists a=N(u) and b=N(v) and emits every
// common w > v. Entries equal to v in a, or u in b, are stepped over so a
// vertex is never paired with itself. Returns false if emit asked to stop.
func intersect(a, b []int, u, v int, emit func(u, v, w int) bool) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		x, y := a[i], b[j]
		switch {
		case x == v:
			i++
		case y == u:
			j++
		case x < y:
			i++
		case x > y:
			j++
		default:
			if x > v && !emit(u, v, x) {
				return false
			}
			i++
			j++
		}
	}
	return true
}
