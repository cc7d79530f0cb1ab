// SPDX-License-Identifier: MIT
// Package wedge measures same-label triadic closure.
//
// A wedge is a center a with two distinct neighbors b, c where
// label(a) == label(b) == label(c). It is closed when the edge b-c exists and
// is itself positive (label(b) == label(c)).
//
//	ClosureRate = closed / wedges, undefined when wedges == 0.
//
// Hot path: the scan visits every pair of same-label neighbors of every
// vertex, O(Σ_a s(a)²) where s(a) ≤ deg(a). A hub whose neighbors mostly share
// its label dominates the run time; Closure is the inner loop of every
// null-model trial.
package wedge

import (
	"github.com/katalvlaran/triadic/adjacency"
	"github.com/katalvlaran/triadic/labels"
	"github.com/katalvlaran/triadic/measure"
)

// Result is the outcome of one closure pass.
type Result struct {
	Rate   measure.Value
	Closed int
	Wedges int
}

// Closure counts qualifying wedges of g under lab and how many close positively.
// It reads but never mutates g or lab, so it accepts the original assignment
// or any permuted copy.
//
// Complexity: O(Σ_a s(a)² · log d) time, O(max deg) extra space.
func Closure(g adjacency.Graph, lab labels.Assignment) Result {
	var (
		res  Result
		same []int // same-label neighbors of the current center, reused
	)
	n := g.VertexCount()
	for a := 1; a <= n; a++ {
		la := lab.Label(a)
		same = same[:0]
		for _, b := range g.Neighbors(a) {
			if lab.Label(b) == la {
				same = append(same, b)
			}
		}
		k := len(same)
		if k < 2 {
			continue
		}
		res.Wedges += k * (k - 1) / 2
		for i := 0; i < k; i++ {
			b := same[i]
			for j := i + 1; j < k; j++ {
				c := same[j]
				if g.HasEdge(b, c) && lab.Label(b) == lab.Label(c) {
					res.Closed++
				}
			}
		}
	}
	res.Rate = measure.Ratio(res.Closed, res.Wedges)
	return res
}
