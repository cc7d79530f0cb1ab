// SPDX-License-Identifier: MIT
// Package: triadic/triad
//
// census.go - streaming balance accumulator.

package triad

import (
	"github.com/katalvlaran/triadic/adjacency"
	"github.com/katalvlaran/triadic/labels"
	"github.com/katalvlaran/triadic/measure"
)

// Census accumulates triads without storing them.
// ByNegatives[k] counts triads with exactly k negative edges.
type Census struct {
	Total       int
	Balanced    int
	ByNegatives [4]int
}

// Add records one triad.
func (c *Census) Add(t Triad) {
	c.Total++
	c.ByNegatives[t.Negatives()]++
	if t.Balanced() {
		c.Balanced++
	}
}

// Ratio returns Balanced/Total, undefined when no triad was added.
func (c *Census) Ratio() measure.Value {
	return measure.Ratio(c.Balanced, c.Total)
}

// Tally enumerates g once and returns the filled Census.
func Tally(g adjacency.Graph, lab labels.Assignment) Census {
	var c Census
	Enumerate(g, lab, func(t Triad) bool {
		c.Add(t)
		return true
	})
	return c
}
