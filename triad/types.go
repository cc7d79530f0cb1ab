// SPDX-License-Identifier: MIT
// Package: triadic/triad
//
// types.go - Sign, Triad and balance predicates.

package triad

import "github.com/katalvlaran/triadic/labels"

// Sign is the sign of an edge: Positive for same-label endpoints, Negative otherwise.
type Sign int8

const (
	// Negative marks an edge between different categories.
	Negative Sign = -1
	// Positive marks an edge between equal categories.
	Positive Sign = 1
)

// SignOf returns the sign of the edge (x,y) under lab.
func SignOf(lab labels.Assignment, x, y int) Sign {
	if lab.Label(x) == lab.Label(y) {
		return Positive
	}
	return Negative
}

// String renders "+" or "-".
func (s Sign) String() string {
	if s == Positive {
		return "+"
	}
	return "-"
}

// Triad is a triangle U<V<W with signs (sign(U,V), sign(V,W), sign(U,W)).
type Triad struct {
	U, V, W int
	Signs   [3]Sign
}

// Negatives returns the number of negative edges (0..3).
func (t Triad) Negatives() int {
	n := 0
	for _, s := range t.Signs {
		if s == Negative {
			n++
		}
	}
	return n
}

// Balanced reports whether the product of the three signs is positive.
func (t Triad) Balanced() bool {
	return Balanced(t.Signs[0], t.Signs[1], t.Signs[2])
}

// Balanced reports whether a·b·c > 0. Symmetric in its arguments.
func Balanced(a, b, c Sign) bool {
	return int(a)*int(b)*int(c) > 0
}
