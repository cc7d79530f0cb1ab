package triad_test

import (
	"fmt"

	"github.com/katalvlaran/triadic/adjacency"
	"github.com/katalvlaran/triadic/labels"
	"github.com/katalvlaran/triadic/triad"
)

// ExampleEnumerate lists the triangles of K4 labeled A,A,B,B with their signs.
func ExampleEnumerate() {
	g, _ := adjacency.New(4, []adjacency.Edge{{X: 1, Y: 2}, {X: 1, Y: 3}, {X: 1, Y: 4}, {X: 2, Y: 3}, {X: 2, Y: 4}, {X: 3, Y: 4}})
	lab := labels.Assignment{1, 1, 2, 2}

	triad.Enumerate(g, lab, func(t triad.Triad) bool {
		fmt.Println(t.U, t.V, t.W, t.Signs, t.Balanced())
		return true
	})
	// Output:
	// 1 2 3 [+ - -] true
	// 1 2 4 [+ - -] true
	// 1 3 4 [- + -] true
	// 2 3 4 [- + -] true
}

// ExampleTally shows the census of a triangle whose vertices all differ.
func ExampleTally() {
	g, _ := adjacency.New(3, []adjacency.Edge{{X: 1, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 3}})
	c := triad.Tally(g, labels.Assignment{1, 2, 3})
	fmt.Println(c.Total, c.Balanced, c.ByNegatives, c.Ratio())
	// Output:
	// 1 0 [0 0 0 1] 0.000000
}
