// SPDX-License-Identifier: MIT
// Package homophily summarises label mixing along edges: the K×K mixing
// matrix, the fraction of same-label edges, and Newman's assortativity
// coefficient.
//
// Mixing matrix e (symmetric, sums to 1):
//
//	e[i][j] = fraction of edge ends joining category i+1 to category j+1
//	          (each undirected edge contributes 1/(2|E|) to e[i][j] and e[j][i])
//
// Assortativity:
//
//	a_i = Σ_j e[i][j]
//	r   = (Tr e − Σ a_i²) / (1 − Σ a_i²)
//
// r is undefined when the graph has no edges or Σ a_i² == 1 (a single
// category touches every edge).
package homophily

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/triadic/adjacency"
	"github.com/katalvlaran/triadic/labels"
	"github.com/katalvlaran/triadic/measure"
)

// epsilon guards the assortativity denominator against rounding.
const epsilon = 1e-12

// ErrNoCategories is returned when the assignment has no positive code.
var ErrNoCategories = errors.New("homophily: no categories")

// Summary is the outcome of Analyze.
type Summary struct {
	Categories    int           `json:"categories" yaml:"categories"`
	SameLabel     int           `json:"same_label_edges" yaml:"same_label_edges"`
	EdgeHomophily measure.Value `json:"edge_homophily" yaml:"edge_homophily"`
	Assortativity measure.Value `json:"assortativity" yaml:"assortativity"`

	// Mixing is the normalised K×K mixing matrix; nil when the graph has no edges.
	Mixing *mat.Dense `json:"-" yaml:"-"`
}

// Mixing returns the raw symmetric edge-end count matrix (K×K) and |E|.
// Callers must have validated lab against g.
func Mixing(g adjacency.Graph, lab labels.Assignment) (*mat.Dense, int, error) {
	k := lab.Categories()
	if k == 0 {
		return nil, 0, ErrNoCategories
	}
	counts := mat.NewDense(k, k, nil)
	edges := 0
	for _, e := range adjacency.Edges(g) {
		i, j := lab.Label(e.X)-1, lab.Label(e.Y)-1
		counts.Set(i, j, counts.At(i, j)+1)
		counts.Set(j, i, counts.At(j, i)+1)
		edges++
	}
	return counts, edges, nil
}

// Analyze computes the mixing summary of g under lab.
//
// Complexity: O(V + E + K²).
func Analyze(g adjacency.Graph, lab labels.Assignment) (*Summary, error) {
	if err := lab.Validate(g.VertexCount(), 0); err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	counts, edges, err := Mixing(g, lab)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	k, _ := counts.Dims()
	s := &Summary{Categories: k}

	// Each same-label edge adds 2 to the diagonal.
	s.SameLabel = int(mat.Trace(counts)) / 2
	s.EdgeHomophily = measure.Ratio(s.SameLabel, edges)
	if edges == 0 {
		s.Assortativity = measure.Undefined()
		return s, nil
	}

	e := mat.NewDense(k, k, nil)
	e.Scale(1/float64(2*edges), counts)
	s.Mixing = e

	ones := mat.NewVecDense(k, nil)
	for i := 0; i < k; i++ {
		ones.SetVec(i, 1)
	}
	var a mat.VecDense
	a.MulVec(e, ones)
	sumSq := mat.Dot(&a, &a)

	den := 1 - sumSq
	if math.Abs(den) < epsilon {
		s.Assortativity = measure.Undefined()
		return s, nil
	}
	s.Assortativity = measure.Of((mat.Trace(e) - sumSq) / den)
	return s, nil
}
