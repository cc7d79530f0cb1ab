// SPDX-License-Identifier: MIT
// Package: triadic/builder
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1,n2).
//
// Contract:
//   - Complete: n ≥ 1; emits every pair {i,j}, i<j, once. C(n,3) triangles.
//   - CompleteBipartite: n1,n2 ≥ 1; left ids first, then right ids; every
//     cross pair once. Triangle-free.
//
// Complexity:
//   - Complete: O(n²) edges. CompleteBipartite: O(n1·n2) edges.

package builder

import "fmt"

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionSize        = 1
)

// Complete returns a Constructor that appends K_n.
func Complete(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		first := d.AddVertices(n, cfg.label)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.AddEdge(first+i, first+j)
			}
		}
		return nil
	}
}

// CompleteBipartite returns a Constructor that appends K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := d.AddVertices(n1, cfg.label)
		right := d.AddVertices(n2, cfg.label)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				d.AddEdge(left+i, right+j)
			}
		}
		return nil
	}
}
