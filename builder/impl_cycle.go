// SPDX-License-Identifier: MIT
// Package: triadic/builder
//
// impl_cycle.go - Cycle(n) and Path(n).
//
// Contract:
//   - Cycle: n ≥ 3; edges i-(i+1) and (n-1)-0 in index order. One triangle iff n == 3.
//   - Path:  n ≥ 2; edges i-(i+1). Triangle-free.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor that appends C_n.
func Cycle(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		first := d.AddVertices(n, cfg.label)
		for i := 0; i < n; i++ {
			d.AddEdge(first+i, first+(i+1)%n)
		}
		return nil
	}
}

// Path returns a Constructor that appends P_n.
func Path(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		first := d.AddVertices(n, cfg.label)
		for i := 0; i+1 < n; i++ {
			d.AddEdge(first+i, first+i+1)
		}
		return nil
	}
}
