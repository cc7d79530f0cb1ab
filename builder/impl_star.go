// SPDX-License-Identifier: MIT
// Package: triadic/builder
//
// impl_star.go - Star(n) and Wheel(n). The hub is always the first vertex
// the constructor adds.
//
// Contract:
//   - Star:  n ≥ 2; hub + (n-1) leaves, C(n-1,2) wedges at the hub, no triangles.
//   - Wheel: n ≥ 4; hub + ring C_{n-1}; n-1 triangles.

package builder

import "fmt"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that appends a star on n vertices.
func Star(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := d.AddVertices(n, cfg.label)
		for i := 1; i < n; i++ {
			d.AddEdge(hub, hub+i)
		}
		return nil
	}
}

// Wheel returns a Constructor that appends W_n = hub + C_{n-1}.
func Wheel(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		hub := d.AddVertices(n, cfg.label)
		ring := n - 1
		for i := 0; i < ring; i++ {
			d.AddEdge(hub, hub+1+i)
			d.AddEdge(hub+1+i, hub+1+(i+1)%ring)
		}
		return nil
	}
}
