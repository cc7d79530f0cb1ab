// SPDX-License-Identifier: MIT
// Package: triadic/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, with prob p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, j asc (j>i).

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		first := d.AddVertices(n, cfg.label)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if bernoulli(cfg, p) {
					d.AddEdge(first+i, first+j)
				}
			}
		}
		return nil
	}
}

// validateProbability enforces p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}
	return nil
}

// bernoulli draws one trial with probability p. p ∈ {0,1} never touches the RNG.
func bernoulli(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
