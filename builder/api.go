// SPDX-License-Identifier: MIT
// Package: triadic/builder
//
// api.go - thin public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order on a fresh Draft, freezes the result.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/triadic/adjacency"
	"github.com/katalvlaran/triadic/labels"
)

// Constructor appends a topology to d using the resolved config. Constructors
// validate their parameters first and return sentinel errors; no panics.
type Constructor func(d *Draft, cfg builderConfig) error

// BuildGraph runs cons in order on an empty Draft and returns the frozen graph
// together with its label assignment.
//
// Errors:
//   - Constructor errors wrapped as "BuildGraph: %w".
//   - ErrConstructFailed for a nil constructor.
//   - adjacency errors if constructors produced an invalid edge set.
//
// Complexity: Σ constructor cost + O(V + E·log E) to freeze.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*adjacency.Sorted, labels.Assignment, error) {
	cfg := newBuilderConfig(bopts...)
	d := &Draft{}

	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := adjacency.New(d.VertexCount(), d.edges)
	if err != nil {
		return nil, nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}
	return g, d.labels, nil
}

// Labeled runs c with every vertex it adds labeled code.
func Labeled(code int, c Constructor) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if code < 1 {
			return fmt.Errorf("Labeled: code=%d: %w", code, ErrBadLabel)
		}
		if c == nil {
			return fmt.Errorf("Labeled: nil constructor: %w", ErrConstructFailed)
		}
		cfg.label = code
		return c(d, cfg)
	}
}
