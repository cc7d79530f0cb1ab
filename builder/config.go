// SPDX-License-Identifier: MIT
// Package: triadic/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng   = nil (pure unless seeded)
//   - label = DefaultLabel

package builder

import "math/rand"

// DefaultLabel is the category code of vertices added outside Labeled.
const DefaultLabel = 1

// builderConfig aggregates the knobs constructors read.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Category code stamped on vertices added by the current constructor.
	label int
}

// newBuilderConfig applies options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{label: DefaultLabel}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
