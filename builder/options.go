// SPDX-License-Identifier: MIT
// Package: triadic/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
