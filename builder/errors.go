// SPDX-License-Identifier: MIT
// Package: triadic/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers use errors.Is.
//   - Implementations attach context with "%s: ...: %w" (method name first).
//   - Algorithms never panic; validation panics are confined to WithX option
//     constructors.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an invalid draft.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadLabel indicates a category code < 1.
var ErrBadLabel = errors.New("builder: label code must be >= 1")
