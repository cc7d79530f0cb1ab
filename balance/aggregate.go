// SPDX-License-Identifier: MIT
// Package: triadic/balance
//
// aggregate.go - lift and z-score composition. No recomputation happens here.

package balance

import "github.com/katalvlaran/triadic/measure"

// Lift returns observed/mean; undefined if either is undefined or mean == 0.
func Lift(observed, mean measure.Value) measure.Value {
	return measure.Div(observed, mean)
}

// ZScore returns (observed-mean)/std; undefined if any operand is undefined
// or std == 0.
func ZScore(observed, mean, std measure.Value) measure.Value {
	return measure.Div(measure.Sub(observed, mean), std)
}
