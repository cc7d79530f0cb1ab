// SPDX-License-Identifier: MIT
// Package: triadic/nullmodel
//
// distribution.go - empirical sampling distribution and its baseline.

package nullmodel

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/triadic/measure"
)

// Distribution is the ordered sequence of per-trial closure rates.
type Distribution struct {
	Seed         int64
	Observations []measure.Value
}

// Trials returns the number of trials that were run.
func (d *Distribution) Trials() int { return len(d.Observations) }

// Valid returns the defined observations in trial order.
func (d *Distribution) Valid() []float64 {
	out := make([]float64, 0, len(d.Observations))
	for _, v := range d.Observations {
		if x, ok := v.Get(); ok {
			out = append(out, x)
		}
	}
	return out
}

// Undefined returns how many trials produced no qualifying wedge.
func (d *Distribution) Undefined() int {
	return len(d.Observations) - len(d.Valid())
}

// Baseline returns the mean and population standard deviation of the valid
// observations. Both are undefined when there is no valid observation.
func (d *Distribution) Baseline() (mean, std measure.Value) {
	xs := d.Valid()
	if len(xs) == 0 {
		return measure.Undefined(), measure.Undefined()
	}
	variance := stat.PopVariance(xs, nil)
	if variance < 0 { // rounding on constant samples
		variance = 0
	}
	return measure.Of(stat.Mean(xs, nil)), measure.Of(math.Sqrt(variance))
}
