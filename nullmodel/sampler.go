// SPDX-License-Identifier: MIT
// Package: triadic/nullmodel
//
// sampler.go - parallel permutation trials.

package nullmodel

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/triadic/adjacency"
	"github.com/katalvlaran/triadic/labels"
	"github.com/katalvlaran/triadic/measure"
	"github.com/katalvlaran/triadic/wedge"
)

// Sample runs the permutation trials and returns their closure rates in trial
// order. g and lab are only read; lab must already satisfy lab.Validate.
//
// Implementation:
//   - Stage 1: resolve options (ErrOptionViolation on bad input).
//   - Stage 2: fan trials out over an errgroup bounded by Workers.
//   - Stage 3: each trial derives its RNG, permutes a private copy of lab,
//     runs wedge.Closure and writes slot i.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation, or ctx.Err() if cancelled between trials.
//
// Complexity: O(R · (N + Σ s(a)²)) time, O(Workers · N + R) space.
func Sample(ctx context.Context, g adjacency.Graph, lab labels.Assignment, opts ...Option) (*Distribution, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	dist := &Distribution{
		Seed:         o.Seed,
		Observations: make([]measure.Value, o.Trials),
	}
	if o.Trials == 0 {
		return dist, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for i := 0; i < o.Trials; i++ {
		trial := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			res := RunTrial(g, lab, o.Seed, trial)
			dist.Observations[trial] = res.Rate
			if o.Observer != nil {
				o.Observer.ObserveTrial(trial, res, time.Since(start))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}

	return dist, nil
}

// RunTrial executes trial number trial under seed: a reshuffled copy of lab
// measured by wedge.Closure. Exposed so a single trial can be replayed.
func RunTrial(g adjacency.Graph, lab labels.Assignment, seed int64, trial int) wedge.Result {
	work := lab.Clone()
	work.Shuffle(trialRNG(seed, trial))
	return wedge.Closure(g, work)
}
