// SPDX-License-Identifier: MIT
// Package: triadic/balance
//
// types.go - Report, options and sentinel errors.

package balance

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/triadic/measure"
	"github.com/katalvlaran/triadic/nullmodel"
)

// ErrGraphNil is returned if a nil graph is passed to Analyze.
var ErrGraphNil = errors.New("balance: graph is nil")

// Report is the immutable result of one analysis run.
type Report struct {
	Vertices int `json:"vertices" yaml:"vertices"`
	Edges    int `json:"edges" yaml:"edges"`

	Triangles      int           `json:"triangles" yaml:"triangles"`
	Balanced       int           `json:"balanced" yaml:"balanced"`
	NegativeCensus [4]int        `json:"negative_census" yaml:"negative_census"`
	BalanceRatio   measure.Value `json:"balance_ratio" yaml:"balance_ratio"`

	Wedges      int           `json:"wedges" yaml:"wedges"`
	Closed      int           `json:"closed" yaml:"closed"`
	ClosureRate measure.Value `json:"closure_rate" yaml:"closure_rate"`

	Trials       int           `json:"trials" yaml:"trials"`
	ValidTrials  int           `json:"valid_trials" yaml:"valid_trials"`
	Seed         int64         `json:"seed" yaml:"seed"`
	BaselineMean measure.Value `json:"baseline_mean" yaml:"baseline_mean"`
	BaselineStd  measure.Value `json:"baseline_std" yaml:"baseline_std"`

	Lift   measure.Value `json:"lift" yaml:"lift"`
	ZScore measure.Value `json:"z_score" yaml:"z_score"`
}

// Option configures Analyze.
type Option func(*config)

type config struct {
	categories int
	logger     *slog.Logger
	sampler    []nullmodel.Option
}

// WithTrials sets the null-model trial count (default nullmodel.DefaultTrials).
func WithTrials(r int) Option {
	return func(c *config) { c.sampler = append(c.sampler, nullmodel.WithTrials(r)) }
}

// WithSeed fixes the null-model seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.sampler = append(c.sampler, nullmodel.WithSeed(seed)) }
}

// WithWorkers bounds null-model parallelism.
func WithWorkers(w int) Option {
	return func(c *config) { c.sampler = append(c.sampler, nullmodel.WithWorkers(w)) }
}

// WithObserver forwards a per-trial hook to the sampler.
func WithObserver(o nullmodel.Observer) Option {
	return func(c *config) { c.sampler = append(c.sampler, nullmodel.WithObserver(o)) }
}

// WithCategories declares K so codes above K are rejected. k <= 0 keeps the
// default of accepting any positive code.
func WithCategories(k int) Option {
	return func(c *config) { c.categories = k }
}

// WithLogger receives phase summaries at Debug level. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
