// SPDX-License-Identifier: MIT
// Package: triadic/nullmodel
//
// types.go - options, observer hook and sentinel errors.

package nullmodel

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/katalvlaran/triadic/wedge"
)

// DefaultTrials is the trial count used when WithTrials is not supplied.
const DefaultTrials = 100

// Sentinel errors for sampler execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("nullmodel: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("nullmodel: invalid option supplied")
)

// Observer receives one callback per finished trial. Implementations must be
// safe for concurrent use; trials finish in any order.
type Observer interface {
	ObserveTrial(trial int, res wedge.Result, elapsed time.Duration)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(trial int, res wedge.Result, elapsed time.Duration)

// ObserveTrial calls f.
func (f ObserverFunc) ObserveTrial(trial int, res wedge.Result, elapsed time.Duration) {
	f(trial, res, elapsed)
}

// Option configures the sampler via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Sample.
type Option func(*Options)

// Options holds resolved sampler parameters.
type Options struct {
	Trials   int
	Seed     int64
	Workers  int
	Observer Observer

	err error
}

// DefaultOptions returns Options with:
//   - DefaultTrials trials
//   - seed 0 (mapped to defaultRNGSeed)
//   - GOMAXPROCS workers
//   - no observer.
func DefaultOptions() Options {
	return Options{
		Trials:  DefaultTrials,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithTrials sets the number of permutation trials.
//
//	r > 0:  run r trials
//	r == 0: no trials, baseline undefined
//	r < 0:  invalid → ErrOptionViolation
func WithTrials(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: trials cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		o.Trials = r
	}
}

// WithSeed fixes the base seed of all trial streams.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers bounds the number of concurrently running trials.
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, w)
			return
		}
		o.Workers = w
	}
}

// WithObserver registers a per-trial hook. nil is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
