// Package nullmodel builds the permutation baseline for same-label closure.
//
// Each of R trials relabels the graph with a uniformly random permutation of
// the original label vector (frequencies are preserved exactly; this is a
// reshuffle, not an independent re-draw per vertex) and measures
// wedge.Closure on the permuted copy.
//
// Policy for undefined trials: a permutation with zero qualifying wedges
// produces an undefined observation. Such observations are kept in
// Distribution.Observations for inspection but are excluded before the mean
// and standard deviation are computed. If every trial is undefined (or R==0)
// the baseline mean and standard deviation are both undefined.
//
// Determinism and concurrency:
//
//   - Trial i draws from its own *rand.Rand derived from (seed, i). The
//     observation sequence is identical for a fixed seed regardless of
//     worker count or scheduling.
//   - Trials share the graph and the original assignment read-only; each
//     owns its permuted copy and writes a private result slot, so no locks
//     are taken.
//   - math/rand.Rand is NOT goroutine-safe and is never shared.
//
// Options:
//
//	WithTrials(R)      R ≥ 0, default 100
//	WithSeed(s)        s == 0 ⇒ fixed default seed 1
//	WithWorkers(w)     w ≥ 1, default GOMAXPROCS
//	WithObserver(o)    per-trial callback (metrics)
package nullmodel
