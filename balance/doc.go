// Package balance is the entry point of the structural-balance engine.
//
// Analyze(ctx, g, lab, opts...) runs, in order:
//
//  1. precondition checks   adjacency.Validate, labels.Validate
//  2. triad census          triad.Tally → triangle count, balance ratio
//  3. observed closure      wedge.Closure on the original labels
//  4. null model            nullmodel.Sample → baseline mean / std
//  5. aggregation           Lift, ZScore
//
// and returns an immutable *Report. The run is pure: nothing is persisted or
// printed, and a fixed seed reproduces the report exactly.
//
// Undefined statistics are measure.Value sentinels and propagate:
//
//	Lift   = observed / mean          undefined if either undefined or mean == 0
//	ZScore = (observed - mean) / std  undefined if any undefined or std == 0
//
// Rendering lives in package report.
package balance
