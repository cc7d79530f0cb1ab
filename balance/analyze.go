// SPDX-License-Identifier: MIT
// Package: triadic/balance
//
// analyze.go - the single public entry point.

package balance

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/triadic/adjacency"
	"github.com/katalvlaran/triadic/labels"
	"github.com/katalvlaran/triadic/nullmodel"
	"github.com/katalvlaran/triadic/triad"
	"github.com/katalvlaran/triadic/wedge"
)

// tracerName identifies spans emitted by Analyze. Without an installed
// provider the global tracer is a no-op.
const tracerName = "github.com/katalvlaran/triadic/balance"

// Analyze computes the structural-balance Report of g under lab.
//
// Errors:
//   - ErrGraphNil.
//   - Precondition violations from adjacency.Validate and labels.Validate
//     (unsorted or asymmetric neighbors, length mismatch, codes out of range).
//   - nullmodel.ErrOptionViolation and ctx.Err() from the sampler.
//
// Statistically undefined results are never errors; they appear as undefined
// measure.Value fields.
func Analyze(ctx context.Context, g adjacency.Graph, lab labels.Assignment, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "balance.Analyze")
	defer span.End()

	rep, err := analyze(ctx, g, lab, cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("triadic.vertices", rep.Vertices),
		attribute.Int("triadic.triangles", rep.Triangles),
		attribute.Int("triadic.wedges", rep.Wedges),
		attribute.Int("triadic.trials", rep.Trials),
	)
	return rep, nil
}

func analyze(ctx context.Context, g adjacency.Graph, lab labels.Assignment, cfg config) (*Report, error) {
	tracer := otel.Tracer(tracerName)
	log := cfg.logger

	// 1) Preconditions are fatal: never run on corrupted invariants.
	if err := adjacency.Validate(g); err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	if err := lab.Validate(g.VertexCount(), cfg.categories); err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	rep := &Report{
		Vertices: g.VertexCount(),
		Edges:    adjacency.EdgeCount(g),
	}

	// 2) Triad census in a single streaming pass.
	_, span := tracer.Start(ctx, "triad.Tally")
	census := triad.Tally(g, lab)
	span.End()
	rep.Triangles = census.Total
	rep.Balanced = census.Balanced
	rep.NegativeCensus = census.ByNegatives
	rep.BalanceRatio = census.Ratio()
	log.Debug("triad census", "triangles", rep.Triangles, "balanced", rep.Balanced, "ratio", rep.BalanceRatio.String())

	// 3) Observed closure on the caller's labels.
	_, span = tracer.Start(ctx, "wedge.Closure")
	observed := wedge.Closure(g, lab)
	span.End()
	rep.Wedges = observed.Wedges
	rep.Closed = observed.Closed
	rep.ClosureRate = observed.Rate
	log.Debug("observed closure", "wedges", rep.Wedges, "closed", rep.Closed, "rate", rep.ClosureRate.String())

	// 4) Permutation baseline.
	sctx, span := tracer.Start(ctx, "nullmodel.Sample")
	dist, err := nullmodel.Sample(sctx, g, lab, cfg.sampler...)
	span.End()
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	rep.Trials = dist.Trials()
	rep.ValidTrials = rep.Trials - dist.Undefined()
	rep.Seed = dist.Seed
	rep.BaselineMean, rep.BaselineStd = dist.Baseline()
	log.Debug("null model", "trials", rep.Trials, "valid", rep.ValidTrials,
		"mean", rep.BaselineMean.String(), "std", rep.BaselineStd.String())

	// 5) Pure composition.
	rep.Lift = Lift(rep.ClosureRate, rep.BaselineMean)
	rep.ZScore = ZScore(rep.ClosureRate, rep.BaselineMean, rep.BaselineStd)

	return rep, nil
}
