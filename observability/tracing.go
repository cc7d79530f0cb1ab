// Package observability wires OpenTelemetry tracing and Prometheus metrics
// into triadic runs.
package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name used by the CLI.
const TracerName = "github.com/katalvlaran/triadic"

// TracingConfig configures the OpenTelemetry tracer provider.
type TracingConfig struct {
	ServiceName    string
	ServiceVersion string

	// Endpoint is the OTLP gRPC endpoint (e.g. "localhost:4317").
	// If empty, tracing is disabled.
	Endpoint string
}

// TracerProvider wraps the SDK provider; provider is nil in no-op mode.
type TracerProvider struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// InitTracing installs a global tracer provider exporting to cfg.Endpoint.
// Returns a no-op tracer if the endpoint is empty.
func InitTracing(ctx context.Context, cfg TracingConfig) (*TracerProvider, error) {
	if cfg.Endpoint == "" {
		return &TracerProvider{tracer: otel.Tracer(TracerName)}, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create OTLP exporter: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &TracerProvider{
		provider: provider,
		tracer:   provider.Tracer(TracerName),
	}, nil
}

// Enabled reports whether spans are exported.
func (tp *TracerProvider) Enabled() bool { return tp.provider != nil }

// Shutdown flushes pending spans.
func (tp *TracerProvider) Shutdown(ctx context.Context) error {
	if tp.provider != nil {
		return tp.provider.Shutdown(ctx)
	}
	return nil
}

// Tracer returns the underlying tracer.
func (tp *TracerProvider) Tracer() trace.Tracer {
	return tp.tracer
}

// StartRunSpan starts the root span of one CLI run over the named inputs.
func StartRunSpan(ctx context.Context, edges, labels string) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, "triadic.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("triadic.input.edges", edges),
			attribute.String("triadic.input.labels", labels),
		),
	)
}

// RecordError records err on span and marks it failed.
func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
