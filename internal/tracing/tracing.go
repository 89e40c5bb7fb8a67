package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	ServiceName    = "melodee"
	ServiceVersion = "1.0.0"
)

// Tracer holds the tracer instance
type Tracer struct {
	tracer trace.Tracer
	tp     *sdktrace.TracerProvider
}

// NewTracer creates a tracer provider and registers it globally. When useOTLP
// is false, spans go to stdout for local debugging.
func NewTracer(serviceName, collectorEndpoint string, useOTLP bool) (*Tracer, error) {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(ServiceVersion),
	)

	var exp sdktrace.SpanExporter
	var err error

	if useOTLP {
		client := otlptracegrpc.NewClient(
			otlptracegrpc.WithEndpoint(collectorEndpoint),
			otlptracegrpc.WithInsecure(),
		)
		exp, err = otlptrace.New(context.Background(), client)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
	} else {
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout exporter: %w", err)
		}
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return &Tracer{
		tracer: tp.Tracer(serviceName),
		tp:     tp,
	}, nil
}

// StartSpan starts a new span with the provided name
func (t *Tracer) StartSpan(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

// StartSpanWithAttributes starts a new span with the provided attributes
func (t *Tracer) StartSpanWithAttributes(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, trace.WithAttributes(attrs...))
}

// AddEvent adds an event to the current span
func AddEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		span.AddEvent(name, trace.WithAttributes(attrs...))
	}
}

// SetSpanError marks the current span as having an error
func SetSpanError(ctx context.Context, err error) {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		span.RecordError(err)
	}
}

// Shutdown gracefully shuts down the trace provider
func (t *Tracer) Shutdown(ctx context.Context) error {
	return t.tp.Shutdown(ctx)
}

// MigrationTracingAttrs returns common attributes for migration runs.
func MigrationTracingAttrs(direction string, steps int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("component", "database.migration"),
		attribute.String("migration.direction", direction),
		attribute.Int("migration.steps", steps),
	}
}

// JobProcessingTracingAttrs returns common attributes for job processing operations
func JobProcessingTracingAttrs(jobID, queue, jobType string, attempt int) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("component", "job.processing"),
	}

	if jobID != "" {
		attrs = append(attrs, attribute.String("job.id", jobID))
	}
	if queue != "" {
		attrs = append(attrs, attribute.String("job.queue", queue))
	}
	if jobType != "" {
		attrs = append(attrs, attribute.String("job.type", jobType))
	}
	attrs = append(attrs, attribute.Int("job.attempt", attempt))

	return attrs
}

// WithTracingContext adds tracing context to an existing context
func WithTracingContext(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span, func()) {
	tracer := otel.Tracer(ServiceName)
	ctx, span := tracer.Start(ctx, spanName, trace.WithAttributes(attrs...))
	return ctx, span, func() { span.End() }
}
