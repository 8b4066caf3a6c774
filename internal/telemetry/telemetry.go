// Package telemetry exports user-interaction spans over OTLP. It is wired
// only when an endpoint is configured; otherwise every call is a no-op.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"roller/internal/stream"
	"roller/internal/viewmodel"
)

// Exporter records one span per current-value transition and ships it to an
// OTLP endpoint.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	sub      *stream.Subscription
}

// New creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (disabled).
func New(ctx context.Context) (*Exporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "roller"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Exporter{
		provider: provider,
		tracer:   provider.Tracer("roller/ui"),
	}, nil
}

// Observe subscribes to the view model's current-value stream and records a
// span for each transition, with the new value as an attribute. The replayed
// initial value is recorded too.
func (e *Exporter) Observe(vm *viewmodel.RandomNumber) {
	if e == nil {
		return
	}
	e.sub = vm.Current().Watch(func(s string) {
		_, span := e.tracer.Start(context.Background(), "value.change",
			oteltrace.WithAttributes(attribute.String("value", s)))
		span.End()
	})
}

// Shutdown detaches the observer and flushes pending spans.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	e.sub.Unsubscribe()
	return e.provider.Shutdown(ctx)
}
