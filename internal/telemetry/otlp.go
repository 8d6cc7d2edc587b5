// Package telemetry wires optional OpenTelemetry tracing for file operations.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// ServiceName is reported as service.name on exported spans.
const ServiceName = "bommie"

// Provider owns the tracer provider installed as the global one.
type Provider struct {
	provider *sdktrace.TracerProvider
}

// Setup installs an OTLP/HTTP tracer provider exporting to endpoint
// (host:port). Returns nil when endpoint is empty (tracing disabled); the
// global provider then stays a no-op.
func Setup(ctx context.Context, endpoint string) (*Provider, error) {
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}
	return install(sdktrace.WithBatcher(exporter)), nil
}

// install builds a provider around the given span processor option and makes
// it the global provider.
func install(opt sdktrace.TracerProviderOption) *Provider {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(ServiceName),
	)
	provider := sdktrace.NewTracerProvider(
		opt,
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	return &Provider{provider: provider}
}

// Shutdown flushes pending spans and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
