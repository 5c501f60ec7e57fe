// Package telemetry records dashboard activity as OpenTelemetry spans.
// Export goes over OTLP/HTTP and is off unless an endpoint is configured.
package telemetry

import (
	"context"
	"time"

	"agripredict/internal/config"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "agripredict/ui"

// Recorder emits spans for estimates and tab switches.
type Recorder struct {
	provider *sdktrace.TracerProvider // nil when export is disabled
	tracer   oteltrace.Tracer
}

// New creates a Recorder exporting to cfg.Endpoint.
// With no endpoint it returns a Recorder backed by a no-op tracer.
func New(ctx context.Context, cfg config.Telemetry) (*Recorder, error) {
	if cfg.Endpoint == "" {
		return Disabled(), nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "agripredict"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return NewWithProvider(provider), nil
}

// NewWithProvider wraps an existing provider. Tests use it with a span recorder.
func NewWithProvider(p *sdktrace.TracerProvider) *Recorder {
	return &Recorder{provider: p, tracer: p.Tracer(instrumentationName)}
}

// Disabled returns a Recorder that drops everything.
func Disabled() *Recorder {
	return &Recorder{tracer: noop.NewTracerProvider().Tracer(instrumentationName)}
}

// Estimate describes one estimator request for tracing.
type Estimate struct {
	Crop       string
	Region     string
	SoilPH     float64
	Yield      float64
	Confidence int
	FromRecord bool
	Started    time.Time
	Duration   time.Duration
}

// RecordEstimate emits an "estimate" span with explicit timing.
func (r *Recorder) RecordEstimate(ctx context.Context, e Estimate) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(ctx, "estimate", oteltrace.WithTimestamp(e.Started))
	span.SetAttributes(
		attribute.String("agripredict.crop", e.Crop),
		attribute.String("agripredict.region", e.Region),
		attribute.Float64("agripredict.soil_ph", e.SoilPH),
		attribute.Float64("agripredict.yield", e.Yield),
		attribute.Int("agripredict.confidence", e.Confidence),
		attribute.Bool("agripredict.from_record", e.FromRecord),
	)
	span.End(oteltrace.WithTimestamp(e.Started.Add(e.Duration)))
}

// RecordTabSwitch emits a "tab.switch" span.
func (r *Recorder) RecordTabSwitch(ctx context.Context, from, to string) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(ctx, "tab.switch")
	span.SetAttributes(
		attribute.String("agripredict.tab.from", from),
		attribute.String("agripredict.tab.to", to),
	)
	span.End()
}

// Shutdown flushes pending spans.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil || r.provider == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
