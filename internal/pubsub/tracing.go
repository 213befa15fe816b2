package pubsub

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "zawiya-pubsub"

// TracingConfig controls span export for the bus.
type TracingConfig struct {
	Enabled     bool
	ServiceName string
	ZipkinURL   string
}

// DefaultTracingConfig has tracing disabled.
func DefaultTracingConfig() TracingConfig {
	return TracingConfig{
		ServiceName: "zawiya",
		ZipkinURL:   "http://localhost:9411/api/v2/spans",
	}
}

// TracingConfigFromEnv reads PUBSUB_TRACING_ENABLED, PUBSUB_TRACING_SERVICE_NAME
// and PUBSUB_TRACING_ZIPKIN_URL over the defaults.
func TracingConfigFromEnv() TracingConfig {
	cfg := DefaultTracingConfig()
	if v := os.Getenv("PUBSUB_TRACING_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv("PUBSUB_TRACING_SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v := os.Getenv("PUBSUB_TRACING_ZIPKIN_URL"); v != "" {
		cfg.ZipkinURL = v
	}
	return cfg
}

// SetupTracing returns a tracer exporting to Zipkin, or a no-op tracer when
// tracing is disabled. The returned cleanup flushes pending spans.
func SetupTracing(ctx context.Context, cfg TracingConfig) (trace.Tracer, func(), error) {
	if !cfg.Enabled {
		return noop.NewTracerProvider().Tracer(tracerName), func() {}, nil
	}

	exporter, err := zipkin.New(cfg.ZipkinURL)
	if err != nil {
		return nil, nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	cleanup := func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}
	return tp.Tracer(tracerName), cleanup, nil
}
