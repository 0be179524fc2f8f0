package tracing

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtmgroup/dashboards-ui/internal/app/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"
	"go.opentelemetry.io/otel/trace"
)

const defaultServiceName = "dashboards-ui"

var serviceName = defaultServiceName

// Initialize registers a Jaeger-backed tracer provider as the global one.
// The returned func flushes and stops the provider.
func Initialize(cfg *config.Tracing) (func(context.Context) error, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	exp, err := jaeger.New(
		jaeger.WithAgentEndpoint(
			jaeger.WithAgentHost(cfg.Jaeger.AgentHost),
			jaeger.WithAgentPort(cfg.Jaeger.AgentPort),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("can't create jaeger exporter: %w", err)
	}

	serviceName = cfg.ServiceName

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithSampler(tracesdk.TraceIDRatioBased(cfg.Sampler.Param)),
		tracesdk.WithBatcher(exp),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

func validate(cfg *config.Tracing) error {
	if cfg == nil {
		return errors.New("tracing config is nil")
	}
	if cfg.ServiceName == "" {
		return errors.New("empty 'service_name'")
	}
	if cfg.Jaeger.AgentHost == "" {
		return errors.New("empty 'jaeger.agent_host'")
	}
	if cfg.Jaeger.AgentPort == "" {
		return errors.New("empty 'jaeger.agent_port'")
	}
	if cfg.Sampler.Param < 0 || cfg.Sampler.Param > 1 {
		return fmt.Errorf("'sampler.param' must be in [0, 1], got %v", cfg.Sampler.Param)
	}
	return nil
}

func StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.GetTracerProvider().Tracer(serviceName).Start(ctx, name)
}
