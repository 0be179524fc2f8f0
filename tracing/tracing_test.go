package tracing

import (
	"context"
	"testing"

	"github.com/mtmgroup/dashboards-ui/internal/app/config"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestValidateTracingConfig(t *testing.T) {
	valid := func() *config.Tracing {
		return &config.Tracing{
			ServiceName: "dashboards-ui",
			Jaeger: config.TracingJaeger{
				AgentHost: "localhost",
				AgentPort: "6831",
			},
			Sampler: config.TracingSampler{
				Param: 0.7,
			},
		}
	}

	tCases := []struct {
		name    string
		cfg     func() *config.Tracing
		wantErr bool
	}{
		{
			name: "valid config",
			cfg:  valid,
		},
		{
			name:    "nil config",
			cfg:     func() *config.Tracing { return nil },
			wantErr: true,
		},
		{
			name: "missing service_name",
			cfg: func() *config.Tracing {
				c := valid()
				c.ServiceName = ""
				return c
			},
			wantErr: true,
		},
		{
			name: "missing agent host",
			cfg: func() *config.Tracing {
				c := valid()
				c.Jaeger.AgentHost = ""
				return c
			},
			wantErr: true,
		},
		{
			name: "missing agent port",
			cfg: func() *config.Tracing {
				c := valid()
				c.Jaeger.AgentPort = ""
				return c
			},
			wantErr: true,
		},
		{
			name: "sampler out of range",
			cfg: func() *config.Tracing {
				c := valid()
				c.Sampler.Param = 1.5
				return c
			},
			wantErr: true,
		},
	}

	for _, tCase := range tCases {
		tCase := tCase
		t.Run(tCase.name, func(t *testing.T) {
			t.Parallel()

			err := validate(tCase.cfg())
			assert.Equal(t, tCase.wantErr, err != nil)
		})
	}
}

func TestLoggerAddsSpanIDs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewLogger(zap.New(core))

	l.Info(context.Background(), "no span")

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))
	l.Info(ctx, "with span")

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.NotContains(t, entries[0].ContextMap(), "trace_id")
	assert.Equal(t, traceID.String(), entries[1].ContextMap()["trace_id"])
	assert.Equal(t, spanID.String(), entries[1].ContextMap()["span_id"])
}
