package metric

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	dashboardsUINS  = "dashboards_ui"
	apiClientSubsys = "api_client"
	authSubsys      = "auth"
	filterSubsys    = "filter"
	formSubsys      = "form"
	cacheSubsys     = "cache"
	debugSubsys     = "debug_server"

	methodLabel     = "method"
	statusCodeLabel = "status_code"
	errorTypeLabel  = "error_type"
	outcomeLabel    = "outcome"
	formLabel       = "form"
	routeLabel      = "route"
)

var (
	defaultBuckets = prometheus.ExponentialBuckets(0.002, 2, 16)

	// api client metrics
	APIClientRequestSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: dashboardsUINS,
		Subsystem: apiClientSubsys,
		Name:      "requests_sent_total",
		Help:      "",
	}, []string{methodLabel})
	APIClientResponseReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: dashboardsUINS,
		Subsystem: apiClientSubsys,
		Name:      "responses_received_total",
		Help:      "",
	}, []string{methodLabel, statusCodeLabel})
	APIClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: dashboardsUINS,
		Subsystem: apiClientSubsys,
		Name:      "requests_sent_duration_seconds",
		Help:      "",
		Buckets:   defaultBuckets,
	}, []string{methodLabel, statusCodeLabel})
	APIClientRequestError = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: dashboardsUINS,
		Subsystem: apiClientSubsys,
		Name:      "requests_errors_total",
		Help:      "",
	}, []string{methodLabel, errorTypeLabel})
	APIClientRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: dashboardsUINS,
		Subsystem: apiClientSubsys,
		Name:      "retries_total",
		Help:      "",
	}, []string{methodLabel})

	// auth metrics
	AuthCheckDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: dashboardsUINS,
		Subsystem: authSubsys,
		Name:      "check_duration_seconds",
		Help:      "",
		Buckets:   defaultBuckets,
	})
	AuthChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: dashboardsUINS,
		Subsystem: authSubsys,
		Name:      "checks_total",
		Help:      "",
	}, []string{outcomeLabel})

	// filter metrics
	FilterFetches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: dashboardsUINS,
		Subsystem: filterSubsys,
		Name:      "fetches_total",
		Help:      "",
	})
	FilterStaleResponses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: dashboardsUINS,
		Subsystem: filterSubsys,
		Name:      "stale_responses_discarded_total",
		Help:      "",
	})

	// form metrics
	FormSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: dashboardsUINS,
		Subsystem: formSubsys,
		Name:      "submissions_total",
		Help:      "",
	}, []string{formLabel, outcomeLabel})

	// cache metrics
	CacheInmemoryHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: dashboardsUINS,
		Subsystem: cacheSubsys,
		Name:      "inmemory_hits_total",
		Help:      "",
	})
	CacheInmemoryMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: dashboardsUINS,
		Subsystem: cacheSubsys,
		Name:      "inmemory_misses_total",
		Help:      "",
	})
	CacheRedisHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: dashboardsUINS,
		Subsystem: cacheSubsys,
		Name:      "redis_hits_total",
		Help:      "",
	})
	CacheRedisMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: dashboardsUINS,
		Subsystem: cacheSubsys,
		Name:      "redis_misses_total",
		Help:      "",
	})
)

var (
	// debug server metrics
	DebugRequestReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: dashboardsUINS,
		Subsystem: debugSubsys,
		Name:      "requests_received_total",
		Help:      "",
	}, []string{routeLabel})
	DebugRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: dashboardsUINS,
		Subsystem: debugSubsys,
		Name:      "requests_handled_duration_seconds",
		Help:      "",
		Buckets:   defaultBuckets,
	}, []string{routeLabel, statusCodeLabel})
	DebugRequestPanics = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: dashboardsUINS,
		Subsystem: debugSubsys,
		Name:      "panics_total",
		Help:      "",
	})
)

// HandledOutgoingRequest handles metrics for a finished request to the dashboards API.
func HandledOutgoingRequest(ctx context.Context, method, statusCode string, took time.Duration) {
	ctxErr := ctx.Err()
	if errors.Is(ctxErr, context.Canceled) {
		statusCode = context.Canceled.Error()
	} else if errors.Is(ctxErr, context.DeadlineExceeded) {
		statusCode = context.DeadlineExceeded.Error()
	}
	APIClientRequestDuration.WithLabelValues(method, statusCode).Observe(took.Seconds())
	APIClientResponseReceived.WithLabelValues(method, statusCode).Inc()
}
