package mw

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mtmgroup/dashboards-ui/metric"
	"github.com/mtmgroup/dashboards-ui/tracing"
)

const unknownRoute = "unknown"

// routePattern is only known after chi has routed the request.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unknownRoute
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return unknownRoute
}

func fullMethod(r *http.Request) string {
	return strings.Join([]string{r.Method, r.RequestURI, r.Proto}, " ")
}

// HTTPObserveInterceptor logs every request and records its metrics.
func HTTPObserveInterceptor(l *tracing.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			start := time.Now()
			next.ServeHTTP(ww, r)
			took := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := routePattern(r)

			metric.DebugRequestReceived.WithLabelValues(route).Inc()
			metric.DebugRequestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(took.Seconds())

			logRequest(r.Context(), l, requestLogArgs{
				header:     r.Header,
				fullMethod: fullMethod(r),
				route:      route,
				statusCode: status,
				took:       took,
			})
		}
		return http.HandlerFunc(fn)
	}
}

func HTTPRecoverInterceptor() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				if r := recover(); r != nil {
					if r == http.ErrAbortHandler { //nolint:errorlint
						panic(r)
					}
					handleRecover(fullMethod(req), r)
					http.Error(w, "recover: unexpected server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, req)
		}
		return http.HandlerFunc(fn)
	}
}
