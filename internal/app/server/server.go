package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/pprof"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mtmgroup/dashboards-ui/internal/app/mw"
	"github.com/mtmgroup/dashboards-ui/logger"
	"github.com/mtmgroup/dashboards-ui/tracing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Debug serves health checks, metrics and pprof next to the UI.
type Debug struct {
	addr  string
	ready atomic.Bool
	srv   *http.Server
}

func NewDebug(ctx context.Context, addr string) *Debug {
	d := &Debug{addr: addr}
	d.srv = &http.Server{
		Handler:           d.routes(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
	return d
}

// SetReady flips /ready to 200, once the dashboards page has loaded.
func (d *Debug) SetReady(ready bool) {
	d.ready.Store(ready)
}

func (d *Debug) Handler() http.Handler {
	return d.srv.Handler
}

func (d *Debug) routes() *chi.Mux {
	mux := chi.NewMux()
	mux.Use(
		mw.HTTPObserveInterceptor(tracing.NewLogger(logger.Instance)),
		mw.HTTPRecoverInterceptor(),
	)

	mux.Handle("/metrics", promhttp.Handler())
	mux.Get("/live", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})
	mux.Get("/ready", func(w http.ResponseWriter, _ *http.Request) {
		if !d.ready.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_, _ = w.Write([]byte("{}"))
	})

	mux.HandleFunc("/debug/pprof/*", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

// Run serves until ctx is done.
func (d *Debug) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", d.addr)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("debug server started", zap.String("addr", l.Addr().String()))
		if err := d.srv.Serve(l); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := d.srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutting down the debug server", zap.Error(err))
			return nil
		}
		logger.Warn("debug server gracefully stopped")
		return nil
	})
	return g.Wait()
}
