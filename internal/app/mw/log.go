package mw

import (
	"context"
	"strings"
	"time"

	"github.com/mtmgroup/dashboards-ui/tracing"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var nonLogHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
}

// arrStr wrapper for []string logging.
type arrStr []string

func (o arrStr) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, item := range o {
		enc.AppendString(item)
	}
	return nil
}

// headers wrapper for http.Header logging.
type headers map[string]arrStr

func (o headers) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for key, val := range o {
		_ = enc.AddArray(key, val)
	}
	return nil
}

// headersForLog drops credentials from the header map.
func headersForLog(header map[string][]string) headers {
	h := headers{}
	for key, val := range header {
		if _, has := nonLogHeaders[strings.ToLower(key)]; has {
			continue
		}
		h[key] = val
	}
	return h
}

type requestLogArgs struct {
	header     map[string][]string
	fullMethod string
	route      string
	statusCode int
	took       time.Duration
}

// logRequest writes one line per handled request. Successful requests
// go to the debug level since health checks and scrapes are frequent.
func logRequest(ctx context.Context, l *tracing.Logger, args requestLogArgs) {
	fields := []zap.Field{
		zap.Object("header", headersForLog(args.header)),
		zap.String("full_method", args.fullMethod),
		zap.String("route", args.route),
		zap.Int("status_code", args.statusCode),
		zap.String("took", args.took.String()),
	}

	switch {
	case args.statusCode >= 500:
		l.Error(ctx, "server error occurred", fields...)
	case args.statusCode >= 400:
		l.Warn(ctx, "client error occurred", fields...)
	default:
		l.Debug(ctx, "successful request", fields...)
	}
}
