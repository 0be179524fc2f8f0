package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gofrs/uuid"
	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	"github.com/mtmgroup/dashboards-ui/logger"
	"github.com/mtmgroup/dashboards-ui/metric"
	"github.com/mtmgroup/dashboards-ui/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const (
	headerAccept      = "Accept"
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"

	statusTransportError = "transport_error"

	errorTypeNetwork     = "network"
	errorTypeApplication = "application"
	errorTypeTimeout     = "timeout"
	errorTypeCanceled    = "context canceled"
)

// envelope is the part every backend answer shares.
type envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type apiRequest struct {
	op        string
	method    string
	path      string
	query     url.Values
	body      any
	retriable bool
}

func (c *HTTPClient) sendRequest(ctx context.Context, req apiRequest, out any) error {
	ctx, span := tracing.StartSpan(ctx, "api_client_"+req.op)
	defer span.End()

	var body []byte
	if req.body != nil {
		var err error
		if body, err = json.Marshal(req.body); err != nil {
			return fmt.Errorf("marshal %s request: %w", req.op, err)
		}
	}

	requestID := types.GetRequestID(ctx)
	if requestID == "" {
		if id, err := uuid.NewV4(); err == nil {
			requestID = id.String()
		}
	}

	span.SetAttributes(
		attribute.String("request_id", requestID),
		attribute.String("http.method", req.method),
		attribute.String("path", req.path),
	)

	maxRetries := 0
	if req.retriable {
		maxRetries = c.reqRetries
	}

	tryFn := func() (bool, error) {
		err := c.sendOnce(ctx, req, body, requestID, out)
		if err == nil {
			return false, nil
		}
		return req.retriable && isRetriable(err), err
	}

	err := trySendRequestWithBackoff(ctx, tryFn, tryWithBackoffParams{
		method:              req.op,
		maxRetries:          maxRetries,
		initialRetryBackoff: c.initialRetryBackoff,
		maxRetryBackoff:     c.maxRetryBackoff,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		incErrorMetric(ctx, req.op, err)
		tracing.NewLogger(logger.Instance).Warn(ctx, "dashboards api request failed",
			zap.String("op", req.op),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
	return err
}

func (c *HTTPClient) sendOnce(ctx context.Context, req apiRequest, body []byte, requestID string, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, r)
	if err != nil {
		return types.NewNetworkError(req.op, err)
	}
	httpReq.Header.Set(headerAccept, contentTypeJSON)
	if body != nil {
		httpReq.Header.Set(headerContentType, contentTypeJSON)
	}
	if requestID != "" {
		httpReq.Header.Set(types.RequestIDHeader, requestID)
	}

	metric.APIClientRequestSent.WithLabelValues(req.op).Inc()
	start := time.Now()

	resp, err := c.http.Do(httpReq)
	if err != nil {
		metric.HandledOutgoingRequest(ctx, req.op, statusTransportError, time.Since(start))
		return types.NewNetworkError(req.op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	metric.HandledOutgoingRequest(ctx, req.op, strconv.Itoa(resp.StatusCode), time.Since(start))
	if err != nil {
		return types.NewNetworkError(req.op, fmt.Errorf("read response: %w", err))
	}

	return decodeResponse(req.op, resp.StatusCode, data, out)
}

// decodeResponse maps a raw answer onto the error taxonomy. A body that is
// not the JSON envelope counts as a network failure.
func decodeResponse(op string, statusCode int, data []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return types.NewNetworkError(op, fmt.Errorf("decode response (status %d): %w", statusCode, err))
	}

	if !env.OK || statusCode >= http.StatusMultipleChoices {
		return &types.ApplicationError{
			Op:         op,
			StatusCode: statusCode,
			Message:    env.Error,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return types.NewNetworkError(op, fmt.Errorf("decode %s response: %w", op, err))
	}
	return nil
}

func isRetriable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var appErr *types.ApplicationError
	if errors.As(err, &appErr) {
		return appErr.StatusCode >= http.StatusInternalServerError
	}
	return errors.Is(err, types.ErrNetwork)
}

func incErrorMetric(ctx context.Context, op string, err error) {
	var errType string
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		errType = errorTypeTimeout
	case errors.Is(err, context.Canceled):
		errType = errorTypeCanceled
	case errors.Is(err, types.ErrApplication):
		errType = errorTypeApplication
	default:
		errType = errorTypeNetwork
	}
	metric.APIClientRequestError.WithLabelValues(op, errType).Inc()
}
