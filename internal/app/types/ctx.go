package types

import (
	"context"
)

const RequestIDHeader = "X-Request-ID"

type RequestIDKey struct{}

// WithRequestID stores the id sent as X-Request-ID by outgoing requests.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey{}, id)
}

// GetRequestID returns the request id from context.
func GetRequestID(ctx context.Context) string {
	v := ctx.Value(RequestIDKey{})
	if v == nil {
		return ""
	}
	id, ok := v.(string)
	// foolproof.
	if !ok {
		return ""
	}
	return id
}
