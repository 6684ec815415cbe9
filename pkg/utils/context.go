package utils

import "context"

type contextKey string

const RequestIDKey contextKey = "request_id"

// SetRequestID stores the request id in the context
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// GetRequestIDFromContext retrieves the request id, if any
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(RequestIDKey)
	if val == nil {
		return "", false
	}
	id, ok := val.(string)
	return id, ok
}
