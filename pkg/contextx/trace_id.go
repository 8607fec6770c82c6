package contextx

import (
	"context"
	"fmt"
)

// HeaderTraceID пробрасывается между сервисами и возвращается клиенту.
const HeaderTraceID = "X-Trace-Id"

type TraceID string

type contextKeyTraceID struct{}

func (t TraceID) String() string {
	return string(t)
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok || traceID == "" {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}

func TraceIDFromContextOrEmpty(ctx context.Context) TraceID {
	traceID, _ := TraceIDFromContext(ctx)

	return traceID
}
