package contextx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"namegen/pkg/contextx"
)

func TestTraceID(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		ctx     context.Context
		traceID contextx.TraceID
		err     error
	}{
		{
			name: "No trace id",
			ctx:  context.Background(),
			err:  contextx.ErrNoValue,
		},
		{
			name: "Empty trace id",
			ctx:  contextx.WithTraceID(context.Background(), ""),
			err:  contextx.ErrNoValue,
		},
		{
			name:    "Trace id",
			ctx:     contextx.WithTraceID(context.Background(), "test-trace-id"),
			traceID: "test-trace-id",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			traceID, err := contextx.TraceIDFromContext(tc.ctx)
			rq.Equal(tc.traceID, traceID)
			rq.Equal(tc.traceID, contextx.TraceIDFromContextOrEmpty(tc.ctx))

			if tc.err != nil {
				rq.ErrorIs(err, tc.err)
				rq.ErrorContains(err, "trace id: no value in context")

				return
			}

			rq.NoError(err)
		})
	}
}
