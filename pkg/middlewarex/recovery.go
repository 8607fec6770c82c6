package middlewarex

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"namegen/pkg/httpx/reply"
	"namegen/pkg/logx"
)

var errPanic = errors.New("panic in handler")

// Recovery перехватывает панику и отвечает 500 в общем формате ошибок
// с supportId, по которому ответ находится в логах.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel, не оборачивается
					panic(rec)
				}

				logger(ctx).Error(
					errPanic.Error(),
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.Error(ctx, w, errPanic)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
