package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"namegen/pkg/contextx"
)

const maxTraceIDLen = 64

// TraceID берёт trace id из заголовка или генерирует новый. Слишком длинные
// значения заменяются, чтобы не раздувать логи.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(contextx.HeaderTraceID)

		if traceID == "" || len(traceID) > maxTraceIDLen {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(contextx.HeaderTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
