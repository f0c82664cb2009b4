// coach/middlewares/logging.go
package middlewares

import (
	"net/http"
	"time"

	"coach/coach/utils/logging"
	"coach/coach/utils/types"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func SessionContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.WithSessionID(r.Context(), r.Header.Get(types.SessionHeader))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLog writes one line per request to the request logger.
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			logging.RequestLogger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("session_id", logging.SessionID(r.Context())),
				zap.String("remote", r.RemoteAddr),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}
