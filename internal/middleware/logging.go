package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/oggyb/matching-service/internal/logger"
)

// RequestLogger writes one line per request once the response is done and
// exposes a request-scoped logger to handlers through logger.FromContext.
// 5xx responses are logged at Error, 4xx at Warn, the rest at Info.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			reqLog := log.With("request_id", chimw.GetReqID(r.Context()))
			r = r.WithContext(logger.NewContext(r.Context(), reqLog))

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				level := slog.LevelInfo
				switch {
				case status >= http.StatusInternalServerError:
					level = slog.LevelError
				case status >= http.StatusBadRequest:
					level = slog.LevelWarn
				}
				reqLog.Log(r.Context(), level, "http request",
					"method", r.Method,
					"route", routePattern(r),
					"status", status,
					"bytes", ww.BytesWritten(),
					"latency", time.Since(start),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
