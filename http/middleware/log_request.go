package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/xy-planning-network/display"
)

// LogRequest logs the method, path, status and duration of each request
// using the provided *slog.Logger.
//
// If the *slog.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(l *slog.Logger) Adapter {
	if l == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			h.ServeHTTP(sw, r)

			l.LogAttrs(
				r.Context(),
				slog.LevelInfo,
				r.Method+" "+r.URL.Path,
				slog.Attr{Key: display.LogKindKey, Value: display.HTTPLogKind},
				slog.String("requestID", RequestIDFromContext(r.Context())),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}
