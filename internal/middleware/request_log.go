package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
)

// LogStore appends one entry per inbound call.
type LogStore interface {
	Append(ctx context.Context, e *models.RequestLog) error
}

// RequestLog records every request, success or failure, after the
// response has been written so response_time_ms covers full handling.
// The append is best-effort: a store failure is logged and swallowed,
// it never alters the already-computed response.
func RequestLog(store LogStore, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			holder := &keyHolder{}
			r = r.WithContext(context.WithValue(r.Context(), ctxKeyHolder, holder))

			next.ServeHTTP(ww, r)

			entry := &models.RequestLog{
				ID:             uuid.New(),
				Method:         r.Method,
				Endpoint:       r.URL.Path,
				IPAddress:      clientIP(r),
				StatusCode:     ww.status,
				ResponseTimeMs: int(time.Since(start).Milliseconds()),
			}
			if holder.key != nil {
				entry.APIKeyID = &holder.key.ID
			}
			if err := store.Append(r.Context(), entry); err != nil {
				logger.Warn("request log write failed",
					"method", entry.Method,
					"endpoint", entry.Endpoint,
					"status", entry.StatusCode,
					"error", err,
				)
			}
		})
	}
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the
// socket address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i > 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// responseWriter captures the status code for the log entry.
type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap returns the underlying ResponseWriter so interface assertions
// keep working through the middleware chain.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
