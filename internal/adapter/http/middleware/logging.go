package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/iho/erpledger/internal/infrastructure/logger"
)

// LoggingMiddleware logs one line per API request.
type LoggingMiddleware struct {
	logger zerolog.Logger
}

// NewLoggingMiddleware creates a new LoggingMiddleware.
func NewLoggingMiddleware(logger zerolog.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: logger}
}

// Wrap wraps an http.Handler with logging. Server errors are logged at
// error level, client errors at warn. The matched route and the holder,
// employee or deduction it addresses are added once routing has run.
func (m *LoggingMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		level := zerolog.InfoLevel
		switch {
		case wrapped.statusCode >= 500:
			level = zerolog.ErrorLevel
		case wrapped.statusCode >= 400:
			level = zerolog.WarnLevel
		}

		reqLogger := logger.WithRequest(r.Context(), m.logger)
		event := reqLogger.WithLevel(level).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapped.statusCode).
			Dur("duration", time.Since(start))

		route, subjectKey, subjectID := routeSubject(r)
		if route != "" {
			event = event.Str("route", route)
		}
		if subjectID != "" {
			event = event.Str(subjectKey, subjectID)
		}
		if key := r.Header.Get(IdempotencyKeyHeader); key != "" {
			event = event.Str("idempotency_key", key).
				Bool("replayed", wrapped.Header().Get(IdempotencyReplayHeader) == "true")
		}

		event.Msg("request completed")
	})
}

// routeSubject names the record a routed request addresses, keyed by the
// collection in its route pattern.
func routeSubject(r *http.Request) (route, key, id string) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "", "", ""
	}

	route = rctx.RoutePattern()
	id = rctx.URLParam("id")
	if id == "" {
		return route, "", ""
	}

	switch {
	case strings.Contains(route, "/employees/"):
		key = "employee_id"
	case strings.Contains(route, "/deductions/"):
		key = "deduction_id"
	default:
		key = "holder_id"
	}

	return route, key, id
}

type statusRecorder struct {
	http.ResponseWriter

	statusCode int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}
