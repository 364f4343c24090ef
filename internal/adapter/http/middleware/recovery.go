package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/iho/erpledger/internal/adapter/http/dto"
	"github.com/iho/erpledger/internal/infrastructure/logger"
)

// Recovery turns a panic in a statement or deduction handler into a 500
// with the API's error body. Aborted handlers are re-panicked for net/http.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			reqLogger := logger.WithRequest(r.Context(), log.Logger)
			event := reqLogger.Error().
				Str("panic", fmt.Sprint(rec)).
				Str("stack", string(debug.Stack())).
				Str("method", r.Method).
				Str("path", r.URL.Path)
			if route, key, id := routeSubject(r); id != "" {
				event = event.Str("route", route).Str(key, id)
			}
			event.Msg("panic recovered")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "internal server error"})
		}()

		next.ServeHTTP(w, r)
	})
}
