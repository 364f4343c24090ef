package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/iho/erpledger/internal/adapter/http/dto"
	"github.com/iho/erpledger/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrHolderNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDeductionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrReportNotAvailable):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNotAnEmployee):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidDeductionType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAmountTooSmall):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAmountTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidDescription):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidIDFormat):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidDateRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseDateQuery parses an optional date query parameter with parse. An
// absent value returns the zero time.
func parseDateQuery(r *http.Request, key string, parse func(string) time.Time) (time.Time, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return time.Time{}, nil
	}

	t := parse(val)
	if t.IsZero() {
		return time.Time{}, fmt.Errorf("%s must be RFC3339 or YYYY-MM-DD, got %q", key, val)
	}

	return t, nil
}
