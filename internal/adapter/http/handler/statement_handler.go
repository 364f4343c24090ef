package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/erpledger/internal/adapter/http/dto"
	"github.com/iho/erpledger/internal/domain"
	"github.com/iho/erpledger/internal/usecase"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	GetStatement(ctx context.Context, input usecase.GetStatementInput) (*usecase.Statement, error)
	GetEmployeeNet(ctx context.Context, employeeID string) (*usecase.EmployeeNetResult, error)
}

// StatementHandler serves holder statements and employee net positions.
type StatementHandler struct {
	statementUC StatementService
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC StatementService) *StatementHandler {
	return &StatementHandler{statementUC: statementUC}
}

// Ledger returns a holder's statement, optionally restricted to ?from=&to=.
func (h *StatementHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := domain.ValidateID(id); err != nil {
		writeError(w, http.StatusBadRequest, "invalid holder ID", err.Error())
		return
	}

	from, err := parseDateQuery(r, "from", dto.ParseDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date", err.Error())
		return
	}

	to, err := parseDateQuery(r, "to", dto.ParseDateEndOfDay)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date", err.Error())
		return
	}

	statement, err := h.statementUC.GetStatement(r.Context(), usecase.GetStatementInput{
		HolderID: id,
		From:     from,
		To:       to,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromUseCase(statement))
}

// EmployeeNet returns an employee's current salary and current debt.
func (h *StatementHandler) EmployeeNet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := domain.ValidateID(id); err != nil {
		writeError(w, http.StatusBadRequest, "invalid employee ID", err.Error())
		return
	}

	result, err := h.statementUC.GetEmployeeNet(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute employee net", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EmployeeNetFromUseCase(result))
}
