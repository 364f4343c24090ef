package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/erpledger/internal/adapter/http/dto"
	"github.com/iho/erpledger/internal/domain"
	"github.com/iho/erpledger/internal/usecase"
)

// ReconciliationService defines the behavior needed by ReconciliationHandler.
type ReconciliationService interface {
	ReconcileHolder(ctx context.Context, holderID string) (*usecase.ReconciliationResult, error)
	GenerateReconciliationReport(ctx context.Context) (*usecase.ReconciliationReport, error)
	LatestReport(ctx context.Context) (*usecase.ReconciliationReport, error)
}

// ReconciliationHandler compares cached balances with recomputed ledgers.
type ReconciliationHandler struct {
	reconciliationUC ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconciliationUC ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationUC: reconciliationUC}
}

// Holder reconciles a single holder.
func (h *ReconciliationHandler) Holder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := domain.ValidateID(id); err != nil {
		writeError(w, http.StatusBadRequest, "invalid holder ID", err.Error())
		return
	}

	result, err := h.reconciliationUC.ReconcileHolder(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to reconcile holder", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationFromUseCase(result))
}

// Report reconciles every holder.
func (h *ReconciliationHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconciliationUC.GenerateReconciliationReport(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to generate reconciliation report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationReportFromUseCase(report))
}

// Latest returns the report stored by the last background refresh.
func (h *ReconciliationHandler) Latest(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconciliationUC.LatestReport(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to load reconciliation report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationReportFromUseCase(report))
}
