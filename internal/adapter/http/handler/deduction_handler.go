package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/erpledger/internal/adapter/http/dto"
	"github.com/iho/erpledger/internal/domain"
	"github.com/iho/erpledger/internal/usecase"
)

// DeductionService defines the behavior needed by DeductionHandler.
type DeductionService interface {
	CreateDeduction(ctx context.Context, input usecase.CreateDeductionInput) (*domain.Deduction, error)
	DeleteDeduction(ctx context.Context, id string) error
	ListDeductions(ctx context.Context, employeeID string) ([]domain.Deduction, error)
}

// DeductionHandler handles deduction-related HTTP requests.
type DeductionHandler struct {
	deductionUC DeductionService
}

// NewDeductionHandler creates a new DeductionHandler.
func NewDeductionHandler(deductionUC DeductionService) *DeductionHandler {
	return &DeductionHandler{deductionUC: deductionUC}
}

// Create records a deduction for the employee in the URL.
func (h *DeductionHandler) Create(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if err := domain.ValidateID(employeeID); err != nil {
		writeError(w, http.StatusBadRequest, "invalid employee ID", err.Error())
		return
	}

	var req dto.CreateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	deduction, err := h.deductionUC.CreateDeduction(r.Context(), req.ToUseCaseInput(employeeID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create deduction", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.DeductionFromDomain(deduction))
}

// List lists the deductions of the employee in the URL.
func (h *DeductionHandler) List(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if err := domain.ValidateID(employeeID); err != nil {
		writeError(w, http.StatusBadRequest, "invalid employee ID", err.Error())
		return
	}

	deductions, err := h.deductionUC.ListDeductions(r.Context(), employeeID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list deductions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListDeductionsResponse{
		Deductions: dto.DeductionsFromDomain(deductions),
		Total:      int64(len(deductions)),
	})
}

// Delete removes a deduction.
func (h *DeductionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := domain.ValidateID(id); err != nil {
		writeError(w, http.StatusBadRequest, "invalid deduction ID", err.Error())
		return
	}

	if err := h.deductionUC.DeleteDeduction(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete deduction", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
