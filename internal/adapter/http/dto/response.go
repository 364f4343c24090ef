package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/erpledger/internal/domain"
	"github.com/iho/erpledger/internal/usecase"
)

// LedgerEntryResponse represents one statement row in API responses.
type LedgerEntryResponse struct {
	ID             string          `json:"id,omitempty"`
	Date           *time.Time      `json:"date,omitempty"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	SourceType     string          `json:"source_type,omitempty"`
	SourceLabel    string          `json:"source_label,omitempty"`
	RunningBalance decimal.Decimal `json:"running_balance"`
	Opening        bool            `json:"opening,omitempty"`
}

// TotalsResponse represents statement totals in API responses.
type TotalsResponse struct {
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Closing decimal.Decimal `json:"closing"`
}

// StatementResponse represents a holder's statement in API responses.
type StatementResponse struct {
	HolderID        string                `json:"holder_id"`
	HolderKind      string                `json:"holder_kind"`
	HolderName      string                `json:"holder_name"`
	OpeningBalance  decimal.Decimal       `json:"opening_balance"`
	Entries         []LedgerEntryResponse `json:"entries"`
	Totals          TotalsResponse        `json:"totals"`
	CreditLimit     *decimal.Decimal      `json:"credit_limit,omitempty"`
	OverCreditLimit bool                  `json:"over_credit_limit"`
}

// StatementFromUseCase converts a statement to response.
func StatementFromUseCase(s *usecase.Statement) *StatementResponse {
	entries := make([]LedgerEntryResponse, len(s.Ledger.Entries))
	for i, e := range s.Ledger.Entries {
		entries[i] = LedgerEntryFromDomain(e)
	}

	return &StatementResponse{
		HolderID:       s.Holder.ID,
		HolderKind:     string(s.Holder.Kind),
		HolderName:     s.Holder.Name,
		OpeningBalance: s.Ledger.OpeningBalance,
		Entries:        entries,
		Totals: TotalsResponse{
			Debit:   s.Ledger.Totals.Debit,
			Credit:  s.Ledger.Totals.Credit,
			Closing: s.Ledger.Totals.Closing,
		},
		CreditLimit:     s.Holder.CreditLimit,
		OverCreditLimit: s.OverCreditLimit,
	}
}

// LedgerEntryFromDomain converts a ledger entry to response.
func LedgerEntryFromDomain(e domain.LedgerEntry) LedgerEntryResponse {
	resp := LedgerEntryResponse{
		ID:             e.Movement.ID,
		Description:    e.Movement.Description,
		Debit:          e.Movement.Debit,
		Credit:         e.Movement.Credit,
		RunningBalance: e.RunningBalanceAfter,
		Opening:        e.Opening,
	}

	if !e.Movement.Date.IsZero() {
		date := e.Movement.Date
		resp.Date = &date
	}

	if e.Movement.SourceType != "" {
		resp.SourceType = string(e.Movement.SourceType)
		resp.SourceLabel = e.Movement.SourceType.Label()
	}

	return resp
}

// EmployeeNetResponse represents an employee's salary and debt position.
type EmployeeNetResponse struct {
	EmployeeID            string          `json:"employee_id"`
	EmployeeName          string          `json:"employee_name"`
	BaseSalary            decimal.Decimal `json:"base_salary"`
	SalaryDeductionsTotal decimal.Decimal `json:"salary_deductions_total"`
	DebtDeductionsTotal   decimal.Decimal `json:"debt_deductions_total"`
	SalaryToDebtTotal     decimal.Decimal `json:"salary_to_debt_total"`
	TotalDebtExposure     decimal.Decimal `json:"total_debt_exposure"`
	CurrentSalary         decimal.Decimal `json:"current_salary"`
	CurrentDebt           decimal.Decimal `json:"current_debt"`
}

// EmployeeNetFromUseCase converts an employee net result to response.
func EmployeeNetFromUseCase(r *usecase.EmployeeNetResult) *EmployeeNetResponse {
	return &EmployeeNetResponse{
		EmployeeID:            r.Holder.ID,
		EmployeeName:          r.Holder.Name,
		BaseSalary:            r.Net.BaseSalary,
		SalaryDeductionsTotal: r.Net.SalaryDeductionsTotal,
		DebtDeductionsTotal:   r.Net.DebtDeductionsTotal,
		SalaryToDebtTotal:     r.Net.SalaryToDebtTotal,
		TotalDebtExposure:     r.Net.TotalDebtExposure,
		CurrentSalary:         r.Net.CurrentSalary,
		CurrentDebt:           r.Net.CurrentDebt,
	}
}

// DeductionResponse represents a deduction in API responses.
type DeductionResponse struct {
	ID            string           `json:"id"`
	EmployeeID    string           `json:"employee_id"`
	Description   string           `json:"description"`
	DeductionType string           `json:"deduction_type"`
	Amount        *decimal.Decimal `json:"amount"`
	Date          *time.Time       `json:"date"`
	CreatedAt     time.Time        `json:"created_at"`
}

// DeductionFromDomain converts a domain deduction to response. Absent
// amounts and dates are rendered as null.
func DeductionFromDomain(d *domain.Deduction) *DeductionResponse {
	resp := &DeductionResponse{
		ID:            d.ID,
		EmployeeID:    d.EmployeeID,
		Description:   d.Description,
		DeductionType: string(d.DeductionType),
		CreatedAt:     d.CreatedAt,
	}

	if d.Amount.Valid {
		amount := d.Amount.Decimal
		resp.Amount = &amount
	}

	if !d.Date.IsZero() {
		date := d.Date
		resp.Date = &date
	}

	return resp
}

// DeductionsFromDomain converts domain deductions to responses.
func DeductionsFromDomain(deductions []domain.Deduction) []*DeductionResponse {
	result := make([]*DeductionResponse, len(deductions))
	for i := range deductions {
		result[i] = DeductionFromDomain(&deductions[i])
	}
	return result
}

// ListDeductionsResponse represents a list of deductions.
type ListDeductionsResponse struct {
	Deductions []*DeductionResponse `json:"deductions"`
	Total      int64                `json:"total"`
}

// ReconciliationResponse represents one holder's reconciliation result.
type ReconciliationResponse struct {
	HolderID          string          `json:"holder_id"`
	HolderKind        string          `json:"holder_kind"`
	RecordedBalance   decimal.Decimal `json:"recorded_balance"`
	CalculatedBalance decimal.Decimal `json:"calculated_balance"`
	Difference        decimal.Decimal `json:"difference"`
	IsReconciled      bool            `json:"is_reconciled"`
	LastChecked       time.Time       `json:"last_checked"`
}

// ReconciliationFromUseCase converts a reconciliation result to response.
func ReconciliationFromUseCase(r *usecase.ReconciliationResult) *ReconciliationResponse {
	return &ReconciliationResponse{
		HolderID:          r.HolderID,
		HolderKind:        string(r.HolderKind),
		RecordedBalance:   r.RecordedBalance,
		CalculatedBalance: r.CalculatedBalance,
		Difference:        r.Difference,
		IsReconciled:      r.IsReconciled,
		LastChecked:       r.LastChecked,
	}
}

// ReconciliationReportResponse represents a reconciliation report.
type ReconciliationReportResponse struct {
	TotalHolders      int                       `json:"total_holders"`
	ReconciledHolders int                       `json:"reconciled_holders"`
	Discrepancies     []*ReconciliationResponse `json:"discrepancies"`
	TotalDrift        decimal.Decimal           `json:"total_drift"`
	CheckedAt         time.Time                 `json:"checked_at"`
}

// ReconciliationReportFromUseCase converts a report to response.
func ReconciliationReportFromUseCase(r *usecase.ReconciliationReport) *ReconciliationReportResponse {
	discrepancies := make([]*ReconciliationResponse, len(r.Discrepancies))
	for i, d := range r.Discrepancies {
		discrepancies[i] = ReconciliationFromUseCase(d)
	}

	return &ReconciliationReportResponse{
		TotalHolders:      r.TotalHolders,
		ReconciledHolders: r.ReconciledHolders,
		Discrepancies:     discrepancies,
		TotalDrift:        r.TotalDrift,
		CheckedAt:         r.CheckedAt,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
