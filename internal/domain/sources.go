package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Source records arrive from the ERP backend. Amounts that were not informed
// are invalid NullDecimals and dates that were not informed are zero times;
// both are tolerated by the ledger builder.

// Sale is a sales invoice issued to a client.
type Sale struct {
	ID            string
	ClientID      string
	InvoiceNumber string
	Total         decimal.NullDecimal
	Date          time.Time
}

// ReceiptVoucher records money received from a client or an employee.
type ReceiptVoucher struct {
	ID            string
	ClientID      string
	EmployeeID    string
	VoucherNumber string
	Description   string
	Amount        decimal.NullDecimal
	Date          time.Time
}

// DeductionType controls how a deduction nets against salary and debt.
type DeductionType string

const (
	// DeductionTypeSalary is money taken from salary only.
	DeductionTypeSalary DeductionType = "salary"
	// DeductionTypeDebt reduces the employee's debt balance.
	DeductionTypeDebt DeductionType = "debt"
	// DeductionTypeSalaryToDebt converts a salary deduction into carried debt.
	DeductionTypeSalaryToDebt DeductionType = "salary_to_debt"
)

// ParseDeductionType validates a deduction type string.
func ParseDeductionType(s string) (DeductionType, error) {
	switch t := DeductionType(strings.ToLower(strings.TrimSpace(s))); t {
	case DeductionTypeSalary, DeductionTypeDebt, DeductionTypeSalaryToDebt:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDeductionType, s)
	}
}

// NormalizeDeductionType maps a stored type onto a known one. Case and
// surrounding space are ignored and anything unrecognised nets as salary.
func NormalizeDeductionType(s string) DeductionType {
	t, err := ParseDeductionType(s)
	if err != nil {
		return DeductionTypeSalary
	}
	return t
}

// Deduction belongs to exactly one employee. Deductions are never amended:
// an edit is a delete followed by a create.
type Deduction struct {
	ID            string
	EmployeeID    string
	Description   string
	DeductionType DeductionType
	Amount        decimal.NullDecimal
	Date          time.Time
	CreatedAt     time.Time
}

// DebtItem is one line of a debt.
type DebtItem struct {
	Amount  decimal.NullDecimal
	Reason  string
	DueDate time.Time
}

// Debt is a set of items owed by an employee.
type Debt struct {
	ID        string
	DebtorID  string
	Items     []DebtItem
	CreatedAt time.Time
}

// Exposure is the sum of the debt's item amounts. Items carry no settled
// flag, so the full original amount always counts.
func (d *Debt) Exposure() decimal.Decimal {
	total := decimal.Zero
	for _, item := range d.Items {
		total = total.Add(amountOf(item.Amount))
	}
	return total
}

// Sources groups the four source collections a ledger is built from.
// The collections may cover any number of holders.
type Sources struct {
	Sales      []Sale
	Receipts   []ReceiptVoucher
	Deductions []Deduction
	Debts      []Debt
}
