package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HolderKind distinguishes clients from employees.
type HolderKind string

const (
	HolderKindClient   HolderKind = "client"
	HolderKindEmployee HolderKind = "employee"
)

// AccountHolder is a client or employee with a running financial balance.
//
// CurrentBalance is the value cached by the backend. It is expected to equal
// OpeningBalance plus debits minus credits, but nothing enforces that; the
// ledger is always recomputed from the source records.
type AccountHolder struct {
	ID             string
	Kind           HolderKind
	Name           string
	OpeningBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	CreditLimit    *decimal.Decimal
	Salary         *decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsEmployee reports whether the holder is an employee.
func (h *AccountHolder) IsEmployee() bool {
	return h.Kind == HolderKindEmployee
}

// BaseSalary returns the holder's salary, or zero when it is not informed.
func (h *AccountHolder) BaseSalary() decimal.Decimal {
	if h.Salary == nil {
		return decimal.Zero
	}
	return *h.Salary
}
