package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceType identifies the kind of record a movement was derived from.
type SourceType string

const (
	SourceSale                   SourceType = "sale"
	SourceReceipt                SourceType = "receipt"
	SourceSalaryDeduction        SourceType = "salaryDeduction"
	SourceDebtDeduction          SourceType = "debtDeduction"
	SourceSalaryToDebtConversion SourceType = "salaryToDebtConversion"
	SourceDebtItem               SourceType = "debtItem"
)

// Label is a human readable name for the source type.
func (t SourceType) Label() string {
	switch t {
	case SourceSale:
		return "Sale"
	case SourceReceipt:
		return "Receipt"
	case SourceSalaryDeduction:
		return "Salary deduction"
	case SourceDebtDeduction:
		return "Debt deduction"
	case SourceSalaryToDebtConversion:
		return "Salary to debt conversion"
	case SourceDebtItem:
		return "Debt item"
	default:
		return string(t)
	}
}

// Movement is one normalized debit or credit event. Exactly one of Debit and
// Credit is non-zero, unless the source amount was not informed.
type Movement struct {
	ID          string
	Date        time.Time
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	SourceType  SourceType
}

// Net returns the movement's effect on the balance.
func (m Movement) Net() decimal.Decimal {
	return m.Debit.Sub(m.Credit)
}
