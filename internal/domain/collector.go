package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CollectMovements normalizes the records of sources that belong to holderID
// into movements. A record belongs to the holder when its client, employee or
// debtor id equals holderID exactly.
//
// The result is unsorted: sales first, then receipts, deductions and debt
// items, each in input order. Records with a missing amount contribute zero
// and records with a missing date are dated now. Nothing is discarded other
// than records of other holders.
func CollectMovements(holderID string, sources Sources, now time.Time) []Movement {
	movements := make([]Movement, 0, len(sources.Sales)+len(sources.Receipts)+len(sources.Deductions))

	for _, sale := range sources.Sales {
		if sale.ClientID != holderID {
			continue
		}
		movements = append(movements, saleMovement(sale, now))
	}

	for _, receipt := range sources.Receipts {
		if receipt.ClientID != holderID && receipt.EmployeeID != holderID {
			continue
		}
		movements = append(movements, receiptMovement(receipt, now))
	}

	for _, deduction := range sources.Deductions {
		if deduction.EmployeeID != holderID {
			continue
		}
		movements = append(movements, deductionMovement(deduction, now))
	}

	for _, debt := range sources.Debts {
		if debt.DebtorID != holderID {
			continue
		}
		for i, item := range debt.Items {
			movements = append(movements, debtItemMovement(debt, i, item, now))
		}
	}

	return movements
}

func saleMovement(sale Sale, now time.Time) Movement {
	description := "Sale"
	if sale.InvoiceNumber != "" {
		description = "Sale invoice " + sale.InvoiceNumber
	}

	return Movement{
		ID:          sale.ID,
		Date:        dateOr(sale.Date, now),
		Description: description,
		Debit:       amountOf(sale.Total),
		Credit:      decimal.Zero,
		SourceType:  SourceSale,
	}
}

func receiptMovement(receipt ReceiptVoucher, now time.Time) Movement {
	description := receipt.Description
	if description == "" {
		description = "Receipt voucher " + receipt.VoucherNumber
	}

	return Movement{
		ID:          receipt.ID,
		Date:        dateOr(receipt.Date, now),
		Description: description,
		Debit:       decimal.Zero,
		Credit:      amountOf(receipt.Amount),
		SourceType:  SourceReceipt,
	}
}

// deductionMovement maps a deduction by type. A salary_to_debt conversion
// appears once, as the debt it adds; its salary side only shows up in
// BuildEmployeeNet.
func deductionMovement(deduction Deduction, now time.Time) Movement {
	m := Movement{
		ID:          deduction.ID,
		Date:        dateOr(deduction.Date, now),
		Description: deduction.Description,
		Debit:       decimal.Zero,
		Credit:      decimal.Zero,
	}
	amount := amountOf(deduction.Amount)

	switch NormalizeDeductionType(string(deduction.DeductionType)) {
	case DeductionTypeDebt:
		m.Credit = amount
		m.SourceType = SourceDebtDeduction
	case DeductionTypeSalaryToDebt:
		m.Debit = amount
		m.SourceType = SourceSalaryToDebtConversion
	default:
		m.Credit = amount
		m.SourceType = SourceSalaryDeduction
	}

	if m.Description == "" {
		m.Description = m.SourceType.Label()
	}

	return m
}

func debtItemMovement(debt Debt, index int, item DebtItem, now time.Time) Movement {
	description := item.Reason
	if description == "" {
		description = "Debt " + debt.ID
	}

	return Movement{
		ID:          fmt.Sprintf("%s/%d", debt.ID, index),
		Date:        dateOr(item.DueDate, now),
		Description: description,
		Debit:       amountOf(item.Amount),
		Credit:      decimal.Zero,
		SourceType:  SourceDebtItem,
	}
}
