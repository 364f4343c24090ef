package domain

import "errors"

var (
	// Holder errors
	ErrHolderNotFound = errors.New("account holder not found")
	ErrNotAnEmployee  = errors.New("account holder is not an employee")

	// Deduction errors
	ErrDeductionNotFound    = errors.New("deduction not found")
	ErrInvalidDeductionType = errors.New("invalid deduction type")
	ErrInvalidAmount        = errors.New("amount must be positive")

	// Reconciliation errors
	ErrReportNotAvailable = errors.New("no reconciliation report available yet")
)
