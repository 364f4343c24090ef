package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrAmountTooLarge     = errors.New("amount exceeds maximum allowed")
	ErrAmountTooSmall     = errors.New("amount below minimum allowed")
	ErrInvalidDescription = errors.New("invalid description")
	ErrInvalidIDFormat    = errors.New("invalid ID format")
	ErrInvalidDateRange   = errors.New("invalid date range")
)

// Validation constants
const (
	MaxDescriptionLength = 500
	MaxIDLength          = 64
	MaxDeductionAmount   = "1000000000" // 1 billion
	MinDeductionAmount   = "0.01"
)

// ValidateAmount validates a deduction amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	minAmount, _ := decimal.NewFromString(MinDeductionAmount)
	if amount.LessThan(minAmount) {
		return fmt.Errorf("%w: minimum amount is %s", ErrAmountTooSmall, MinDeductionAmount)
	}

	maxAmount, _ := decimal.NewFromString(MaxDeductionAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxDeductionAmount)
	}

	return nil
}

// ValidateID validates a record identifier.
func ValidateID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > MaxIDLength {
		return fmt.Errorf("%w: %q", ErrInvalidIDFormat, id)
	}
	if strings.ContainsAny(id, " /\\?#") {
		return fmt.Errorf("%w: %q", ErrInvalidIDFormat, id)
	}
	return nil
}

// ValidateDescription validates a free text description.
func ValidateDescription(description string) error {
	if len(strings.TrimSpace(description)) > MaxDescriptionLength {
		return fmt.Errorf("%w: exceeds %d characters", ErrInvalidDescription, MaxDescriptionLength)
	}
	return nil
}

// ValidateDateRange checks that from is not after to. Zero bounds are open.
func ValidateDateRange(from, to time.Time) error {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return fmt.Errorf("%w: from %s is after to %s", ErrInvalidDateRange,
			from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	return nil
}

// ValidateDeduction validates a deduction before it is stored. The date is
// not checked; callers date undated deductions themselves.
func ValidateDeduction(d *Deduction) error {
	if err := ValidateID(d.EmployeeID); err != nil {
		return err
	}

	if _, err := ParseDeductionType(string(d.DeductionType)); err != nil {
		return err
	}

	if !d.Amount.Valid {
		return ErrInvalidAmount
	}
	if err := ValidateAmount(d.Amount.Decimal); err != nil {
		return err
	}

	return ValidateDescription(d.Description)
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int, error) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset, nil
}
