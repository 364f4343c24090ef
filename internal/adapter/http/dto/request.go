package dto

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/erpledger/internal/usecase"
)

// LenientDecimal decodes a JSON number or numeric string. Null, absent,
// empty and non-numeric values leave it invalid instead of failing the
// whole request.
type LenientDecimal struct {
	decimal.NullDecimal
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *LenientDecimal) UnmarshalJSON(data []byte) error {
	d.NullDecimal = decimal.NullDecimal{}

	raw := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if raw == "" || raw == "null" {
		return nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}

	d.NullDecimal = decimal.NewNullDecimal(value)
	return nil
}

// LenientDate decodes an RFC3339 timestamp or a 2006-01-02 date. Anything
// else leaves it zero.
type LenientDate struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *LenientDate) UnmarshalJSON(data []byte) error {
	d.Time = time.Time{}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}

	d.Time = ParseDate(s)
	return nil
}

// ParseDate parses an RFC3339 timestamp or a 2006-01-02 date, returning the
// zero time when s is neither.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}

	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t
	}

	return time.Time{}
}

// ParseDateEndOfDay parses an inclusive upper bound. A bare YYYY-MM-DD covers
// the whole day, so it resolves to the last nanosecond of that day.
func ParseDateEndOfDay(s string) time.Time {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return ParseDate(s)
}

// CreateDeductionRequest represents a request to create a deduction.
type CreateDeductionRequest struct {
	DeductionType string         `json:"deduction_type"`
	Amount        LenientDecimal `json:"amount"`
	Date          LenientDate    `json:"date"`
	Description   string         `json:"description"`
}

// ToUseCaseInput converts to use case input. A missing amount becomes zero
// and is rejected by validation; a missing date means now.
func (r *CreateDeductionRequest) ToUseCaseInput(employeeID string) usecase.CreateDeductionInput {
	input := usecase.CreateDeductionInput{
		EmployeeID:    employeeID,
		DeductionType: r.DeductionType,
		Amount:        decimal.Zero,
		Description:   strings.TrimSpace(r.Description),
	}

	if r.Amount.Valid {
		input.Amount = r.Amount.Decimal
	}

	if !r.Date.IsZero() {
		date := r.Date.Time
		input.Date = &date
	}

	return input
}
