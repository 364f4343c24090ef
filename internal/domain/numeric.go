package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// amountOf coerces a possibly missing amount to zero. Informed amounts pass
// through unchanged, sign included.
func amountOf(n decimal.NullDecimal) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	return n.Decimal
}

// dateOr returns t, or now when t was not informed.
func dateOr(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t
}
