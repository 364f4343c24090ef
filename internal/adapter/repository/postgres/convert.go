package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

// nullDecimalToNumeric maps an absent amount to SQL NULL.
func nullDecimalToNumeric(d decimal.NullDecimal) pgtype.Numeric {
	if !d.Valid {
		return pgtype.Numeric{}
	}

	return decimalToNumeric(d.Decimal)
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

// numericToNullDecimal keeps NULL, NaN and infinite values distinguishable
// from a real zero.
func numericToNullDecimal(n pgtype.Numeric) decimal.NullDecimal {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(numericToDecimal(n))
}

func numericToDecimalPtr(n pgtype.Numeric) *decimal.Decimal {
	nd := numericToNullDecimal(n)
	if !nd.Valid {
		return nil
	}

	return &nd.Decimal
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// optionalTimeToPgTimestamptz stores the zero time as NULL.
func optionalTimeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}

	return timeToPgTimestamptz(t)
}

// pgTimestamptzToTime maps NULL to the zero time.
func pgTimestamptzToTime(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}

	return ts.Time.UTC()
}

func pgTextToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}

	return t.String
}
