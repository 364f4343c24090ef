package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestValidateAmount(t *testing.T) {
	t.Parallel()

	valid := decimal.NewFromFloat(100.25)
	if err := ValidateAmount(valid); err != nil {
		t.Fatalf("expected valid amount, got %v", err)
	}

	if err := ValidateAmount(decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for zero, got %v", err)
	}

	if err := ValidateAmount(decimal.NewFromFloat(0.001)); !errors.Is(err, ErrAmountTooSmall) {
		t.Fatalf("expected ErrAmountTooSmall, got %v", err)
	}

	huge := decimal.RequireFromString(MaxDeductionAmount).Add(decimal.NewFromInt(1))
	if err := ValidateAmount(huge); !errors.Is(err, ErrAmountTooLarge) {
		t.Fatalf("expected ErrAmountTooLarge, got %v", err)
	}
}

func TestValidateID(t *testing.T) {
	t.Parallel()

	if err := ValidateID("emp-1"); err != nil {
		t.Fatalf("expected valid id, got %v", err)
	}

	for _, id := range []string{"", "   ", "a b", "a/b", strings.Repeat("x", MaxIDLength+1)} {
		if err := ValidateID(id); !errors.Is(err, ErrInvalidIDFormat) {
			t.Fatalf("expected ErrInvalidIDFormat for %q, got %v", id, err)
		}
	}
}

func TestValidateDateRange(t *testing.T) {
	t.Parallel()

	jan := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	if err := ValidateDateRange(jan, feb); err != nil {
		t.Fatalf("expected valid range, got %v", err)
	}
	if err := ValidateDateRange(time.Time{}, feb); err != nil {
		t.Fatalf("expected open lower bound to be valid, got %v", err)
	}
	if err := ValidateDateRange(feb, jan); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestValidateDeduction(t *testing.T) {
	t.Parallel()

	valid := func() *Deduction {
		return &Deduction{
			EmployeeID:    "emp-1",
			DeductionType: DeductionTypeSalary,
			Amount:        decimal.NewNullDecimal(decimal.NewFromInt(300)),
			Date:          time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			Description:   "advance",
		}
	}

	if err := ValidateDeduction(valid()); err != nil {
		t.Fatalf("expected valid deduction, got %v", err)
	}

	t.Run("unknown type", func(t *testing.T) {
		d := valid()
		d.DeductionType = "bonus"
		if err := ValidateDeduction(d); !errors.Is(err, ErrInvalidDeductionType) {
			t.Fatalf("expected ErrInvalidDeductionType, got %v", err)
		}
	})

	t.Run("missing amount", func(t *testing.T) {
		d := valid()
		d.Amount = decimal.NullDecimal{}
		if err := ValidateDeduction(d); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("missing date", func(t *testing.T) {
		d := valid()
		d.Date = time.Time{}
		if err := ValidateDeduction(d); err != nil {
			t.Fatalf("expected undated deduction to pass validation, got %v", err)
		}
	})

	t.Run("long description", func(t *testing.T) {
		d := valid()
		d.Description = strings.Repeat("a", MaxDescriptionLength+1)
		if err := ValidateDeduction(d); !errors.Is(err, ErrInvalidDescription) {
			t.Fatalf("expected ErrInvalidDescription, got %v", err)
		}
	})
}

func TestParseDeductionType(t *testing.T) {
	t.Parallel()

	got, err := ParseDeductionType(" Salary_To_Debt ")
	if err != nil || got != DeductionTypeSalaryToDebt {
		t.Fatalf("expected salary_to_debt, got %q err=%v", got, err)
	}

	if _, err := ParseDeductionType("loan"); !errors.Is(err, ErrInvalidDeductionType) {
		t.Fatalf("expected ErrInvalidDeductionType, got %v", err)
	}
}

func TestNormalizeDeductionType(t *testing.T) {
	t.Parallel()

	cases := map[string]DeductionType{
		"debt":           DeductionTypeDebt,
		"Salary":         DeductionTypeSalary,
		"SALARY_TO_DEBT": DeductionTypeSalaryToDebt,
		"bonus":          DeductionTypeSalary,
		"":               DeductionTypeSalary,
	}

	for in, want := range cases {
		if got := NormalizeDeductionType(in); got != want {
			t.Fatalf("NormalizeDeductionType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidatePagination(t *testing.T) {
	t.Parallel()

	limit, offset, err := ValidatePagination(0, -5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if limit != 50 || offset != 0 {
		t.Fatalf("expected defaults (50,0), got (%d,%d)", limit, offset)
	}

	limit, _, _ = ValidatePagination(5000, 10)
	if limit != 1000 {
		t.Fatalf("expected limit to be capped at 1000, got %d", limit)
	}
}
