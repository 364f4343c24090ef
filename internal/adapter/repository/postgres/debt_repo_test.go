package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
)

func TestDebtRepositoryListByDebtor(t *testing.T) {
	mockPool := newMockPool(t)
	now := timeToPgTimestamptz(time.Now())
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mockPool.ExpectQuery("FROM debts WHERE debtor_id").
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "debtor_id", "created_at"}).
			AddRow("debt-1", "emp-1", now).
			AddRow("debt-2", "emp-1", now))
	mockPool.ExpectQuery("FROM debt_items").
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"debt_id", "position", "amount", "reason", "due_date"}).
			AddRow("debt-1", int32(0), decimalToNumeric(decimal.NewFromInt(600)), "laptop", timeToPgTimestamptz(due)).
			AddRow("debt-1", int32(1), decimalToNumeric(decimal.NewFromInt(400)), "phone", timeToPgTimestamptz(due)))

	debts, err := newDebtRepository(mockPool).ListByDebtor(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(debts) != 2 {
		t.Fatalf("expected 2 debts, got %d", len(debts))
	}
	if len(debts[0].Items) != 2 || debts[0].Items[1].Reason != "phone" {
		t.Fatalf("expected items grouped under debt-1, got %+v", debts[0].Items)
	}
	if !debts[0].Exposure().Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected exposure 1000, got %s", debts[0].Exposure())
	}
	if len(debts[1].Items) != 0 {
		t.Fatalf("expected debt-2 to have no items, got %+v", debts[1].Items)
	}

	assertExpectations(t, mockPool)
}

func TestDebtRepositoryListByDebtorSkipsItemsWhenNoDebts(t *testing.T) {
	mockPool := newMockPool(t)

	mockPool.ExpectQuery("FROM debts WHERE debtor_id").
		WithArgs("cli-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "debtor_id", "created_at"}))

	debts, err := newDebtRepository(mockPool).ListByDebtor(context.Background(), "cli-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(debts) != 0 {
		t.Fatalf("expected no debts, got %d", len(debts))
	}

	assertExpectations(t, mockPool)
}
