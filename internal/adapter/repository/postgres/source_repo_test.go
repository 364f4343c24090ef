package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
)

func TestSaleRepositoryListByClient(t *testing.T) {
	mockPool := newMockPool(t)
	date := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	mockPool.ExpectQuery("FROM sales WHERE client_id").
		WithArgs("cli-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "client_id", "invoice_number", "total", "date"}).
			AddRow("s1", "cli-1", "INV-1", decimalToNumeric(decimal.NewFromInt(500)), timeToPgTimestamptz(date)).
			AddRow("s2", "cli-1", "INV-2", pgtype.Numeric{}, pgtype.Timestamptz{}))

	sales, err := newSaleRepository(mockPool).ListByClient(context.Background(), "cli-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sales) != 2 {
		t.Fatalf("expected 2 sales, got %d", len(sales))
	}
	if !sales[0].Total.Valid || !sales[0].Total.Decimal.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected total 500, got %+v", sales[0].Total)
	}
	if !sales[0].Date.Equal(date) {
		t.Fatalf("expected date %s, got %s", date, sales[0].Date)
	}
	if sales[1].Total.Valid {
		t.Fatalf("expected NULL total to stay absent, got %s", sales[1].Total.Decimal)
	}
	if !sales[1].Date.IsZero() {
		t.Fatalf("expected NULL date to map to zero time, got %s", sales[1].Date)
	}

	assertExpectations(t, mockPool)
}

func TestSaleRepositoryListByClientError(t *testing.T) {
	mockPool := newMockPool(t)
	queryErr := errors.New("connection reset")

	mockPool.ExpectQuery("FROM sales WHERE client_id").
		WithArgs("cli-1").
		WillReturnError(queryErr)

	if _, err := newSaleRepository(mockPool).ListByClient(context.Background(), "cli-1"); !errors.Is(err, queryErr) {
		t.Fatalf("expected query error, got %v", err)
	}
}

func TestReceiptRepositoryListByHolder(t *testing.T) {
	mockPool := newMockPool(t)

	mockPool.ExpectQuery("FROM receipt_vouchers").
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "client_id", "employee_id", "voucher_number", "description", "amount", "date"}).
			AddRow("r1", pgtype.Text{}, pgtype.Text{String: "emp-1", Valid: true}, "RV-9", "advance",
				decimalToNumeric(decimal.RequireFromString("120.50")), timeToPgTimestamptz(time.Now())))

	receipts, err := newReceiptRepository(mockPool).ListByHolder(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(receipts) != 1 {
		t.Fatalf("expected 1 receipt, got %d", len(receipts))
	}
	if receipts[0].ClientID != "" || receipts[0].EmployeeID != "emp-1" {
		t.Fatalf("unexpected holder links: %+v", receipts[0])
	}
	if !receipts[0].Amount.Decimal.Equal(decimal.RequireFromString("120.50")) {
		t.Fatalf("expected amount 120.50, got %s", receipts[0].Amount.Decimal)
	}

	assertExpectations(t, mockPool)
}
