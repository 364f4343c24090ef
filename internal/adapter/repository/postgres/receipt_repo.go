package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/erpledger/internal/domain"
	"github.com/iho/erpledger/internal/infrastructure/postgres/generated"
)

// ReceiptRepository implements usecase.ReceiptRepository.
type ReceiptRepository struct {
	queries *generated.Queries
}

// NewReceiptRepository creates a new ReceiptRepository.
func NewReceiptRepository(pool *pgxpool.Pool) *ReceiptRepository {
	return newReceiptRepository(pool)
}

func newReceiptRepository(db generated.DBTX) *ReceiptRepository {
	return &ReceiptRepository{queries: generated.New(db)}
}

// ListByHolder lists receipt vouchers linked to the holder as client or
// as employee.
func (r *ReceiptRepository) ListByHolder(ctx context.Context, holderID string) ([]domain.ReceiptVoucher, error) {
	rows, err := r.queries.ListReceiptsByHolder(ctx, holderID)
	if err != nil {
		return nil, err
	}

	receipts := make([]domain.ReceiptVoucher, 0, len(rows))
	for _, row := range rows {
		receipts = append(receipts, domain.ReceiptVoucher{
			ID:            row.ID,
			ClientID:      pgTextToString(row.ClientID),
			EmployeeID:    pgTextToString(row.EmployeeID),
			VoucherNumber: row.VoucherNumber,
			Description:   row.Description,
			Amount:        numericToNullDecimal(row.Amount),
			Date:          pgTimestamptzToTime(row.Date),
		})
	}

	return receipts, nil
}
