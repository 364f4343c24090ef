package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/erpledger/internal/domain"
	"github.com/iho/erpledger/internal/infrastructure/postgres/generated"
)

// DebtRepository implements usecase.DebtRepository.
type DebtRepository struct {
	queries *generated.Queries
}

// NewDebtRepository creates a new DebtRepository.
func NewDebtRepository(pool *pgxpool.Pool) *DebtRepository {
	return newDebtRepository(pool)
}

func newDebtRepository(db generated.DBTX) *DebtRepository {
	return &DebtRepository{queries: generated.New(db)}
}

// ListByDebtor lists a debtor's debts with their items in position order.
func (r *DebtRepository) ListByDebtor(ctx context.Context, debtorID string) ([]domain.Debt, error) {
	debtRows, err := r.queries.ListDebtsByDebtor(ctx, debtorID)
	if err != nil {
		return nil, err
	}

	if len(debtRows) == 0 {
		return []domain.Debt{}, nil
	}

	itemRows, err := r.queries.ListDebtItemsByDebtor(ctx, debtorID)
	if err != nil {
		return nil, err
	}

	itemsByDebt := make(map[string][]domain.DebtItem, len(debtRows))
	for _, row := range itemRows {
		itemsByDebt[row.DebtID] = append(itemsByDebt[row.DebtID], domain.DebtItem{
			Amount:  numericToNullDecimal(row.Amount),
			Reason:  row.Reason,
			DueDate: pgTimestamptzToTime(row.DueDate),
		})
	}

	debts := make([]domain.Debt, 0, len(debtRows))
	for _, row := range debtRows {
		debts = append(debts, domain.Debt{
			ID:        row.ID,
			DebtorID:  row.DebtorID,
			Items:     itemsByDebt[row.ID],
			CreatedAt: row.CreatedAt.Time,
		})
	}

	return debts, nil
}
