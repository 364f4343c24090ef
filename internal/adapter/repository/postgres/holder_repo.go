package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/erpledger/internal/domain"
	"github.com/iho/erpledger/internal/infrastructure/postgres/generated"
)

// HolderRepository implements usecase.HolderRepository.
type HolderRepository struct {
	queries *generated.Queries
}

// NewHolderRepository creates a new HolderRepository.
func NewHolderRepository(pool *pgxpool.Pool) *HolderRepository {
	return newHolderRepository(pool)
}

func newHolderRepository(db generated.DBTX) *HolderRepository {
	return &HolderRepository{queries: generated.New(db)}
}

// GetByID retrieves a holder by ID.
func (r *HolderRepository) GetByID(ctx context.Context, id string) (*domain.AccountHolder, error) {
	row, err := r.queries.GetHolderByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrHolderNotFound
		}

		return nil, err
	}

	return rowToHolder(row), nil
}

// List lists holders ordered by ID with pagination.
func (r *HolderRepository) List(ctx context.Context, limit, offset int) ([]*domain.AccountHolder, error) {
	rows, err := r.queries.ListHolders(ctx, generated.ListHoldersParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	holders := make([]*domain.AccountHolder, 0, len(rows))
	for _, row := range rows {
		holders = append(holders, rowToHolder(row))
	}

	return holders, nil
}

func rowToHolder(row generated.AccountHolder) *domain.AccountHolder {
	return &domain.AccountHolder{
		ID:             row.ID,
		Kind:           domain.HolderKind(row.Kind),
		Name:           row.Name,
		OpeningBalance: numericToDecimal(row.OpeningBalance),
		CurrentBalance: numericToDecimal(row.CurrentBalance),
		CreditLimit:    numericToDecimalPtr(row.CreditLimit),
		Salary:         numericToDecimalPtr(row.Salary),
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
