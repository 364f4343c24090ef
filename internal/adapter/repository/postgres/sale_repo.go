package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/erpledger/internal/domain"
	"github.com/iho/erpledger/internal/infrastructure/postgres/generated"
)

// SaleRepository implements usecase.SaleRepository.
type SaleRepository struct {
	queries *generated.Queries
}

// NewSaleRepository creates a new SaleRepository.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepository {
	return newSaleRepository(pool)
}

func newSaleRepository(db generated.DBTX) *SaleRepository {
	return &SaleRepository{queries: generated.New(db)}
}

// ListByClient lists the sales invoiced to a client.
func (r *SaleRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Sale, error) {
	rows, err := r.queries.ListSalesByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	sales := make([]domain.Sale, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, domain.Sale{
			ID:            row.ID,
			ClientID:      row.ClientID,
			InvoiceNumber: row.InvoiceNumber,
			Total:         numericToNullDecimal(row.Total),
			Date:          pgTimestamptzToTime(row.Date),
		})
	}

	return sales, nil
}
