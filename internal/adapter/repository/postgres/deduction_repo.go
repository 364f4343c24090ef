package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/erpledger/internal/domain"
	"github.com/iho/erpledger/internal/infrastructure/postgres/generated"
	"github.com/iho/erpledger/internal/usecase"
)

// DeductionRepository implements usecase.DeductionRepository.
type DeductionRepository struct {
	queries *generated.Queries
}

// NewDeductionRepository creates a new DeductionRepository.
func NewDeductionRepository(pool *pgxpool.Pool) *DeductionRepository {
	return newDeductionRepository(pool)
}

func newDeductionRepository(db generated.DBTX) *DeductionRepository {
	return &DeductionRepository{queries: generated.New(db)}
}

// Create inserts a deduction within a transaction.
func (r *DeductionRepository) Create(ctx context.Context, tx usecase.Transaction, deduction *domain.Deduction) error {
	pgxTx, err := pgxTxFrom(tx)
	if err != nil {
		return err
	}
	queries := r.queries.WithTx(pgxTx)

	_, err = queries.CreateDeduction(ctx, generated.CreateDeductionParams{
		ID:            deduction.ID,
		EmployeeID:    deduction.EmployeeID,
		Description:   deduction.Description,
		DeductionType: string(deduction.DeductionType),
		Amount:        nullDecimalToNumeric(deduction.Amount),
		Date:          optionalTimeToPgTimestamptz(deduction.Date),
		CreatedAt:     timeToPgTimestamptz(deduction.CreatedAt),
	})

	return err
}

// Delete removes a deduction within a transaction.
func (r *DeductionRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx, err := pgxTxFrom(tx)
	if err != nil {
		return err
	}
	queries := r.queries.WithTx(pgxTx)

	affected, err := queries.DeleteDeduction(ctx, id)
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrDeductionNotFound
	}

	return nil
}

// GetByID retrieves a deduction by ID.
func (r *DeductionRepository) GetByID(ctx context.Context, id string) (*domain.Deduction, error) {
	row, err := r.queries.GetDeductionByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDeductionNotFound
		}

		return nil, err
	}

	deduction := rowToDeduction(row)

	return &deduction, nil
}

// ListByEmployee lists an employee's deductions.
func (r *DeductionRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Deduction, error) {
	rows, err := r.queries.ListDeductionsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	deductions := make([]domain.Deduction, 0, len(rows))
	for _, row := range rows {
		deductions = append(deductions, rowToDeduction(row))
	}

	return deductions, nil
}

// rowToDeduction normalizes the stored type. The column is free text written
// by other services, so unknown values are read as salary.
func rowToDeduction(row generated.Deduction) domain.Deduction {
	return domain.Deduction{
		ID:            row.ID,
		EmployeeID:    row.EmployeeID,
		Description:   row.Description,
		DeductionType: domain.NormalizeDeductionType(row.DeductionType),
		Amount:        numericToNullDecimal(row.Amount),
		Date:          pgTimestamptzToTime(row.Date),
		CreatedAt:     row.CreatedAt.Time,
	}
}
