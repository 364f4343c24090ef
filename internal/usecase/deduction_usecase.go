package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/erpledger/internal/domain"
)

// DeductionUseCase handles deduction business logic. Deductions are never
// updated; an edit is a delete followed by a create.
type DeductionUseCase struct {
	txManager     TransactionManager
	holderRepo    HolderRepository
	deductionRepo DeductionRepository
	idGen         IDGenerator
	retrier       Retrier
	recorder      StatementRecorder
}

// NewDeductionUseCase creates a new DeductionUseCase.
func NewDeductionUseCase(
	txManager TransactionManager,
	holderRepo HolderRepository,
	deductionRepo DeductionRepository,
	idGen IDGenerator,
	retrier Retrier,
	recorder StatementRecorder,
) *DeductionUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}

	return &DeductionUseCase{
		txManager:     txManager,
		holderRepo:    holderRepo,
		deductionRepo: deductionRepo,
		idGen:         idGen,
		retrier:       retrier,
		recorder:      recorder,
	}
}

// CreateDeductionInput represents input for creating a deduction.
type CreateDeductionInput struct {
	EmployeeID    string
	DeductionType string
	Amount        decimal.Decimal
	Date          *time.Time
	Description   string
}

// CreateDeduction records a deduction for an employee.
func (uc *DeductionUseCase) CreateDeduction(ctx context.Context, input CreateDeductionInput) (*domain.Deduction, error) {
	deductionType, err := domain.ParseDeductionType(input.DeductionType)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	date := now
	if input.Date != nil {
		date = *input.Date
	}

	deduction := &domain.Deduction{
		ID:            uc.idGen.Generate(),
		EmployeeID:    input.EmployeeID,
		Description:   input.Description,
		DeductionType: deductionType,
		Amount:        decimal.NewNullDecimal(input.Amount),
		Date:          date,
		CreatedAt:     now,
	}

	if err := domain.ValidateDeduction(deduction); err != nil {
		return nil, err
	}

	holder, err := uc.holderRepo.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !holder.IsEmployee() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotAnEmployee, input.EmployeeID)
	}

	err = uc.retrier.Retry(ctx, func() error {
		return uc.inTx(ctx, func(ctx context.Context, tx Transaction) error {
			return uc.deductionRepo.Create(ctx, tx, deduction)
		})
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.DeductionCreated(deduction.DeductionType)

	return deduction, nil
}

// DeleteDeduction removes a deduction.
func (uc *DeductionUseCase) DeleteDeduction(ctx context.Context, id string) error {
	if _, err := uc.deductionRepo.GetByID(ctx, id); err != nil {
		return err
	}

	err := uc.retrier.Retry(ctx, func() error {
		return uc.inTx(ctx, func(ctx context.Context, tx Transaction) error {
			return uc.deductionRepo.Delete(ctx, tx, id)
		})
	})
	if err != nil {
		return err
	}

	uc.recorder.DeductionDeleted()

	return nil
}

// ListDeductions lists an employee's deductions in date order.
func (uc *DeductionUseCase) ListDeductions(ctx context.Context, employeeID string) ([]domain.Deduction, error) {
	holder, err := uc.holderRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !holder.IsEmployee() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotAnEmployee, employeeID)
	}

	return uc.deductionRepo.ListByEmployee(ctx, employeeID)
}

func (uc *DeductionUseCase) inTx(ctx context.Context, fn func(ctx context.Context, tx Transaction) error) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
