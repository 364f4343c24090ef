package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iho/erpledger/internal/domain"
)

// StatementUseCase rebuilds account statements from the current source
// records. Nothing is cached: every call re-derives the full ledger.
type StatementUseCase struct {
	holderRepo    HolderRepository
	saleRepo      SaleRepository
	receiptRepo   ReceiptRepository
	deductionRepo DeductionRepository
	debtRepo      DebtRepository
	recorder      StatementRecorder
	now           func() time.Time
}

// NewStatementUseCase creates a new StatementUseCase. A nil recorder
// disables metrics.
func NewStatementUseCase(
	holderRepo HolderRepository,
	saleRepo SaleRepository,
	receiptRepo ReceiptRepository,
	deductionRepo DeductionRepository,
	debtRepo DebtRepository,
	recorder StatementRecorder,
) *StatementUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}

	return &StatementUseCase{
		holderRepo:    holderRepo,
		saleRepo:      saleRepo,
		receiptRepo:   receiptRepo,
		deductionRepo: deductionRepo,
		debtRepo:      debtRepo,
		recorder:      recorder,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the clock used to date records that carry no date.
func (uc *StatementUseCase) WithClock(now func() time.Time) *StatementUseCase {
	uc.now = now
	return uc
}

// Statement is a holder's ledger as of the moment it was built.
type Statement struct {
	Holder          *domain.AccountHolder
	Ledger          domain.Ledger
	OverCreditLimit bool
}

// GetStatementInput represents input for building a statement.
type GetStatementInput struct {
	HolderID string
	From     time.Time
	To       time.Time
}

// EmployeeNetResult holds an employee and its salary and debt figures.
type EmployeeNetResult struct {
	Holder *domain.AccountHolder
	Net    domain.EmployeeNet
}

// Recompute builds the full ledger of a holder.
func (uc *StatementUseCase) Recompute(ctx context.Context, holderID string) (*Statement, error) {
	holder, err := uc.holderRepo.GetByID(ctx, holderID)
	if err != nil {
		return nil, err
	}

	sources, err := uc.loadSources(ctx, holder)
	if err != nil {
		return nil, err
	}

	return uc.build(holder, sources), nil
}

// GetStatement builds a holder's ledger, optionally restricted to a date window.
func (uc *StatementUseCase) GetStatement(ctx context.Context, input GetStatementInput) (*Statement, error) {
	if err := domain.ValidateDateRange(input.From, input.To); err != nil {
		return nil, err
	}

	statement, err := uc.Recompute(ctx, input.HolderID)
	if err != nil {
		return nil, err
	}

	if !input.From.IsZero() || !input.To.IsZero() {
		statement.Ledger = statement.Ledger.Between(input.From, input.To)
		statement.OverCreditLimit = statement.Ledger.ExceedsCreditLimit(statement.Holder.CreditLimit)
	}

	return statement, nil
}

// GetEmployeeNet computes an employee's current salary and current debt.
func (uc *StatementUseCase) GetEmployeeNet(ctx context.Context, employeeID string) (*EmployeeNetResult, error) {
	holder, err := uc.holderRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if !holder.IsEmployee() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotAnEmployee, employeeID)
	}

	g, gctx := errgroup.WithContext(ctx)

	var sources domain.Sources

	g.Go(func() error {
		deductions, err := uc.deductionRepo.ListByEmployee(gctx, holder.ID)
		if err != nil {
			return fmt.Errorf("failed to load deductions: %w", err)
		}
		sources.Deductions = deductions
		return nil
	})

	g.Go(func() error {
		debts, err := uc.debtRepo.ListByDebtor(gctx, holder.ID)
		if err != nil {
			return fmt.Errorf("failed to load debts: %w", err)
		}
		sources.Debts = debts
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &EmployeeNetResult{
		Holder: holder,
		Net:    domain.BuildStatementNet(holder, sources),
	}, nil
}

func (uc *StatementUseCase) build(holder *domain.AccountHolder, sources domain.Sources) *Statement {
	start := time.Now()

	ledger := domain.BuildStatement(holder, sources, uc.now())

	uc.recorder.ObserveBuild(holder.Kind, len(ledger.Entries)-1, time.Since(start))

	return &Statement{
		Holder:          holder,
		Ledger:          ledger,
		OverCreditLimit: ledger.ExceedsCreditLimit(holder.CreditLimit),
	}
}

// loadSources fetches the source collections concurrently. The ledger is
// only built once every fetch has succeeded.
//
// Receipts can name either kind of holder. Sales are only ever issued to
// clients, and deductions and debts only to employees, so the collections
// of the other kind would always come back empty and are not queried.
func (uc *StatementUseCase) loadSources(ctx context.Context, holder *domain.AccountHolder) (domain.Sources, error) {
	g, gctx := errgroup.WithContext(ctx)

	var sources domain.Sources

	g.Go(func() error {
		receipts, err := uc.receiptRepo.ListByHolder(gctx, holder.ID)
		if err != nil {
			return fmt.Errorf("failed to load receipts: %w", err)
		}
		sources.Receipts = receipts
		return nil
	})

	if holder.IsEmployee() {
		g.Go(func() error {
			deductions, err := uc.deductionRepo.ListByEmployee(gctx, holder.ID)
			if err != nil {
				return fmt.Errorf("failed to load deductions: %w", err)
			}
			sources.Deductions = deductions
			return nil
		})

		g.Go(func() error {
			debts, err := uc.debtRepo.ListByDebtor(gctx, holder.ID)
			if err != nil {
				return fmt.Errorf("failed to load debts: %w", err)
			}
			sources.Debts = debts
			return nil
		})
	} else {
		g.Go(func() error {
			sales, err := uc.saleRepo.ListByClient(gctx, holder.ID)
			if err != nil {
				return fmt.Errorf("failed to load sales: %w", err)
			}
			sources.Sales = sales
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Sources{}, err
	}

	return sources, nil
}
