package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/erpledger/internal/domain"
)

// StatementBuilder rebuilds a holder's full ledger.
type StatementBuilder interface {
	Recompute(ctx context.Context, holderID string) (*Statement, error)
}

// ReconciliationUseCase compares cached holder balances with recomputed ledgers.
type ReconciliationUseCase struct {
	holderRepo HolderRepository
	statements StatementBuilder
	recorder   StatementRecorder
	reports    ReportStore
}

// NewReconciliationUseCase creates a new reconciliation use case
func NewReconciliationUseCase(
	holderRepo HolderRepository,
	statements StatementBuilder,
	recorder StatementRecorder,
) *ReconciliationUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}

	return &ReconciliationUseCase{
		holderRepo: holderRepo,
		statements: statements,
		recorder:   recorder,
	}
}

// WithReportStore enables RefreshReport and LatestReport.
func (uc *ReconciliationUseCase) WithReportStore(reports ReportStore) *ReconciliationUseCase {
	uc.reports = reports
	return uc
}

// ReconciliationResult represents the result of a reconciliation check
type ReconciliationResult struct {
	HolderID          string
	HolderKind        domain.HolderKind
	RecordedBalance   decimal.Decimal
	CalculatedBalance decimal.Decimal
	Difference        decimal.Decimal
	IsReconciled      bool
	LastChecked       time.Time
}

// ReconcileHolder recomputes the holder's ledger and compares its closing
// balance with the balance cached by the backend.
func (uc *ReconciliationUseCase) ReconcileHolder(ctx context.Context, holderID string) (*ReconciliationResult, error) {
	statement, err := uc.statements.Recompute(ctx, holderID)
	if err != nil {
		return nil, err
	}

	holder := statement.Holder
	difference := statement.Ledger.Drift(holder.CurrentBalance)

	uc.recorder.ObserveReconciliation(holder.Kind, difference.IsZero())

	return &ReconciliationResult{
		HolderID:          holder.ID,
		HolderKind:        holder.Kind,
		RecordedBalance:   holder.CurrentBalance,
		CalculatedBalance: statement.Ledger.Totals.Closing,
		Difference:        difference,
		IsReconciled:      difference.IsZero(),
		LastChecked:       time.Now().UTC(),
	}, nil
}

// ReconcileAllHolders reconciles every holder, page by page.
func (uc *ReconciliationUseCase) ReconcileAllHolders(ctx context.Context) ([]*ReconciliationResult, error) {
	limit, offset, _ := domain.ValidatePagination(ReconciliationPageSize, 0)

	results := make([]*ReconciliationResult, 0)
	for {
		holders, err := uc.holderRepo.List(ctx, limit, offset)
		if err != nil {
			return nil, err
		}

		for _, holder := range holders {
			result, err := uc.ReconcileHolder(ctx, holder.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to reconcile holder %s: %w", holder.ID, err)
			}
			results = append(results, result)
		}

		if len(holders) < limit {
			break
		}
		offset += limit
	}

	return results, nil
}

// ReconciliationReport represents a full reconciliation report
type ReconciliationReport struct {
	TotalHolders      int
	ReconciledHolders int
	Discrepancies     []*ReconciliationResult
	TotalDrift        decimal.Decimal
	CheckedAt         time.Time
}

// GenerateReconciliationReport generates a comprehensive reconciliation report
func (uc *ReconciliationUseCase) GenerateReconciliationReport(ctx context.Context) (*ReconciliationReport, error) {
	results, err := uc.ReconcileAllHolders(ctx)
	if err != nil {
		return nil, err
	}

	report := &ReconciliationReport{
		TotalHolders:  len(results),
		Discrepancies: make([]*ReconciliationResult, 0),
		TotalDrift:    decimal.Zero,
		CheckedAt:     time.Now().UTC(),
	}

	for _, result := range results {
		if result.IsReconciled {
			report.ReconciledHolders++
		} else {
			report.Discrepancies = append(report.Discrepancies, result)
			report.TotalDrift = report.TotalDrift.Add(result.Difference.Abs())
		}
	}

	return report, nil
}

// RefreshReport generates a new report and stores it for ttl.
func (uc *ReconciliationUseCase) RefreshReport(ctx context.Context, ttl time.Duration) (*ReconciliationReport, error) {
	report, err := uc.GenerateReconciliationReport(ctx)
	if err != nil {
		return nil, err
	}

	if uc.reports != nil {
		if err := uc.reports.Save(ctx, report, ttl); err != nil {
			return nil, fmt.Errorf("failed to store reconciliation report: %w", err)
		}
	}

	return report, nil
}

// LatestReport returns the last stored report.
func (uc *ReconciliationUseCase) LatestReport(ctx context.Context) (*ReconciliationReport, error) {
	if uc.reports == nil {
		return nil, domain.ErrReportNotAvailable
	}

	return uc.reports.Latest(ctx)
}
