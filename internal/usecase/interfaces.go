package usecase

import (
	"context"
	"time"

	"github.com/iho/erpledger/internal/domain"
)

// HolderRepository defines data access for account holders.
type HolderRepository interface {
	GetByID(ctx context.Context, id string) (*domain.AccountHolder, error)
	List(ctx context.Context, limit, offset int) ([]*domain.AccountHolder, error)
}

// SaleRepository defines read access to sales invoices.
type SaleRepository interface {
	ListByClient(ctx context.Context, clientID string) ([]domain.Sale, error)
}

// ReceiptRepository defines read access to receipt vouchers.
type ReceiptRepository interface {
	ListByHolder(ctx context.Context, holderID string) ([]domain.ReceiptVoucher, error)
}

// DeductionRepository defines data access for employee deductions.
type DeductionRepository interface {
	Create(ctx context.Context, tx Transaction, deduction *domain.Deduction) error
	Delete(ctx context.Context, tx Transaction, id string) error
	GetByID(ctx context.Context, id string) (*domain.Deduction, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Deduction, error)
}

// DebtRepository defines read access to employee debts and their items.
type DebtRepository interface {
	ListByDebtor(ctx context.Context, debtorID string) ([]domain.Debt, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation that failed with a transient error.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a key whose request did not complete, so it can be retried.
	Release(ctx context.Context, key string) error
}

// ReportStore keeps the most recent reconciliation report.
type ReportStore interface {
	Save(ctx context.Context, report *ReconciliationReport, ttl time.Duration) error
	// Latest returns domain.ErrReportNotAvailable when nothing is stored.
	Latest(ctx context.Context) (*ReconciliationReport, error)
}

// StatementRecorder receives statement and deduction metrics.
type StatementRecorder interface {
	ObserveBuild(kind domain.HolderKind, movements int, duration time.Duration)
	ObserveReconciliation(kind domain.HolderKind, reconciled bool)
	DeductionCreated(deductionType domain.DeductionType)
	DeductionDeleted()
}

type nopRecorder struct{}

func (nopRecorder) ObserveBuild(domain.HolderKind, int, time.Duration) {}
func (nopRecorder) ObserveReconciliation(domain.HolderKind, bool)      {}
func (nopRecorder) DeductionCreated(domain.DeductionType)              {}
func (nopRecorder) DeductionDeleted()                                  {}
