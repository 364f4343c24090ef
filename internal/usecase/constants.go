package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// ReconciliationPageSize is the number of holders loaded per page when
	// reconciling all holders.
	ReconciliationPageSize = 500
)
