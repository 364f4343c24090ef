package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SQLSTATEs a deduction write can safely be replayed after.
const (
	pgErrDeadlock             = "40P01"
	pgErrSerializationFailure = "40001"
)

// Retrier implements usecase.Retrier for deduction writes. Only conflicts
// PostgreSQL resolved by aborting the transaction are retried.
type Retrier struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
	logger          zerolog.Logger
}

// NewRetrier creates a retrier allowing three replays within ten seconds.
func NewRetrier() *Retrier {
	return &Retrier{
		maxRetries:      3,
		initialInterval: 50 * time.Millisecond,
		maxInterval:     1 * time.Second,
		maxElapsedTime:  10 * time.Second,
		logger:          log.Logger,
	}
}

// WithLogger sets the logger used to report retries.
func (r *Retrier) WithLogger(logger zerolog.Logger) *Retrier {
	r.logger = logger.With().Str("component", "retrier").Logger()
	return r
}

// Retry runs operation, replaying it with exponential backoff while it fails
// with a deadlock or serialization failure.
func (r *Retrier) Retry(ctx context.Context, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = r.maxElapsedTime

	start := time.Now()
	attempt := 0

	return backoff.Retry(func() error {
		attempt++
		err := operation()
		if err == nil {
			return nil
		}

		code, ok := retryableSQLState(err)
		if !ok {
			return backoff.Permanent(err)
		}

		if attempt > r.maxRetries {
			r.logger.Error().
				Err(err).
				Str("sqlstate", code).
				Int("attempts", attempt).
				Dur("elapsed", time.Since(start)).
				Msg("write still conflicting, giving up")
			return backoff.Permanent(err)
		}

		r.logger.Warn().
			Err(err).
			Str("sqlstate", code).
			Int("retry", attempt).
			Msg("retryable database error, retrying")

		return err
	}, backoff.WithContext(b, ctx))
}

// retryableSQLState returns the SQLSTATE of err when it is worth retrying.
func retryableSQLState(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}

	switch pgErr.Code {
	case pgErrDeadlock, pgErrSerializationFailure:
		return pgErr.Code, true
	default:
		return pgErr.Code, false
	}
}
