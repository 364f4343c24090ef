package refresher

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iho/erpledger/internal/usecase"
)

// ReportRefresher regenerates and stores the reconciliation report.
type ReportRefresher interface {
	RefreshReport(ctx context.Context, ttl time.Duration) (*usecase.ReconciliationReport, error)
}

// Observer is notified after every run.
type Observer interface {
	RefreshCompleted(discrepancies int, totalDrift float64, err error)
}

// Refresher periodically recomputes every holder's ledger and stores the
// resulting report.
type Refresher struct {
	reports  ReportRefresher
	observer Observer
	logger   zerolog.Logger
	interval time.Duration
	ttl      time.Duration
}

// Config for Refresher.
type Config struct {
	Reports  ReportRefresher
	Observer Observer
	Logger   *zerolog.Logger
	Interval time.Duration // Polling interval
}

// New creates a new Refresher. Stored reports live for three intervals so a
// single failed run does not leave readers without one.
func New(cfg Config) *Refresher {
	if cfg.Interval == 0 {
		cfg.Interval = 15 * time.Minute
	}

	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Refresher{
		reports:  cfg.Reports,
		observer: cfg.Observer,
		logger:   logger.With().Str("component", "refresher").Logger(),
		interval: cfg.Interval,
		ttl:      3 * cfg.Interval,
	}
}

// Start runs the refresh loop until the context is cancelled.
func (r *Refresher) Start(ctx context.Context) error {
	r.logger.Info().
		Dur("interval", r.interval).
		Msg("refresher started")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	// Refresh immediately on start
	r.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("refresher shutting down")
			return ctx.Err()
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *Refresher) runOnce(ctx context.Context) {
	start := time.Now()

	report, err := r.reports.RefreshReport(ctx, r.ttl)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.Error().Err(err).Msg("reconciliation refresh failed")
		}
		r.notify(0, 0, err)
		return
	}

	level := zerolog.InfoLevel
	if len(report.Discrepancies) > 0 {
		level = zerolog.WarnLevel
	}

	r.logger.WithLevel(level).
		Int("holders", report.TotalHolders).
		Int("discrepancies", len(report.Discrepancies)).
		Str("total_drift", report.TotalDrift.String()).
		Dur("duration", time.Since(start)).
		Msg("reconciliation refresh completed")

	r.notify(len(report.Discrepancies), report.TotalDrift.InexactFloat64(), nil)
}

func (r *Refresher) notify(discrepancies int, totalDrift float64, err error) {
	if r.observer != nil {
		r.observer.RefreshCompleted(discrepancies, totalDrift, err)
	}
}
