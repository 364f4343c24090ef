package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/erpledger/internal/domain"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	LedgerBuilds        *prometheus.CounterVec
	LedgerBuildDuration *prometheus.HistogramVec
	LedgerMovements     *prometheus.HistogramVec

	// Reconciliation metrics
	Reconciliations    *prometheus.CounterVec
	RefreshRuns        *prometheus.CounterVec
	RefreshDiscrepancy prometheus.Gauge
	RefreshTotalDrift  prometheus.Gauge

	// Deduction metrics
	DeductionsCreated *prometheus.CounterVec
	DeductionsDeleted prometheus.Counter
}

// New creates and registers all Prometheus metrics on the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates all Prometheus metrics and registers them on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Ledger metrics
		LedgerBuilds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "erpledger_ledger_builds_total",
				Help: "Total number of ledgers rebuilt, by holder kind",
			},
			[]string{"kind"},
		),
		LedgerBuildDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "erpledger_ledger_build_duration_seconds",
				Help:    "Duration of ledger rebuilds including source loading",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		LedgerMovements: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "erpledger_ledger_movements",
				Help:    "Number of movements folded per ledger build",
				Buckets: []float64{0, 10, 50, 100, 500, 1000, 5000, 10000},
			},
			[]string{"kind"},
		),

		// Reconciliation metrics
		Reconciliations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "erpledger_reconciliations_total",
				Help: "Total holder reconciliations by holder kind and result",
			},
			[]string{"kind", "result"},
		),
		RefreshRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "erpledger_refresh_runs_total",
				Help: "Total background reconciliation runs by outcome",
			},
			[]string{"status"},
		),
		RefreshDiscrepancy: factory.NewGauge(prometheus.GaugeOpts{
			Name: "erpledger_refresh_discrepancies",
			Help: "Number of holders out of balance in the last background run",
		}),
		RefreshTotalDrift: factory.NewGauge(prometheus.GaugeOpts{
			Name: "erpledger_refresh_total_drift",
			Help: "Sum of absolute balance drift in the last background run",
		}),

		// Deduction metrics
		DeductionsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "erpledger_deductions_created_total",
				Help: "Total deductions created by type",
			},
			[]string{"type"},
		),
		DeductionsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "erpledger_deductions_deleted_total",
			Help: "Total deductions deleted",
		}),
	}
}

// ObserveBuild records one ledger rebuild.
func (m *Metrics) ObserveBuild(kind domain.HolderKind, movements int, duration time.Duration) {
	m.LedgerBuilds.WithLabelValues(string(kind)).Inc()
	m.LedgerBuildDuration.WithLabelValues(string(kind)).Observe(duration.Seconds())
	m.LedgerMovements.WithLabelValues(string(kind)).Observe(float64(movements))
}

// ObserveReconciliation counts one holder check. Per-holder drift is served
// by the reconciliation endpoint, not exported as a series.
func (m *Metrics) ObserveReconciliation(kind domain.HolderKind, reconciled bool) {
	result := "drift"
	if reconciled {
		result = "reconciled"
	}
	m.Reconciliations.WithLabelValues(string(kind), result).Inc()
}

// DeductionCreated counts a created deduction.
func (m *Metrics) DeductionCreated(deductionType domain.DeductionType) {
	m.DeductionsCreated.WithLabelValues(string(deductionType)).Inc()
}

// DeductionDeleted counts a deleted deduction.
func (m *Metrics) DeductionDeleted() {
	m.DeductionsDeleted.Inc()
}

// RefreshCompleted records the outcome of a background reconciliation run.
func (m *Metrics) RefreshCompleted(discrepancies int, totalDrift float64, err error) {
	if err != nil {
		m.RefreshRuns.WithLabelValues("error").Inc()
		return
	}

	m.RefreshRuns.WithLabelValues("ok").Inc()
	m.RefreshDiscrepancy.Set(float64(discrepancies))
	m.RefreshTotalDrift.Set(totalDrift)
}
