package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes the service's Prometheus instruments.
type Metrics struct {
	analyzeDuration *prometheus.HistogramVec
	scansTotal      *prometheus.CounterVec
	scanFailures    prometheus.Counter
	tradesSaved     prometheus.Counter
}

// NewMetrics registers the instruments on the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		analyzeDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tradecompass_analyze_duration_seconds",
				Help:    "Duration of single-symbol analysis in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"mode"},
		),
		scansTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradecompass_scans_total",
				Help: "Total batch scans executed",
			},
			[]string{"mode"},
		),
		scanFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tradecompass_scan_symbol_failures_total",
				Help: "Symbols that failed to fetch during batch scans",
			},
		),
		tradesSaved: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tradecompass_trades_saved_total",
				Help: "Trade records written to the journal",
			},
		),
	}
}

// ObserveAnalyze records the duration of one analysis.
func (m *Metrics) ObserveAnalyze(mode string, seconds float64) {
	m.analyzeDuration.WithLabelValues(mode).Observe(seconds)
}

// CountScan records one batch scan and its per-symbol failures.
func (m *Metrics) CountScan(mode string, failures int) {
	m.scansTotal.WithLabelValues(mode).Inc()
	m.scanFailures.Add(float64(failures))
}

// CountTradeSaved records one journal insert.
func (m *Metrics) CountTradeSaved() {
	m.tradesSaved.Inc()
}
