package collector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var fetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tradecompass_provider_fetches_total",
		Help: "Upstream market data fetches by granularity and outcome",
	},
	[]string{"granularity", "outcome"},
)

func countFetch(granularity string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	fetchesTotal.WithLabelValues(granularity, outcome).Inc()
}
