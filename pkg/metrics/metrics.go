// Package metrics registers the Prometheus metrics exported by callcost.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/quibble-ai/callcost/pkg/models"
)

var (
	// EstimatesTotal counts computed estimates by surface ("http", "mcp",
	// "cli", "tui") and model.
	EstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "callcost_estimates_total",
			Help: "Total number of cost estimates computed.",
		},
		[]string{"surface", "model"},
	)

	// ReportsTotal counts generated downloadable reports by surface.
	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "callcost_reports_total",
			Help: "Total number of plain-text reports generated.",
		},
		[]string{"surface"},
	)

	// ValidationFailures counts inputs rejected at the input boundary.
	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "callcost_validation_failures_total",
			Help: "Total number of estimate inputs rejected by range checks.",
		},
		[]string{"surface"},
	)

	// EstimatedMonthlyCost observes the total monthly cost of each estimate.
	EstimatedMonthlyCost = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "callcost_estimated_monthly_cost_usd",
			Help:    "Distribution of estimated total monthly cost in USD.",
			Buckets: []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		},
	)
)

// ObserveEstimate records a successful estimate.
func ObserveEstimate(surface string, res models.EstimateResult) {
	EstimatesTotal.WithLabelValues(surface, res.Model).Inc()
	EstimatedMonthlyCost.Observe(res.TotalCost.InexactFloat64())
}
