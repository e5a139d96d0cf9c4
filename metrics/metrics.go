// Package metrics provides Prometheus instruments for the work-time service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the custom prometheus registry for the service.
var Registry = prometheus.NewRegistry()

// factory registers metrics on Registry directly.
var factory = promauto.With(Registry)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// =============================================================================
// HTTP
// =============================================================================

// HTTPRequestsTotal counts requests by route pattern, method and status.
var HTTPRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "worktime",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "HTTP requests by route, method and status code",
}, []string{"route", "method", "status"})

// HTTPRequestDuration tracks request latency by route pattern.
var HTTPRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "worktime",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by route",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
}, []string{"route"})

// =============================================================================
// CALCULATOR
// =============================================================================

// ReportsTotal counts computed reports.
var ReportsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "worktime",
	Name:      "reports_total",
	Help:      "Reports computed",
})

// PreconditionFailuresTotal counts queries answered with a missing
// configuration, by field.
var PreconditionFailuresTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "worktime",
	Name:      "precondition_failures_total",
	Help:      "Queries that failed because a configuration value was not set",
}, []string{"field"})

// LedgerDaysRecorded counts days appended to the ledgers by kind.
var LedgerDaysRecorded = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "worktime",
	Name:      "ledger_days_recorded_total",
	Help:      "Vacation and sick days recorded",
}, []string{"kind"})

// WorkingDaysQueryDuration tracks calendar working-day counts.
var WorkingDaysQueryDuration = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "worktime",
	Subsystem: "calendar",
	Name:      "working_days_duration_seconds",
	Help:      "Time taken to count working days",
	Buckets:   []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
})

// Handler serves Registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordMissing counts every field in missing.
func RecordMissing(missing []string) {
	for _, field := range missing {
		PreconditionFailuresTotal.WithLabelValues(field).Inc()
	}
}
