package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// DocumentsComputedTotal counts totals computations by document kind and tax mode.
	DocumentsComputedTotal *prometheus.CounterVec
	// ComputeDuration records totals engine latency in milliseconds by tax mode.
	ComputeDuration *prometheus.HistogramVec
	// RateLookupsTotal counts cross-rate lookups by outcome (hit, miss, identity).
	RateLookupsTotal *prometheus.CounterVec
	// MoneyFormatTotal counts money formatting calls by symbol placement branch.
	MoneyFormatTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		DocumentsComputedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_computed_total",
			Help:      "Count of document totals computations by kind and tax mode.",
		}, []string{"kind", "mode"})
		ComputeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compute_duration_ms",
			Help:      "Latency of document totals computations in milliseconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
		}, []string{"mode"})
		RateLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_lookups_total",
			Help:      "Count of currency cross-rate lookups by outcome.",
		}, []string{"result"})
		MoneyFormatTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "money_format_total",
			Help:      "Count of money formatting calls by symbol placement.",
		}, []string{"placement"})
		reg.MustRegister(DocumentsComputedTotal, ComputeDuration, RateLookupsTotal, MoneyFormatTotal)
	})
}
