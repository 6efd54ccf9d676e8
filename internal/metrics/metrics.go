package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the candidate registry and its HTTP surface.
type Metrics struct {
	CandidatesCreated  prometheus.Counter
	CandidatesReplaced prometheus.Counter
	CandidatesDeleted  prometheus.Counter
	RegistrySize       prometheus.Gauge
	RegistryErrors     *prometheus.CounterVec

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates a Metrics instance registered against reg.
// A nil reg uses the default Prometheus registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		CandidatesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "recruitment_candidates_created_total",
			Help: "Total number of candidates created",
		}),
		CandidatesReplaced: factory.NewCounter(prometheus.CounterOpts{
			Name: "recruitment_candidates_replaced_total",
			Help: "Total number of candidates replaced",
		}),
		CandidatesDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "recruitment_candidates_deleted_total",
			Help: "Total number of candidates deleted",
		}),
		RegistrySize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "recruitment_registry_candidates",
			Help: "Number of candidates currently held in the registry",
		}),
		RegistryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "recruitment_registry_errors_total",
			Help: "Registry operations that failed, by operation and reason",
		}, []string{"operation", "reason"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "recruitment_http_requests_total",
			Help: "HTTP requests handled, by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "recruitment_http_request_duration_seconds",
			Help:    "Duration of HTTP requests, by method and route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
	}
}

// IncrementCreated records a successful candidate creation
func (m *Metrics) IncrementCreated() {
	m.CandidatesCreated.Inc()
}

// IncrementReplaced records a successful candidate replacement
func (m *Metrics) IncrementReplaced() {
	m.CandidatesReplaced.Inc()
}

// IncrementDeleted records a successful candidate deletion
func (m *Metrics) IncrementDeleted() {
	m.CandidatesDeleted.Inc()
}

// SetRegistrySize records the current number of candidates
func (m *Metrics) SetRegistrySize(n int) {
	m.RegistrySize.Set(float64(n))
}

// RecordError records a failed registry operation
func (m *Metrics) RecordError(operation, reason string) {
	m.RegistryErrors.WithLabelValues(operation, reason).Inc()
}

// ObserveHTTPRequest records a completed HTTP request and how long it took
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
