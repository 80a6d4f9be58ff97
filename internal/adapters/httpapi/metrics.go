// internal/adapters/httpapi/metrics.go
package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"phishscan/internal/core/domain"
	perrors "phishscan/internal/platform/errors"
)

// Metrics holds the collectors of one server on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	classifications *prometheus.CounterVec
	failures        *prometheus.CounterVec
	latency         prometheus.Histogram
	requests        *prometheus.CounterVec
}

// NewMetrics creates and registers the server collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "phishscan",
			Name:      "classifications_total",
			Help:      "URLs classified, by prediction.",
		}, []string{"prediction"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "phishscan",
			Name:      "errors_total",
			Help:      "Rejected or failed submissions, by error kind.",
		}, []string{"kind"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "phishscan",
			Name:      "classification_duration_seconds",
			Help:      "Time spent classifying one URL.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "phishscan",
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method and status code.",
		}, []string{"method", "code"}),
	}

	m.registry.MustRegister(
		m.classifications,
		m.failures,
		m.latency,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeResult(c domain.Classification, took time.Duration) {
	m.classifications.WithLabelValues(string(c)).Inc()
	m.latency.Observe(took.Seconds())
}

func (m *Metrics) observeError(kind perrors.Kind) {
	m.failures.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) observeRequest(method string, code int) {
	m.requests.WithLabelValues(method, strconv.Itoa(code)).Inc()
}
