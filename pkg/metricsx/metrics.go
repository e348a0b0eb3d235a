// Package metricsx holds the Prometheus collectors exported on /metrics.
//
// All methods are safe to call on a nil *Metrics so services can be built
// without a registry in tests.
package metricsx

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "clientarea"

type Metrics struct {
	registry *prometheus.Registry

	verifications   *prometheus.CounterVec
	accessesTotal   prometheus.Counter
	inconsistent    *prometheus.GaugeVec
	httpRequests    *prometheus.CounterVec
	httpRequestTime *prometheus.HistogramVec
}

// New creates a registry with the service collectors plus the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_verifications_total",
			Help:      "Access token verifications by outcome.",
		}, []string{"outcome"}),
		accessesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "client_accesses_recorded_total",
			Help:      "Client self-service accesses appended to the log.",
		}),
		inconsistent: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unique_codes_inconsistent",
			Help:      "Clients whose unique code is missing or does not embed their owner, from the last audit.",
		}, []string{"reason"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status.",
		}, []string{"route", "status"}),
		httpRequestTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.verifications,
		m.accessesTotal,
		m.inconsistent,
		m.httpRequests,
		m.httpRequestTime,
	)
	return m
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveVerification(outcome string) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveAccessRecorded() {
	if m == nil {
		return
	}
	m.accessesTotal.Inc()
}

// SetInconsistentCodes records the result of a unique code audit.
func (m *Metrics) SetInconsistentCodes(missing, mismatched int) {
	if m == nil {
		return
	}
	m.inconsistent.WithLabelValues("missing").Set(float64(missing))
	m.inconsistent.WithLabelValues("owner_mismatch").Set(float64(mismatched))
}

func (m *Metrics) observeHTTP(route string, status int, seconds float64) {
	m.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.httpRequestTime.WithLabelValues(route).Observe(seconds)
}
