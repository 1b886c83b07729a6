package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ClientMetrics covers the outbound side: backend API calls and status poll
// ticks. It plugs into the API client as a request observer and into the
// watch use case as a poll observer.
type ClientMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	pollTotal       *prometheus.CounterVec
}

func NewClientMetrics(service string) *ClientMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docbridge",
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Total backend API requests by operation and outcome.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
		[]string{"operation", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docbridge",
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "Backend API request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
		[]string{"operation"},
	)
	pollTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docbridge",
			Subsystem: "poll",
			Name:      "ticks_total",
			Help:      "Total status poll ticks by outcome.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
		[]string{"outcome"},
	)

	registry.MustRegister(requestTotal, requestDuration, pollTotal)

	return &ClientMetrics{
		registry:        registry,
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		pollTotal:       pollTotal,
	}
}

func (m *ClientMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest implements the API client's request observer.
func (m *ClientMetrics) ObserveRequest(operation string, statusCode int, duration time.Duration, err error) {
	status := strconv.Itoa(statusCode)
	if err != nil && statusCode == 0 {
		status = "error"
	}
	m.requestTotal.WithLabelValues(operation, status).Inc()
	m.requestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObservePoll implements the watch use case's poll observer.
func (m *ClientMetrics) ObservePoll(ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "failed"
	}
	m.pollTotal.WithLabelValues(outcome).Inc()
}
