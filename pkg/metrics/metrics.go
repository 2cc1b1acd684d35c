package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors exported by the classifier service.
type Metrics struct {
	Requests            *prometheus.CounterVec // result: success, invalid, upstream_error
	Labels              *prometheus.CounterVec // anything outside Produtivo/Improdutivo is "other"
	UpstreamDuration    *prometheus.HistogramVec
	PersistenceFailure  prometheus.Counter
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "classifier_requests_total",
				Help: "Total number of classification requests by result",
			},
			[]string{"result"},
		),
		Labels: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "classifier_labels_total",
				Help: "Total number of parsed classification labels",
			},
			[]string{"label"},
		),
		UpstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "classifier_upstream_duration_seconds",
				Help:    "Generative AI call duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~50s
			},
			[]string{"status"},
		),
		PersistenceFailure: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "classifier_persistence_failures_total",
				Help: "Classifications returned to the caller but not stored",
			},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~16s
			},
			[]string{"method", "path", "status"},
		),
	}

	reg.MustRegister(m.Requests, m.Labels, m.UpstreamDuration, m.PersistenceFailure, m.HTTPRequestDuration)
	return m
}

// ObserveUpstream records the duration of a generative AI call.
func (m *Metrics) ObserveUpstream(start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.UpstreamDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
}
