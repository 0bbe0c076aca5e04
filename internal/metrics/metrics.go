// Package metrics defines the Prometheus metrics of the format service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Failure reasons
const (
	ReasonInvalidRadix   = "invalid_radix"
	ReasonMalformedValue = "malformed_value"
	ReasonOutOfRange     = "out_of_range"
	ReasonInvalidPayload = "invalid_payload"
	ReasonBatchTooLarge  = "batch_too_large"
	ReasonInternal       = "internal"
)

// Metrics holds all Prometheus metrics of the format service
type Metrics struct {
	Conversions    *prometheus.CounterVec // labels: radix
	Failures       *prometheus.CounterVec // labels: reason
	BatchSize      prometheus.Histogram
	StreamSessions prometheus.Gauge
}

// New creates all metrics and registers them with reg.
// Metrics are left unregistered if reg is nil.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ntoa_conversions_total",
			Help: "Total integers converted to text",
		}, []string{"radix"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ntoa_failures_total",
			Help: "Total rejected conversion requests",
		}, []string{"reason"}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ntoa_batch_size",
			Help:    "Number of values per batch request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		StreamSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ntoa_stream_sessions",
			Help: "Currently open websocket conversion sessions",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			m.Conversions,
			m.Failures,
			m.BatchSize,
			m.StreamSessions,
		)
	}
	return m
}
