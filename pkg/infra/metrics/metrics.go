// Package metrics exposes Prometheus metrics of webhook handling
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricNamespace = "gitlab_slack_notifier"

const (
	eventsMetricName   = "events_total"
	deliveryMetricName = "delivery_duration_seconds"
)

const (
	objectKindLabel = "object_kind"
	statusLabel     = "status"
	resultLabel     = "result"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

// Collector records handled events and delivery latency. A nil *Collector
// discards every observation.
type Collector struct {
	gatherer prometheus.Gatherer
	events   *prometheus.CounterVec
	delivery *prometheus.HistogramVec
}

// New registers the metrics to reg. Registering twice to the same registry
// panics, so call it once per registry.
func New(reg *prometheus.Registry) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		gatherer: reg,
		events: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricNamespace,
				Name:      eventsMetricName,
				Help:      "count of handled gitlab webhook events",
			},
			[]string{objectKindLabel, statusLabel},
		),
		delivery: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricNamespace,
				Name:      deliveryMetricName,
				Help:      "latency of slack message delivery",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{resultLabel},
		),
	}
}

// ObserveEvent counts one handled payload. objectKind is empty when the
// payload could not be parsed.
func (m *Collector) ObserveEvent(objectKind, status string) {
	if m == nil {
		return
	}
	if objectKind == "" {
		objectKind = "unknown"
	}
	m.events.WithLabelValues(objectKind, status).Inc()
}

func (m *Collector) ObserveDelivery(elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	result := resultSuccess
	if err != nil {
		result = resultFailure
	}
	m.delivery.WithLabelValues(result).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format
func (m *Collector) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
