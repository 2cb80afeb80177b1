// Package metrics exposes Prometheus instrumentation for the alert pipeline.
package metrics

import (
	"net/http"
	"strconv"

	"fuelradar/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fuelradar"

// Skip reasons reported by the alert evaluator.
const (
	SkipReasonUnresolved = "unresolved"
	SkipReasonNoData     = "no_data"
	SkipReasonFailed     = "failed"
)

// NewRegistry creates a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

type alertMetrics struct {
	evaluated   prometheus.Counter
	matched     prometheus.Counter
	skipped     *prometheus.CounterVec
	published   *prometheus.CounterVec
	delivered   *prometheus.CounterVec
	feedImports *prometheus.CounterVec
	stations    prometheus.Gauge
}

// NewAlertMetrics registers the alert pipeline collectors on registry.
func NewAlertMetrics(registry *prometheus.Registry) service.AlertMetrics {
	m := &alertMetrics{
		evaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_evaluated_total",
			Help:      "Active subscriptions evaluated by the alert matcher.",
		}),
		matched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_matched_total",
			Help:      "Subscriptions whose threshold was met.",
		}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_skipped_total",
			Help:      "Subscriptions that produced no notification, by reason.",
		}, []string{"reason"}),
		published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_events_published_total",
			Help:      "Alert events handed to the publisher, by result.",
		}, []string{"success"}),
		delivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_deliveries_total",
			Help:      "Alert messages sent to Telegram, by result.",
		}, []string{"success"}),
		feedImports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_imports_total",
			Help:      "Station feed refresh attempts, by result.",
		}, []string{"success"}),
		stations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stations_loaded",
			Help:      "Stations in the last successful feed import.",
		}),
	}

	registry.MustRegister(m.evaluated, m.matched, m.skipped, m.published, m.delivered, m.feedImports, m.stations)

	return m
}

func (m *alertMetrics) ObserveEvaluation(evaluated, matched, skippedUnresolved, skippedNoData, failed int) {
	m.evaluated.Add(float64(evaluated))
	m.matched.Add(float64(matched))
	m.skipped.WithLabelValues(SkipReasonUnresolved).Add(float64(skippedUnresolved))
	m.skipped.WithLabelValues(SkipReasonNoData).Add(float64(skippedNoData))
	m.skipped.WithLabelValues(SkipReasonFailed).Add(float64(failed))
}

func (m *alertMetrics) ObservePublish(success bool) {
	m.published.WithLabelValues(strconv.FormatBool(success)).Inc()
}

func (m *alertMetrics) ObserveDelivery(success bool) {
	m.delivered.WithLabelValues(strconv.FormatBool(success)).Inc()
}

func (m *alertMetrics) ObserveFeedImport(stations int, success bool) {
	m.feedImports.WithLabelValues(strconv.FormatBool(success)).Inc()
	if success {
		m.stations.Set(float64(stations))
	}
}
