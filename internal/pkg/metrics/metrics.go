// Package metrics holds the Prometheus instruments exposed on /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	EventsPublishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supplychain_events_published_total",
			Help: "Total number of change events handed to the broker, per topic",
		},
		[]string{"topic"},
	)

	EventsDroppedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supplychain_events_dropped_total",
			Help: "Total number of change events dropped due to a full buffer or broker failure, per topic",
		},
		[]string{"topic"},
	)

	EventsRelayedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supplychain_events_relayed_total",
			Help: "Total number of broker messages relayed to notification subscribers, per topic",
		},
		[]string{"topic"},
	)

	DeliveriesCleanedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "supplychain_deliveries_cleaned_total",
			Help: "Total number of inconsistent delivery records removed by the cleanup sweep",
		},
	)

	EventSubscribersGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "supplychain_event_subscribers",
			Help: "Number of currently connected notification subscribers",
		},
	)
)

// Register registers all Prometheus metrics.
func Register() {
	prometheus.MustRegister(EventsPublishedTotal)
	prometheus.MustRegister(EventsDroppedTotal)
	prometheus.MustRegister(EventsRelayedTotal)
	prometheus.MustRegister(DeliveriesCleanedTotal)
	prometheus.MustRegister(EventSubscribersGauge)
}
