package store

import "github.com/prometheus/client_golang/prometheus"

var (
	setsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "propd",
			Subsystem: "store",
			Name:      "sets_total",
			Help:      "Total number of committed writes",
		},
	)

	notificationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "propd",
			Subsystem: "store",
			Name:      "notifications_total",
			Help:      "Total number of hook invocations triggered by writes",
		},
	)

	hooksActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "propd",
			Subsystem: "store",
			Name:      "hooks_active",
			Help:      "Registered hooks across all properties and the change feed (refreshed on store activity)",
		},
	)

	revision = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "propd",
			Subsystem: "store",
			Name:      "revision",
			Help:      "Current store-wide revision",
		},
	)
)

func init() {
	prometheus.MustRegister(setsTotal, notificationsTotal, hooksActive, revision)
}
