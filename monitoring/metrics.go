package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Store mutations by collection, operation and outcome",
		},
		[]string{"collection", "operation", "status"},
	)

	announcementsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "announcements_published_total",
			Help: "Announcements posted, by audience",
		},
		[]string{"audience"},
	)

	trackingSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracking_sessions_active",
			Help: "Performer tracking sessions currently broadcasting",
		},
	)

	logins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Logins by role",
		},
		[]string{"role"},
	)
)

func TrackStoreOperation(collection, operation, status string) {
	storeOperations.WithLabelValues(collection, operation, status).Inc()
}

func TrackAnnouncement(audience string) {
	announcementsPublished.WithLabelValues(audience).Inc()
}

func TrackLogin(role string) {
	logins.WithLabelValues(role).Inc()
}

func TrackingStarted() { trackingSessions.Inc() }
func TrackingStopped() { trackingSessions.Dec() }
