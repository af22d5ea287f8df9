// Package metrics registers the service's Prometheus collectors on the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ParcelsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "logitrack_parcels_created_total",
		Help: "Total number of parcels successfully booked.",
	})

	StatusTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logitrack_status_transitions_total",
		Help: "Total number of committed status transitions, by target status.",
	},
		[]string{"status"},
	)

	TransitionRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logitrack_transition_rejections_total",
		Help: "Total number of status updates rejected by the transition policy, by policy.",
	},
		[]string{"policy"},
	)

	TrackingIDCollisionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "logitrack_tracking_id_collisions_total",
		Help: "Total number of parcel inserts retried after a tracking id clash.",
	})

	NotificationsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "logitrack_notifications_recorded_total",
		Help: "Total number of notifications recorded.",
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "logitrack_notification_failures_total",
		Help: "Total number of notifications that could not be recorded on first attempt.",
	})

	NotificationsDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "logitrack_notifications_dropped_total",
		Help: "Total number of notifications dropped because the retry buffer was full.",
	})

	NotificationRetryBuffer = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "logitrack_notification_retry_buffer_items",
		Help: "Current number of notifications waiting to be retried.",
	})

	EventsPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "logitrack_events_published_total",
		Help: "Total number of parcel events published to the broker.",
	})

	EventPublishErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "logitrack_event_publish_errors_total",
		Help: "Total number of parcel events the broker did not accept.",
	})

	ParcelsByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "logitrack_parcels_by_status",
		Help: "Current number of parcels in each status.",
	},
		[]string{"status"},
	)
)
