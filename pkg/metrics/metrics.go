// Package metrics holds the Prometheus collectors for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles every collector the service registers.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreatedTotal    prometheus.Counter
	SlotFullTotal           prometheus.Counter
	StatusTransitionsTotal  *prometheus.CounterVec
	NotificationsSentTotal  prometheus.Counter
	NotificationsFailsTotal prometheus.Counter
}

// New registers and returns the service collectors on the default registry.
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests by method, route and status code.",
			ConstLabels: labels,
		}, []string{"method", "route", "code"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by method and route.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings successfully created.",
			ConstLabels: labels,
		}),
		SlotFullTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_slot_full_total",
			Help:        "Booking attempts rejected because the slot was full.",
			ConstLabels: labels,
		}),
		StatusTransitionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_status_transitions_total",
			Help:        "Status transitions applied, by target status.",
			ConstLabels: labels,
		}, []string{"status"}),
		NotificationsSentTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "notifications_sent_total",
			Help:        "Notifications written for customers.",
			ConstLabels: labels,
		}),
		NotificationsFailsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "notifications_failed_total",
			Help:        "Notification writes that failed and were dropped.",
			ConstLabels: labels,
		}),
	}
}

// IncBookingsCreated counts a successful booking.
func (m *Metrics) IncBookingsCreated() {
	m.BookingsCreatedTotal.Inc()
}

// IncSlotFull counts a booking attempt rejected at capacity.
func (m *Metrics) IncSlotFull() {
	m.SlotFullTotal.Inc()
}

// IncStatusTransition counts a transition into the given status.
func (m *Metrics) IncStatusTransition(status string) {
	m.StatusTransitionsTotal.WithLabelValues(status).Inc()
}

// IncNotificationSent counts a stored notification.
func (m *Metrics) IncNotificationSent() {
	m.NotificationsSentTotal.Inc()
}

// IncNotificationFailed counts a dropped notification write.
func (m *Metrics) IncNotificationFailed() {
	m.NotificationsFailsTotal.Inc()
}
