package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReminderEmailsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminder_emails_total",
			Help: "Total number of reminder emails dispatched",
		},
		[]string{"status"}, // status: sent, failed, mocked
	)

	EmailSendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "email_send_duration_seconds",
			Help:    "Duration of a single email send call",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
		},
	)

	ConfirmationTokensCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "confirmation_tokens_created_total",
			Help: "Total number of confirmation tokens minted",
		},
	)

	ConfirmationResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confirmation_responses_total",
			Help: "Total number of RSVP responses recorded",
		},
		[]string{"action"}, // action: confirm, decline
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)
)

// RecordEmailSend increments the dispatch counter and observes duration.
func RecordEmailSend(status string, duration time.Duration) {
	ReminderEmailsTotal.WithLabelValues(status).Inc()
	EmailSendDuration.Observe(duration.Seconds())
}

// RecordHTTPRequestDuration records latency per route and status.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
