// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rejection reasons for entry submissions.
const (
	ReasonInvalidInviteCode    = "invalid_invite_code"
	ReasonMissingRequiredField = "missing_required_field"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	entriesSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ipe_entries_submitted_total",
			Help: "Total number of research entries published",
		},
	)

	entrySubmissionsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ipe_entry_submissions_rejected_total",
			Help: "Entry submissions rejected before storage, by reason",
		},
		[]string{"reason"},
	)

	usersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ipe_users_registered_total",
			Help: "Total number of researcher accounts created",
		},
	)

	reactionsToggledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ipe_reactions_toggled_total",
			Help: "Like and save toggles, by kind and resulting state",
		},
		[]string{"kind", "state"}, // state: on | off
	)
)

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, path, status string, durationSeconds float64) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
}

// RecordEntrySubmitted records a stored entry.
func RecordEntrySubmitted() {
	entriesSubmittedTotal.Inc()
}

// RecordSubmissionRejected records a submission refused for reason.
func RecordSubmissionRejected(reason string) {
	entrySubmissionsRejectedTotal.WithLabelValues(reason).Inc()
}

// RecordUserRegistered records a new account.
func RecordUserRegistered() {
	usersRegisteredTotal.Inc()
}

// RecordReactionToggled records a like/save toggle.
func RecordReactionToggled(kind string, active bool) {
	state := "off"
	if active {
		state = "on"
	}
	reactionsToggledTotal.WithLabelValues(kind, state).Inc()
}
