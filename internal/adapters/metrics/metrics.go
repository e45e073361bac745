package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorldsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "galaxy_worlds_submitted_total",
		Help: "The total number of submitted worlds",
	})

	ModerationDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "galaxy_moderation_decisions_total",
		Help: "Moderation actions by outcome",
	}, []string{"decision"})

	ContributionsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "galaxy_contributions_added_total",
		Help: "The total number of contributions appended to open worlds",
	})

	PendingWorlds = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "galaxy_pending_worlds",
		Help: "Worlds awaiting review at the last reminder check",
	})

	DiscordAPIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "discord_api_request_duration_seconds",
		Help:    "Duration of Discord REST API requests made by the identity provider",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "status"})

	DiscordAPIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discord_api_requests_total",
		Help: "Total number of Discord REST API requests made by the identity provider",
	}, []string{"endpoint", "status"})

	DiscordMessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discord_messages_sent_total",
		Help: "Total number of Discord messages sent",
	}, []string{"channel_type", "status"})

	DiscordCommands = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "galaxy_discord_commands_total",
		Help: "Slash command and autocomplete interactions by outcome",
	}, []string{"command", "outcome"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "galaxy_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "galaxy_http_requests_inflight",
		Help: "HTTP requests currently being served",
	})

	HTTPRequestErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "galaxy_http_request_errors_total",
		Help: "HTTP requests that ended with a 4xx or 5xx status",
	}, []string{"method", "path", "status"})
)
