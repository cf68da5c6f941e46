// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CommandsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_commands_dispatched_total",
			Help: "Total number of transcripts dispatched, by classified intent",
		},
		[]string{"intent"},
	)

	CommandFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_command_failures_total",
			Help: "Total number of handler failures converted to spoken responses",
		},
		[]string{"intent", "error_code"},
	)

	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "assistant_command_duration_seconds",
			Help: "Duration of command dispatch in seconds",
		},
		[]string{"intent"},
	)

	RemoteLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_remote_lookups_total",
			Help: "Remote adapter calls by service and outcome",
		},
		[]string{"service", "outcome"},
	)
)
