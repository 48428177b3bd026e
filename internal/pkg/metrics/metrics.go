// Package metrics defines all custom Prometheus metrics for the BEM admin
// shell. It is the single source of truth for metric names, labels, and help
// strings. Metrics are registered with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bemshell"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "rejected", "invalid_input", or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LogoutsTotal counts logouts.
// Label:
//   - result: "ok", "failed" (backend unreachable, cleared locally), or "skipped" (no token)
var LogoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logouts, by backend invalidation result.",
	},
	[]string{"result"},
)

// SessionRestoresTotal counts session restore outcomes at startup.
// Label:
//   - result: "restored", "empty", "corrupt", or "expired"
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restores, by outcome.",
	},
	[]string{"result"},
)

// ── Background job metrics ────────────────────────────────────────────────────

// BackgroundJobsTotal counts background jobs that finished or were dropped.
// Labels:
//   - job: the job name (e.g. "device_token")
//   - result: "ok", "error", or "dropped"
var BackgroundJobsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "background_jobs_total",
		Help:      "Total number of background jobs, by name and result.",
	},
	[]string{"job", "result"},
)

// QueueDepth tracks the number of jobs waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var QueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "queue_depth",
		Help:      "Current number of jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Backend client metrics ────────────────────────────────────────────────────

// BackendRequestDuration measures round trips to the REST backend.
// Labels:
//   - code: HTTP status code
//   - method: HTTP method
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of requests to the REST backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"code", "method"},
)
