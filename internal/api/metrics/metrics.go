// Package metrics defines all custom Prometheus metrics for the workflow
// backend. It is the single source of truth for metric names, labels, and
// help strings. Metrics self-register with the default registry via
// promauto; the echoprometheus middleware adds per-route HTTP metrics on
// top of these.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workflow"

// RegistrationsTotal counts successfully created user accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginAttemptsTotal counts password logins.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of password login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts bearer tokens refused by the auth gate.
// The reason label is internal-only detail; clients always see a uniform 401.
// Label:
//   - reason: "expired", "malformed", "bad_signature", "empty_subject",
//     "unknown_user", or "other"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of rejected bearer tokens, by internal reason.",
	},
	[]string{"reason"},
)

// WorkflowOperationsTotal counts completed workflow operations.
// Label:
//   - op: "create", "list", "get", "update", or "delete"
var WorkflowOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "Total number of completed workflow operations, by operation.",
	},
	[]string{"op"},
)
