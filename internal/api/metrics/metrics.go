// Package metrics defines and registers all custom Prometheus metrics for
// the client registry API. It is the single source of truth for metric
// names, labels, and help strings. Metrics use promauto, so importing the
// package registers them with the default Prometheus registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "registry"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registration attempts.
// Label:
//   - result: "success", "invalid_document", "conflict", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of account registration attempts, labelled by result.",
	},
	[]string{"result"},
)

// PasswordResetsTotal counts credential reset attempts.
// Label:
//   - result: "success", "invalid_document", "not_found", or "error"
var PasswordResetsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_total",
		Help:      "Total number of credential reset attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Client registry metrics ───────────────────────────────────────────────────

// ClientsCreatedTotal counts newly created client records.
// Label:
//   - document_kind: "cpf" or "cnpj"
var ClientsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_created_total",
		Help:      "Total number of client records created, by document kind.",
	},
	[]string{"document_kind"},
)

// ClientSearchesTotal counts admin search requests that were authorized
// and carried a usable term.
var ClientSearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_searches_total",
		Help:      "Total number of executed client searches.",
	},
)

// ClientDeletesTotal counts deletion attempts.
// Label:
//   - result: "success", "forbidden", "not_found", or "error"
var ClientDeletesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_deletes_total",
		Help:      "Total number of client deletion attempts, labelled by result.",
	},
	[]string{"result"},
)
