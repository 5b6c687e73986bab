package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SubmissionsTotal counts confirm attempts by outcome
	// (accepted, rejected, conflict, network_error, backend_rejection).
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txcore",
		Name:      "submissions_total",
		Help:      "Transaction submissions by outcome.",
	}, []string{"kind", "outcome"})

	// StatusEventsTotal counts status channel events by how the
	// synchronizer folded them (applied, deferred, duplicate, stale,
	// unmatched).
	StatusEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txcore",
		Name:      "status_events_total",
		Help:      "Status channel events by applied status and disposition.",
	}, []string{"status", "disposition"})

	// RateTableRefreshes counts full rate table replacements.
	RateTableRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txcore",
		Name:      "rate_table_refreshes_total",
		Help:      "Rate table refreshes by result.",
	}, []string{"result"})
)
