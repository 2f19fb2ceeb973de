// Package metrics defines and registers the custom Prometheus metrics for the
// soldiers API. It is the single source of truth for metric names and help
// strings; registration happens automatically via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "soldiers"

// SoldiersCreatedTotal counts successfully created soldier records.
var SoldiersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "created_total",
	Help:      "Total number of soldier records created.",
})

// SoldiersUpdatedTotal counts successful partial updates, including
// limitation appends.
var SoldiersUpdatedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "updated_total",
	Help:      "Total number of soldier records updated.",
})

// SoldiersDeletedTotal counts successfully deleted soldier records.
var SoldiersDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "deleted_total",
	Help:      "Total number of soldier records deleted.",
})

// SoldierQueriesTotal counts successful list queries.
var SoldierQueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "queries_total",
	Help:      "Total number of soldier list queries served.",
})
