// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fkhayef/tipsplit/internal/bill/tip"
)

// Allocation outcomes
const (
	OutcomeOK            = "ok"
	OutcomeOverallocated = "overallocated"
	OutcomeNonFinite     = "non_finite"
	OutcomeEmpty         = "empty"
)

// Currency cache results
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	allocationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tipsplit_allocations_total",
		Help: "Tip allocation runs by outcome.",
	}, []string{"outcome"})

	allocationParticipants = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tipsplit_allocation_participants",
		Help:    "Number of participants per tip allocation run.",
		Buckets: []float64{1, 2, 3, 4, 6, 8, 12, 20, 50},
	})

	currencyCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tipsplit_currency_cache_total",
		Help: "Currency directory cache lookups by result.",
	}, []string{"result"})
)

// AllocationOutcome classifies a summary for the allocations counter
func AllocationOutcome(s tip.Summary) string {
	switch {
	case s.ParticipantCount == 0:
		return OutcomeEmpty
	case !s.Finite:
		return OutcomeNonFinite
	case s.Overallocated:
		return OutcomeOverallocated
	default:
		return OutcomeOK
	}
}

// ObserveAllocation records one allocation run
func ObserveAllocation(s tip.Summary) {
	allocationsTotal.WithLabelValues(AllocationOutcome(s)).Inc()
	allocationParticipants.Observe(float64(s.ParticipantCount))
}

// ObserveCurrencyCache records one cache lookup
func ObserveCurrencyCache(result string) {
	currencyCacheTotal.WithLabelValues(result).Inc()
}
