package tip

import "math"

// overallocationTolerance absorbs float noise from splitting a pool evenly,
// relative to the pool size
const overallocationTolerance = 1e-9

// Summary aggregates an allocation run against its tip pool
type Summary struct {
	TipPool            float64 `json:"tip_pool"`
	TotalAllocated     float64 `json:"total_allocated"`
	Remaining          float64 `json:"remaining"`
	Overallocated      bool    `json:"overallocated"`
	Finite             bool    `json:"finite"`
	UnresolvedCurrency bool    `json:"unresolved_currency"`
	ParticipantCount   int     `json:"participant_count"`
}

// Summarize totals allocations.
// Overallocated is set when the claims exceed the pool; it is a warning the
// caller decides how to act on, not an error.
func Summarize(tipPool float64, allocations []ParticipantAllocation) Summary {
	s := Summary{
		TipPool:          tipPool,
		Finite:           finite(tipPool),
		ParticipantCount: len(allocations),
	}
	for _, a := range allocations {
		s.TotalAllocated += a.TotalAmount
		if !finite(a.TotalAmount) || !finite(a.EffectivePercent) {
			s.Finite = false
		}
		if a.UnresolvedCurrency {
			s.UnresolvedCurrency = true
		}
	}
	s.Remaining = tipPool - s.TotalAllocated
	s.Overallocated = s.Remaining < -overallocationTolerance*math.Max(1, math.Abs(tipPool))
	return s
}

// CanCommit reports whether the allocation is safe to persist
func (s Summary) CanCommit() bool {
	return !s.Overallocated && s.Finite
}
