package tip

// =============================================================================
// EVEN SPLIT PASS
// Participants without an override share whatever is left of the pool
// =============================================================================

// allocateEvenly splits remainingTips among OverrideNone participants.
// An overdrawn or non-finite remainder gives each of them zero.
func allocateEvenly(results []ParticipantAllocation, tipPool, remainingTips float64) {
	var count int
	for _, r := range results {
		if r.ResolvedBy == OverrideNone {
			count++
		}
	}
	if count == 0 || !(remainingTips > 0) {
		return
	}

	amountPer := remainingTips / float64(count)
	eff := share(amountPer, tipPool)
	for i := range results {
		if results[i].ResolvedBy != OverrideNone {
			continue
		}
		results[i].TotalAmount = amountPer
		results[i].EffectivePercent = eff
	}
}
