package tip

// =============================================================================
// FIXED PERCENT PASS
// Percent claims apply to the pool left after fixed amounts, which may be negative
// =============================================================================

// allocateFixedPercents resolves every OverridePercent participant against
// tipsWithoutCustom and returns the sum allocated
func allocateFixedPercents(results []ParticipantAllocation, tipPool, tipsWithoutCustom float64) float64 {
	var total float64
	for i := range results {
		r := &results[i]
		if r.ResolvedBy != OverridePercent {
			continue
		}

		amount := tipsWithoutCustom * *r.CustomPercent
		r.TotalAmount = amount
		r.EffectivePercent = share(amount, tipPool)
		total += amount
	}
	return total
}
