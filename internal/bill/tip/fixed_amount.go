package tip

// =============================================================================
// FIXED AMOUNT PASS
// Participants claiming a currency amount are converted and resolved first
// =============================================================================

// allocateFixedAmounts resolves every OverrideAmount participant and returns
// the sum of their claims in the settlement currency
func allocateFixedAmounts(results []ParticipantAllocation, tipPool float64, settlementCurrencyID int64, conv Converter) float64 {
	var total float64
	for i := range results {
		r := &results[i]
		if r.ResolvedBy != OverrideAmount {
			continue
		}

		amount, ok := conv.Convert(*r.CustomAmount, r.currencyOr(settlementCurrencyID), settlementCurrencyID)
		r.TotalAmount = amount
		r.EffectivePercent = share(amount, tipPool)
		r.UnresolvedCurrency = !ok
		total += amount
	}
	return total
}
