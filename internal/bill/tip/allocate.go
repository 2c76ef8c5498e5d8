package tip

// Allocate distributes tipPool across participants.
//
// Passes run in a fixed order and the order decides precedence:
//   - fixed amounts are converted into the settlement currency and claimed first
//   - fixed percents take their share of what the fixed amounts left over
//   - everyone else splits the remainder evenly, never going below zero
//
// The result has one entry per participant, in input order. Allocate never
// clamps or rescales claims that exceed the pool; use Summarize to detect that.
func Allocate(tipPool float64, participants []Participant, settlementCurrencyID int64, conv Converter) []ParticipantAllocation {
	results := make([]ParticipantAllocation, len(participants))
	for i, p := range participants {
		results[i] = ParticipantAllocation{
			Participant: p,
			ResolvedBy:  p.Override(),
		}
	}

	// Nothing to hand out: everyone stays at zero
	if tipPool == 0 || len(results) == 0 {
		return results
	}

	if conv == nil {
		conv = Identity
	}

	customAmountTotal := allocateFixedAmounts(results, tipPool, settlementCurrencyID, conv)
	tipsWithoutCustom := tipPool - customAmountTotal

	customPercentTotal := allocateFixedPercents(results, tipPool, tipsWithoutCustom)

	allocateEvenly(results, tipPool, tipPool-customAmountTotal-customPercentTotal)

	return results
}
