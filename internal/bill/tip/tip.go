package tip

import "math"

// OverrideKind identifies how a participant's share of the tip pool is decided
type OverrideKind string

const (
	OverrideNone    OverrideKind = "NONE"
	OverrideAmount  OverrideKind = "AMOUNT"
	OverridePercent OverrideKind = "PERCENT"
)

// Participant is one person sharing the tip pool.
// Nil pointers mean the value was not provided. A nil CurrencyID means the
// custom amount is already in the settlement currency.
type Participant struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	CustomPercent *float64 `json:"custom_percent,omitempty"` // fraction of the pool in [0,1]
	CustomAmount  *float64 `json:"custom_amount,omitempty"`  // denominated in CurrencyID
	CurrencyID    *int64   `json:"currency_id,omitempty"`
}

// Override resolves which override the participant carries.
// A positive custom amount wins over a positive custom percent.
func (p Participant) Override() OverrideKind {
	if positive(p.CustomAmount) {
		return OverrideAmount
	}
	if positive(p.CustomPercent) {
		return OverridePercent
	}
	return OverrideNone
}

// currencyOr returns the participant's currency, or fallback when unset
func (p Participant) currencyOr(fallback int64) int64 {
	if p.CurrencyID == nil {
		return fallback
	}
	return *p.CurrencyID
}

// ParticipantAllocation is the computed share for one participant
type ParticipantAllocation struct {
	Participant
	TotalAmount        float64      `json:"total_amount"` // settlement currency
	EffectivePercent   float64      `json:"effective_percent"`
	ResolvedBy         OverrideKind `json:"resolved_by"`
	UnresolvedCurrency bool         `json:"unresolved_currency"`
}

// Converter converts an amount between two currencies.
// ok is false when a rate had to be defaulted because a currency id is unknown.
type Converter interface {
	Convert(amount float64, fromID, toID int64) (converted float64, ok bool)
}

// ConverterFunc adapts a plain conversion function to Converter.
// Every conversion through it is reported as resolved.
type ConverterFunc func(amount float64, fromID, toID int64) float64

// Convert calls f
func (f ConverterFunc) Convert(amount float64, fromID, toID int64) (float64, bool) {
	return f(amount, fromID, toID), true
}

// Identity is a Converter for bills where every amount is already in the settlement currency
var Identity = ConverterFunc(func(amount float64, _, _ int64) float64 { return amount })

// Pool returns the tip pool of a bill: billAmount * tipPercent, or 0 without a tip percent
func Pool(billAmount float64, tipPercent *float64) float64 {
	if tipPercent == nil {
		return 0
	}
	return billAmount * *tipPercent
}

func positive(v *float64) bool {
	return v != nil && *v > 0
}

// share expresses amount as a fraction of the pool
func share(amount, tipPool float64) float64 {
	if tipPool == 0 {
		return 0
	}
	return amount / tipPool
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
