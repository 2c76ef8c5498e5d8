package bill

import (
	"time"

	"github.com/fkhayef/tipsplit/internal/bill/tip"
	"github.com/fkhayef/tipsplit/internal/currency"
)

// Bill represents a bill whose tip is shared among participants.
// Amount is in the bill's currency, which is also the settlement currency of its tip.
type Bill struct {
	ID         int64     `json:"id"`
	Amount     float64   `json:"amount"`
	TipPercent *float64  `json:"tip_percent,omitempty"` // fraction, nil when no tip
	CurrencyID int64     `json:"currency_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Populated via JOIN
	Currency         *currency.Currency `json:"currency,omitempty"`
	ParticipantCount int                `json:"participant_count"`
}

// TipPool returns the bill's tip amount in its own currency
func (b *Bill) TipPool() float64 {
	return tip.Pool(b.Amount, b.TipPercent)
}

// Allocation is the tip allocation of a bill at a point in time
type Allocation struct {
	Bill         *Bill
	Participants []tip.ParticipantAllocation
	Summary      tip.Summary

	// Directory used for the run; converts results back into participant currencies
	Directory *currency.Directory
}
