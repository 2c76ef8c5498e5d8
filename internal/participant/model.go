package participant

import (
	"time"

	"github.com/fkhayef/tipsplit/internal/bill/tip"
)

// Participant is one person sharing a bill's tip.
// CurrencyID is the currency CustomAmount is entered in; nil means the bill's currency.
type Participant struct {
	ID            int64     `json:"id"`
	BillID        int64     `json:"bill_id"`
	Name          string    `json:"name"`
	CustomPercent *float64  `json:"custom_percent,omitempty"`
	CustomAmount  *float64  `json:"custom_amount,omitempty"`
	CurrencyID    *int64    `json:"currency_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToTipInput converts to the allocation engine's input type
func (p *Participant) ToTipInput() tip.Participant {
	return tip.Participant{
		ID:            p.ID,
		Name:          p.Name,
		CustomPercent: p.CustomPercent,
		CustomAmount:  p.CustomAmount,
		CurrencyID:    p.CurrencyID,
	}
}
