package bill

import (
	"github.com/fkhayef/tipsplit/internal/bill/tip"
	"github.com/fkhayef/tipsplit/internal/currency"
	"github.com/fkhayef/tipsplit/pkg/money"
)

// CreateBillRequest represents the request to create a bill
type CreateBillRequest struct {
	Amount     float64  `json:"amount" validate:"gte=0"`
	TipPercent *float64 `json:"tip_percent,omitempty" validate:"omitempty,gte=0,lte=1"`
	CurrencyID int64    `json:"currency_id" validate:"required,gt=0"`
}

// UpdateBillRequest represents the request to update a bill.
// Nil fields are left unchanged; RemoveTip clears the tip percent.
type UpdateBillRequest struct {
	Amount     *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
	TipPercent *float64 `json:"tip_percent,omitempty" validate:"omitempty,gte=0,lte=1"`
	RemoveTip  bool     `json:"remove_tip,omitempty"`
	CurrencyID *int64   `json:"currency_id,omitempty" validate:"omitempty,gt=0"`
}

// ParticipantInput is one participant as entered by a user
type ParticipantInput struct {
	Name          string   `json:"name" validate:"required,min=1,max=255"`
	CustomPercent *float64 `json:"custom_percent,omitempty" validate:"omitempty,gte=0,lte=1"`
	CustomAmount  *float64 `json:"custom_amount,omitempty" validate:"omitempty,gte=0"`
	CurrencyID    *int64   `json:"currency_id,omitempty" validate:"omitempty,gt=0"`
}

// CheckOverride rejects a participant claiming both a percent and an amount
func (p *ParticipantInput) CheckOverride() error {
	if p.CustomPercent != nil && *p.CustomPercent > 0 && p.CustomAmount != nil && *p.CustomAmount > 0 {
		return ErrConflictingOverride
	}
	return nil
}

// ToTipInput converts to the allocation engine's input type
func (p *ParticipantInput) ToTipInput(id int64) tip.Participant {
	return tip.Participant{
		ID:            id,
		Name:          p.Name,
		CustomPercent: p.CustomPercent,
		CustomAmount:  p.CustomAmount,
		CurrencyID:    p.CurrencyID,
	}
}

// PreviewAllocationRequest allocates an unsaved participant list against a stored bill
type PreviewAllocationRequest struct {
	Participants []*ParticipantInput `json:"participants" validate:"dive,required"`
}

// BillResponse represents the response for a bill
type BillResponse struct {
	ID               int64                       `json:"id"`
	Amount           float64                     `json:"amount"`
	TipPercent       *float64                    `json:"tip_percent"`
	TipAmount        float64                     `json:"tip_amount"`
	TotalAmount      float64                     `json:"total_amount"`
	Currency         *currency.CurrencyResponse  `json:"currency,omitempty"`
	ParticipantCount int                         `json:"participant_count"`
	CreatedAt        string                      `json:"created_at"`
	UpdatedAt        string                      `json:"updated_at"`
	Participants     []*ParticipantShareResponse `json:"participants,omitempty"`
	Summary          *SummaryResponse            `json:"summary,omitempty"`
}

// ParticipantShareResponse is one participant's allocated share.
// Non-finite numbers are sent as null with valid=false.
type ParticipantShareResponse struct {
	ID                          int64            `json:"id"`
	Name                        string           `json:"name"`
	CustomPercent               *float64         `json:"custom_percent"`
	CustomAmount                *float64         `json:"custom_amount"`
	CurrencyID                  int64            `json:"currency_id"`
	TotalAmount                 *float64         `json:"total_amount"`
	EffectivePercent            *float64         `json:"effective_percent"`
	AmountInParticipantCurrency *float64         `json:"amount_in_participant_currency"`
	DisplayAmount               string           `json:"display_amount"`
	DisplayPercent              string           `json:"display_percent"`
	ResolvedBy                  tip.OverrideKind `json:"resolved_by"`
	UnresolvedCurrency          bool             `json:"unresolved_currency"`
	Valid                       bool             `json:"valid"`
}

// SummaryResponse describes how much of the tip pool is distributed
type SummaryResponse struct {
	TipPool            *float64 `json:"tip_pool"`
	TotalAllocated     *float64 `json:"total_allocated"`
	Remaining          *float64 `json:"remaining"`
	Overallocated      bool     `json:"overallocated"`
	Finite             bool     `json:"finite"`
	UnresolvedCurrency bool     `json:"unresolved_currency"`
	CanCommit          bool     `json:"can_commit"`
	ParticipantCount   int      `json:"participant_count"`
	DisplayRemaining   string   `json:"display_remaining"`
}

// ToResponse converts a Bill model to a BillResponse DTO
func (b *Bill) ToResponse() *BillResponse {
	pool := b.TipPool()
	resp := &BillResponse{
		ID:               b.ID,
		Amount:           b.Amount,
		TipPercent:       b.TipPercent,
		TipAmount:        pool,
		TotalAmount:      b.Amount + pool,
		ParticipantCount: b.ParticipantCount,
		CreatedAt:        b.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:        b.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if b.Currency != nil {
		resp.Currency = b.Currency.ToResponse()
	}
	return resp
}

// ToResponse converts an Allocation to a BillResponse with participants and summary
func (a *Allocation) ToResponse() *BillResponse {
	resp := a.Bill.ToResponse()
	resp.ParticipantCount = len(a.Participants)

	symbol := ""
	if a.Bill.Currency != nil {
		symbol = a.Bill.Currency.Symbol
	}

	resp.Participants = make([]*ParticipantShareResponse, len(a.Participants))
	for i, p := range a.Participants {
		currencyID := a.Bill.CurrencyID
		if p.CurrencyID != nil {
			currencyID = *p.CurrencyID
		}
		// Payment due in the participant's own currency
		due, _ := a.Directory.Convert(p.TotalAmount, a.Bill.CurrencyID, currencyID)

		resp.Participants[i] = &ParticipantShareResponse{
			ID:                          p.ID,
			Name:                        p.Name,
			CustomPercent:               p.CustomPercent,
			CustomAmount:                p.CustomAmount,
			CurrencyID:                  currencyID,
			TotalAmount:                 money.Nullable(p.TotalAmount),
			EffectivePercent:            money.Nullable(p.EffectivePercent),
			AmountInParticipantCurrency: money.Nullable(due),
			DisplayAmount:               money.Format(p.TotalAmount, symbol),
			DisplayPercent:              money.FormatPercent(p.EffectivePercent, 0),
			ResolvedBy:                  p.ResolvedBy,
			UnresolvedCurrency:          p.UnresolvedCurrency,
			Valid:                       money.Finite(p.TotalAmount) && money.Finite(p.EffectivePercent),
		}
	}

	s := a.Summary
	resp.Summary = &SummaryResponse{
		TipPool:            money.Nullable(s.TipPool),
		TotalAllocated:     money.Nullable(s.TotalAllocated),
		Remaining:          money.Nullable(s.Remaining),
		Overallocated:      s.Overallocated,
		Finite:             s.Finite,
		UnresolvedCurrency: s.UnresolvedCurrency,
		CanCommit:          s.CanCommit(),
		ParticipantCount:   s.ParticipantCount,
		DisplayRemaining:   money.Format(s.Remaining, symbol),
	}

	return resp
}
