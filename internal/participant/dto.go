package participant

import (
	"github.com/fkhayef/tipsplit/internal/bill"
)

// ReplaceParticipantsRequest replaces the whole participant set of a bill
type ReplaceParticipantsRequest struct {
	BillID              int64                    `json:"bill_id" validate:"required,gt=0"`
	Participants        []*bill.ParticipantInput `json:"participants" validate:"dive,required"`
	AllowOverallocation bool                     `json:"allow_overallocation"`
}

// ParticipantResponse represents the response for a participant
type ParticipantResponse struct {
	ID            int64    `json:"id"`
	BillID        int64    `json:"bill_id"`
	Name          string   `json:"name"`
	CustomPercent *float64 `json:"custom_percent"`
	CustomAmount  *float64 `json:"custom_amount"`
	CurrencyID    *int64   `json:"currency_id"`
	CreatedAt     string   `json:"created_at"`
}

// ToResponse converts a Participant model to a ParticipantResponse DTO
func (p *Participant) ToResponse() *ParticipantResponse {
	return &ParticipantResponse{
		ID:            p.ID,
		BillID:        p.BillID,
		Name:          p.Name,
		CustomPercent: p.CustomPercent,
		CustomAmount:  p.CustomAmount,
		CurrencyID:    p.CurrencyID,
		CreatedAt:     p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func toResponses(participants []*Participant) []*ParticipantResponse {
	resp := make([]*ParticipantResponse, len(participants))
	for i, p := range participants {
		resp[i] = p.ToResponse()
	}
	return resp
}
