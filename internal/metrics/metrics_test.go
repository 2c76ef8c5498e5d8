package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkhayef/tipsplit/internal/bill/tip"
)

func TestAllocationOutcome(t *testing.T) {
	tests := []struct {
		name    string
		summary tip.Summary
		want    string
	}{
		{"empty", tip.Summary{Finite: true}, OutcomeEmpty},
		{"ok", tip.Summary{ParticipantCount: 2, Finite: true}, OutcomeOK},
		{"overallocated", tip.Summary{ParticipantCount: 2, Finite: true, Overallocated: true}, OutcomeOverallocated},
		{"non-finite wins over overallocated", tip.Summary{ParticipantCount: 2, Overallocated: true}, OutcomeNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllocationOutcome(tt.summary))
		})
	}
}
