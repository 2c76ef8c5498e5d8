package participant

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fkhayef/tipsplit/internal/bill"
)

// Common errors
var (
	ErrOverallocated     = errors.New("custom claims exceed the tip pool")
	ErrInvalidAllocation = errors.New("allocation produced a non-finite amount")
)

// Store is the persistence the service depends on
type Store interface {
	ListByBillID(ctx context.Context, billID int64) ([]*Participant, error)
	DeleteByBillID(ctx context.Context, billID int64) (int64, error)
	ReplaceForBill(ctx context.Context, billID int64, inputs []*bill.ParticipantInput) ([]*Participant, error)
}

// Bills looks up bills and allocates their tip
type Bills interface {
	GetByID(ctx context.Context, id int64) (*bill.Bill, error)
	Preview(ctx context.Context, id int64, inputs []*bill.ParticipantInput) (*bill.Allocation, error)
}

// Service handles participant business logic
type Service struct {
	repo   Store
	bills  Bills
	logger *zap.Logger
}

// NewService creates a new participant service
func NewService(repo Store, bills Bills, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		bills:  bills,
		logger: logger,
	}
}

// ListByBillID retrieves the participants of an existing bill
func (s *Service) ListByBillID(ctx context.Context, billID int64) ([]*Participant, error) {
	if _, err := s.bills.GetByID(ctx, billID); err != nil {
		return nil, err
	}
	return s.repo.ListByBillID(ctx, billID)
}

// DeleteByBillID removes every participant of an existing bill
func (s *Service) DeleteByBillID(ctx context.Context, billID int64) (int64, error) {
	if _, err := s.bills.GetByID(ctx, billID); err != nil {
		return 0, err
	}
	return s.repo.DeleteByBillID(ctx, billID)
}

// Replace validates and allocates the new set, then swaps it in for the bill's current participants
func (s *Service) Replace(ctx context.Context, req *ReplaceParticipantsRequest) ([]*Participant, *bill.Allocation, error) {
	for i, in := range req.Participants {
		if err := in.CheckOverride(); err != nil {
			return nil, nil, fmt.Errorf("participant %d (%s): %w", i+1, in.Name, err)
		}
	}

	allocation, err := s.bills.Preview(ctx, req.BillID, req.Participants)
	if err != nil {
		return nil, nil, err
	}

	for i, in := range req.Participants {
		if in.CurrencyID != nil && !allocation.Directory.Has(*in.CurrencyID) {
			return nil, nil, fmt.Errorf("participant %d (%s): %w %d", i+1, in.Name, bill.ErrUnknownCurrency, *in.CurrencyID)
		}
	}

	summary := allocation.Summary
	if !summary.Finite {
		return nil, nil, ErrInvalidAllocation
	}
	if summary.Overallocated {
		if !req.AllowOverallocation {
			return nil, nil, fmt.Errorf("%w: allocated %.2f of %.2f", ErrOverallocated, summary.TotalAllocated, summary.TipPool)
		}
		s.logger.Warn("saving overallocated participants",
			zap.Int64("bill_id", req.BillID),
			zap.Float64("remaining", summary.Remaining),
		)
	}

	participants, err := s.repo.ReplaceForBill(ctx, req.BillID, req.Participants)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("participants replaced",
		zap.Int64("bill_id", req.BillID),
		zap.Int("count", len(participants)),
	)

	return participants, allocation, nil
}
