package bill

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/fkhayef/tipsplit/internal/bill/tip"
	"github.com/fkhayef/tipsplit/internal/currency"
	"github.com/fkhayef/tipsplit/internal/metrics"
)

// Common errors
var (
	ErrBillNotFound        = errors.New("bill not found")
	ErrUnknownCurrency     = errors.New("unknown currency")
	ErrConflictingOverride = errors.New("participant cannot have both a custom percent and a custom amount")
)

// Store is the persistence the service depends on
type Store interface {
	Create(ctx context.Context, req *CreateBillRequest) (*Bill, error)
	GetByID(ctx context.Context, id int64) (*Bill, error)
	List(ctx context.Context, limit, offset int) ([]*Bill, int, error)
	Update(ctx context.Context, id int64, req *UpdateBillRequest) (*Bill, error)
	Delete(ctx context.Context, id int64) error
}

// ParticipantSource loads the stored participants of a bill as allocation inputs
type ParticipantSource interface {
	TipInputs(ctx context.Context, billID int64) ([]tip.Participant, error)
}

// DirectoryProvider returns the current currency directory
type DirectoryProvider interface {
	Directory(ctx context.Context) (*currency.Directory, error)
}

// Service handles bill business logic
type Service struct {
	repo         Store
	participants ParticipantSource
	currencies   DirectoryProvider
	logger       *zap.Logger
}

// NewService creates a new bill service
func NewService(repo Store, participants ParticipantSource, currencies DirectoryProvider, logger *zap.Logger) *Service {
	return &Service{
		repo:         repo,
		participants: participants,
		currencies:   currencies,
		logger:       logger,
	}
}

// Create creates a new bill in an existing currency
func (s *Service) Create(ctx context.Context, req *CreateBillRequest) (*Bill, error) {
	if err := s.checkCurrency(ctx, req.CurrencyID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req)
}

// GetByID retrieves a bill by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Bill, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBillNotFound
	}
	return b, nil
}

// List retrieves bills with pagination
func (s *Service) List(ctx context.Context, page, perPage int) ([]*Bill, int, error) {
	offset := (page - 1) * perPage
	return s.repo.List(ctx, perPage, offset)
}

// Update updates a bill. Changing the currency requires it to exist.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateBillRequest) (*Bill, error) {
	if req.CurrencyID != nil {
		if err := s.checkCurrency(ctx, *req.CurrencyID); err != nil {
			return nil, err
		}
	}

	b, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBillNotFound
	}
	return b, nil
}

// Delete removes a bill and its participants
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// GetWithAllocation retrieves a bill and allocates its tip over the stored participants
func (s *Service) GetWithAllocation(ctx context.Context, id int64) (*Allocation, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	participants, err := s.participants.TipInputs(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.allocate(ctx, b, participants)
}

// Preview allocates an unsaved participant list against a stored bill. Nothing is written.
func (s *Service) Preview(ctx context.Context, id int64, inputs []*ParticipantInput) (*Allocation, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	participants := make([]tip.Participant, len(inputs))
	for i, in := range inputs {
		participants[i] = in.ToTipInput(int64(i + 1))
	}

	return s.allocate(ctx, b, participants)
}

func (s *Service) allocate(ctx context.Context, b *Bill, participants []tip.Participant) (*Allocation, error) {
	dir, err := s.currencies.Directory(ctx)
	if err != nil {
		return nil, err
	}

	pool := b.TipPool()
	allocations := tip.Allocate(pool, participants, b.CurrencyID, dir)
	summary := tip.Summarize(pool, allocations)

	metrics.ObserveAllocation(summary)
	if summary.Overallocated {
		s.logger.Warn("tip pool overallocated",
			zap.Int64("bill_id", b.ID),
			zap.Float64("tip_pool", summary.TipPool),
			zap.Float64("total_allocated", summary.TotalAllocated),
		)
	}
	if summary.UnresolvedCurrency {
		s.logger.Warn("allocation used an unknown currency, rate 1 substituted", zap.Int64("bill_id", b.ID))
	}

	return &Allocation{
		Bill:         b,
		Participants: allocations,
		Summary:      summary,
		Directory:    dir,
	}, nil
}

func (s *Service) checkCurrency(ctx context.Context, id int64) error {
	dir, err := s.currencies.Directory(ctx)
	if err != nil {
		return err
	}
	if !dir.Has(id) {
		return ErrUnknownCurrency
	}
	return nil
}
