package currency

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/fkhayef/tipsplit/internal/metrics"
)

// Common errors
var (
	ErrCurrencyNotFound = errors.New("currency not found")
)

// Store is the persistence the service depends on
type Store interface {
	List(ctx context.Context) ([]*Currency, error)
	GetByID(ctx context.Context, id int64) (*Currency, error)
	Create(ctx context.Context, req *CreateCurrencyRequest) (*Currency, error)
	UpdateRate(ctx context.Context, id int64, rate float64) (*Currency, error)
}

// Service handles currency directory business logic
type Service struct {
	repo   Store
	cache  Cache
	logger *zap.Logger
}

// NewService creates a new currency service. A nil cache disables caching.
func NewService(repo Store, cache Cache, logger *zap.Logger) *Service {
	if cache == nil {
		cache = NopCache{}
	}
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List returns the whole directory, reading through the cache
func (s *Service) List(ctx context.Context) ([]*Currency, error) {
	cached, err := s.cache.Get(ctx)
	switch {
	case err == nil:
		metrics.ObserveCurrencyCache(metrics.CacheHit)
		return cached, nil
	case errors.Is(err, ErrCacheMiss):
		metrics.ObserveCurrencyCache(metrics.CacheMiss)
	default:
		metrics.ObserveCurrencyCache(metrics.CacheError)
		s.logger.Warn("currency cache read failed, falling back to database", zap.Error(err))
	}

	currencies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, currencies); err != nil {
		s.logger.Warn("currency cache write failed", zap.Error(err))
	}

	return currencies, nil
}

// Directory returns a conversion snapshot of the current directory
func (s *Service) Directory(ctx context.Context) (*Directory, error) {
	currencies, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewDirectory(currencies), nil
}

// GetByID retrieves a currency by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Currency, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCurrencyNotFound
	}
	return c, nil
}

// Create adds a currency and drops the cached directory
func (s *Service) Create(ctx context.Context, req *CreateCurrencyRequest) (*Currency, error) {
	c, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.logger.Info("currency created",
		zap.Int64("currency_id", c.ID),
		zap.String("symbol", c.Symbol),
		zap.Float64("exchange_rate", c.ExchangeRate))
	return c, nil
}

// UpdateRate changes an exchange rate and drops the cached directory
func (s *Service) UpdateRate(ctx context.Context, id int64, rate float64) (*Currency, error) {
	c, err := s.repo.UpdateRate(ctx, id, rate)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCurrencyNotFound
	}
	s.invalidate(ctx)

	s.logger.Info("exchange rate updated",
		zap.Int64("currency_id", c.ID),
		zap.Float64("exchange_rate", c.ExchangeRate))
	return c, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("currency cache invalidation failed", zap.Error(err))
	}
}
