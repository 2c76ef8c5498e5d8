package currency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	currencies []*Currency
	listCalls  int
	listErr    error
}

func (f *fakeStore) List(context.Context) ([]*Currency, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.currencies, nil
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*Currency, error) {
	for _, c := range f.currencies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Create(_ context.Context, req *CreateCurrencyRequest) (*Currency, error) {
	c := &Currency{
		ID:           int64(len(f.currencies) + 1),
		Name:         req.Name,
		Symbol:       req.Symbol,
		ExchangeRate: req.ExchangeRate,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.currencies = append(f.currencies, c)
	return c, nil
}

func (f *fakeStore) UpdateRate(_ context.Context, id int64, rate float64) (*Currency, error) {
	for _, c := range f.currencies {
		if c.ID == id {
			c.ExchangeRate = rate
			return c, nil
		}
	}
	return nil, nil
}

type memoryCache struct {
	data        []*Currency
	getErr      error
	invalidated int
}

func (m *memoryCache) Get(context.Context) ([]*Currency, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.data == nil {
		return nil, ErrCacheMiss
	}
	return m.data, nil
}

func (m *memoryCache) Set(_ context.Context, c []*Currency) error {
	m.data = c
	return nil
}

func (m *memoryCache) Invalidate(context.Context) error {
	m.data = nil
	m.invalidated++
	return nil
}

func seededStore() *fakeStore {
	return &fakeStore{currencies: []*Currency{
		{ID: 1, Name: "Euro", Symbol: "EUR", ExchangeRate: 1},
		{ID: 2, Name: "US Dollar", Symbol: "USD", ExchangeRate: 1.1},
	}}
}

func TestService_ListReadsThroughCache(t *testing.T) {
	store := seededStore()
	cache := &memoryCache{}
	svc := NewService(store, cache, zap.NewNop())

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	second, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.listCalls, "second call should be served from cache")
}

func TestService_ListFallsBackOnCacheError(t *testing.T) {
	store := seededStore()
	svc := NewService(store, &memoryCache{getErr: errors.New("redis down")}, zap.NewNop())

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, store.listCalls)
}

func TestService_ListPropagatesStoreError(t *testing.T) {
	svc := NewService(&fakeStore{listErr: errors.New("db down")}, nil, zap.NewNop())

	_, err := svc.List(context.Background())
	assert.Error(t, err)
}

func TestService_UpdateRateInvalidatesCache(t *testing.T) {
	store := seededStore()
	cache := &memoryCache{}
	svc := NewService(store, cache, zap.NewNop())
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.NoError(t, err)

	updated, err := svc.UpdateRate(ctx, 2, 1.2)
	require.NoError(t, err)
	assert.Equal(t, 1.2, updated.ExchangeRate)
	assert.Equal(t, 1, cache.invalidated)

	dir, err := svc.Directory(ctx)
	require.NoError(t, err)
	rate, ok := dir.Rate(2)
	assert.True(t, ok)
	assert.Equal(t, 1.2, rate)
	assert.Equal(t, 2, store.listCalls)
}

func TestService_NotFound(t *testing.T) {
	svc := NewService(seededStore(), nil, zap.NewNop())
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 99)
	assert.ErrorIs(t, err, ErrCurrencyNotFound)

	_, err = svc.UpdateRate(ctx, 99, 2)
	assert.ErrorIs(t, err, ErrCurrencyNotFound)
}

func TestService_CreateInvalidatesCache(t *testing.T) {
	store := seededStore()
	cache := &memoryCache{}
	svc := NewService(store, cache, zap.NewNop())

	c, err := svc.Create(context.Background(), &CreateCurrencyRequest{Name: "Hryvnia", Symbol: "UAH", ExchangeRate: 44})
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.ID)
	assert.Equal(t, 1, cache.invalidated)
}
