package currency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/tipsplit/internal/bill/tip"
)

func testDirectory() *Directory {
	return NewDirectory([]*Currency{
		{ID: 1, Name: "Euro", Symbol: "EUR", ExchangeRate: 1},
		{ID: 2, Name: "US Dollar", Symbol: "USD", ExchangeRate: 1.08},
		{ID: 3, Name: "Hryvnia", Symbol: "UAH", ExchangeRate: 44.7},
		{ID: 4, Name: "Broken", Symbol: "XXX", ExchangeRate: 0},
	})
}

func TestDirectory_Rate(t *testing.T) {
	d := testDirectory()

	rate, ok := d.Rate(2)
	assert.True(t, ok)
	assert.Equal(t, 1.08, rate)

	rate, ok = d.Rate(42)
	assert.False(t, ok)
	assert.Equal(t, 1.0, rate)
}

func TestDirectory_Convert(t *testing.T) {
	d := testDirectory()

	tests := []struct {
		name   string
		amount float64
		from   int64
		to     int64
		want   float64
		wantOK bool
	}{
		{name: "same currency", amount: 30, from: 1, to: 1, want: 30, wantOK: true},
		{name: "base to usd", amount: 100, from: 1, to: 2, want: 108, wantOK: true},
		{name: "usd to base", amount: 108, from: 2, to: 1, want: 100, wantOK: true},
		{name: "usd to uah", amount: 10.8, from: 2, to: 3, want: 447, wantOK: true},
		{name: "unknown source defaults to base", amount: 50, from: 42, to: 2, want: 54, wantOK: false},
		{name: "unknown target defaults to base", amount: 108, from: 2, to: 42, want: 100, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.Convert(tt.amount, tt.from, tt.to)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestDirectory_RoundTrip(t *testing.T) {
	d := testDirectory()
	ids := []int64{1, 2, 3, 42}

	for _, a := range []float64{0, 0.01, 1, 17.35, 1234.5678, 1e6} {
		for _, x := range ids {
			for _, y := range ids {
				there, _ := d.Convert(a, x, y)
				back, _ := d.Convert(there, y, x)
				assert.InDelta(t, a, back, 1e-9*math.Max(1, a), "a=%v x=%d y=%d", a, x, y)
			}
		}
	}
}

func TestDirectory_ZeroRateIsNonFinite(t *testing.T) {
	d := testDirectory()

	got, ok := d.Convert(10, 4, 1)
	assert.True(t, ok)
	assert.True(t, math.IsInf(got, 1))
}

func TestDirectory_IsSnapshot(t *testing.T) {
	src := []*Currency{{ID: 1, ExchangeRate: 2}}
	d := NewDirectory(src)
	src[0].ExchangeRate = 5

	rate, _ := d.Rate(1)
	assert.Equal(t, 2.0, rate)
}

func TestDirectory_DrivesAllocation(t *testing.T) {
	d := testDirectory()
	amount := 21.6 // USD, 20 EUR
	usd := int64(2)

	got := tip.Allocate(100, []tip.Participant{
		{ID: 1, CustomAmount: &amount, CurrencyID: &usd},
		{ID: 2},
	}, 1, d)

	require.Len(t, got, 2)
	assert.InDelta(t, 20, got[0].TotalAmount, 1e-9)
	assert.InDelta(t, 80, got[1].TotalAmount, 1e-9)
	assert.False(t, got[0].UnresolvedCurrency)
}
