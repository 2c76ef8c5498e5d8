package currency

import "time"

// Currency is an entry of the currency directory.
// ExchangeRate is a multiplier relative to an implicit base unit.
type Currency struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Symbol       string    `json:"symbol"`
	ExchangeRate float64   `json:"exchange_rate"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
