package currency

// CreateCurrencyRequest represents the request to add a currency to the directory
type CreateCurrencyRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=64"`
	Symbol       string  `json:"symbol" validate:"required,min=1,max=8"`
	ExchangeRate float64 `json:"exchange_rate" validate:"required,gt=0"`
}

// UpdateRateRequest represents the request to change an exchange rate
type UpdateRateRequest struct {
	ExchangeRate float64 `json:"exchange_rate" validate:"required,gt=0"`
}

// CurrencyResponse represents the response for a currency
type CurrencyResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	ExchangeRate float64 `json:"exchange_rate"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// ToResponse converts a Currency model to a CurrencyResponse DTO
func (c *Currency) ToResponse() *CurrencyResponse {
	return &CurrencyResponse{
		ID:           c.ID,
		Name:         c.Name,
		Symbol:       c.Symbol,
		ExchangeRate: c.ExchangeRate,
		CreatedAt:    c.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:    c.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
