package currency

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles currency data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new currency repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// List retrieves every currency ordered by ID
func (r *Repository) List(ctx context.Context) ([]*Currency, error) {
	query := `
		SELECT id, name, symbol, exchange_rate, created_at, updated_at
		FROM currencies
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	defer rows.Close()

	currencies := []*Currency{}
	for rows.Next() {
		c := &Currency{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Symbol, &c.ExchangeRate, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan currency: %w", err)
		}
		currencies = append(currencies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate currencies: %w", err)
	}

	return currencies, nil
}

// GetByID retrieves a currency by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Currency, error) {
	query := `
		SELECT id, name, symbol, exchange_rate, created_at, updated_at
		FROM currencies
		WHERE id = $1
	`

	c := &Currency{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Symbol, &c.ExchangeRate, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get currency: %w", err)
	}

	return c, nil
}

// Create inserts a new currency
func (r *Repository) Create(ctx context.Context, req *CreateCurrencyRequest) (*Currency, error) {
	query := `
		INSERT INTO currencies (name, symbol, exchange_rate)
		VALUES ($1, $2, $3)
		RETURNING id, name, symbol, exchange_rate, created_at, updated_at
	`

	c := &Currency{}
	err := r.db.QueryRowContext(ctx, query, req.Name, req.Symbol, req.ExchangeRate).
		Scan(&c.ID, &c.Name, &c.Symbol, &c.ExchangeRate, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	return c, nil
}

// UpdateRate sets a new exchange rate for a currency
func (r *Repository) UpdateRate(ctx context.Context, id int64, rate float64) (*Currency, error) {
	query := `
		UPDATE currencies
		SET exchange_rate = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, symbol, exchange_rate, created_at, updated_at
	`

	c := &Currency{}
	err := r.db.QueryRowContext(ctx, query, id, rate).
		Scan(&c.ID, &c.Name, &c.Symbol, &c.ExchangeRate, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update exchange rate: %w", err)
	}

	return c, nil
}
