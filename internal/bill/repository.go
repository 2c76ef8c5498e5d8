package bill

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fkhayef/tipsplit/internal/currency"
)

// Repository handles bill data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new bill repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectBill = `
	SELECT b.id, b.amount, b.tip_percent, b.currency_id, b.created_at, b.updated_at,
	       c.id, c.name, c.symbol, c.exchange_rate, c.created_at, c.updated_at,
	       (SELECT COUNT(*) FROM participants p WHERE p.bill_id = b.id)
	FROM bills b
	JOIN currencies c ON b.currency_id = c.id
`

type scanner interface {
	Scan(dest ...any) error
}

func scanBill(s scanner) (*Bill, error) {
	b := &Bill{Currency: &currency.Currency{}}
	err := s.Scan(
		&b.ID,
		&b.Amount,
		&b.TipPercent,
		&b.CurrencyID,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.Currency.ID,
		&b.Currency.Name,
		&b.Currency.Symbol,
		&b.Currency.ExchangeRate,
		&b.Currency.CreatedAt,
		&b.Currency.UpdatedAt,
		&b.ParticipantCount,
	)
	return b, err
}

// Create inserts a new bill into the database
func (r *Repository) Create(ctx context.Context, req *CreateBillRequest) (*Bill, error) {
	query := `
		INSERT INTO bills (amount, tip_percent, currency_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	if err := r.db.QueryRowContext(ctx, query, req.Amount, req.TipPercent, req.CurrencyID).Scan(&id); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a bill with its currency and participant count
func (r *Repository) GetByID(ctx context.Context, id int64) (*Bill, error) {
	query := selectBill + ` WHERE b.id = $1`

	b, err := scanBill(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	return b, nil
}

// List retrieves bills, newest first
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*Bill, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bills`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bills: %w", err)
	}

	query := selectBill + ` ORDER BY b.created_at DESC, b.id DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	bills := []*Bill{}
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate bills: %w", err)
	}

	return bills, total, nil
}

// Update updates a bill's amount, tip percent and currency
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateBillRequest) (*Bill, error) {
	query := `
		UPDATE bills
		SET amount = COALESCE($2, amount),
		    tip_percent = CASE WHEN $5 THEN NULL ELSE COALESCE($3, tip_percent) END,
		    currency_id = COALESCE($4, currency_id),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updated int64
	err := r.db.QueryRowContext(ctx, query, id, req.Amount, req.TipPercent, req.CurrencyID, req.RemoveTip).Scan(&updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}

	return r.GetByID(ctx, updated)
}

// Delete deletes a bill; its participants go with it
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrBillNotFound
	}

	return nil
}
