package participant

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fkhayef/tipsplit/internal/bill"
	"github.com/fkhayef/tipsplit/internal/bill/tip"
)

// Repository handles participant data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new participant repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ListByBillID retrieves the participants of a bill in insertion order
func (r *Repository) ListByBillID(ctx context.Context, billID int64) ([]*Participant, error) {
	query := `
		SELECT id, bill_id, name, custom_percent, custom_amount, currency_id, created_at
		FROM participants
		WHERE bill_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	participants := []*Participant{}
	for rows.Next() {
		p := &Participant{}
		if err := rows.Scan(
			&p.ID,
			&p.BillID,
			&p.Name,
			&p.CustomPercent,
			&p.CustomAmount,
			&p.CurrencyID,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}

// TipInputs loads a bill's participants as allocation inputs
func (r *Repository) TipInputs(ctx context.Context, billID int64) ([]tip.Participant, error) {
	participants, err := r.ListByBillID(ctx, billID)
	if err != nil {
		return nil, err
	}

	inputs := make([]tip.Participant, len(participants))
	for i, p := range participants {
		inputs[i] = p.ToTipInput()
	}
	return inputs, nil
}

// DeleteByBillID removes every participant of a bill and returns how many were removed
func (r *Repository) DeleteByBillID(ctx context.Context, billID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM participants WHERE bill_id = $1`, billID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete participants: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

// ReplaceForBill deletes a bill's participants and inserts the new set in one transaction
func (r *Repository) ReplaceForBill(ctx context.Context, billID int64, inputs []*bill.ParticipantInput) ([]*Participant, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM participants WHERE bill_id = $1`, billID); err != nil {
		return nil, fmt.Errorf("failed to delete participants: %w", err)
	}

	query := `
		INSERT INTO participants (bill_id, name, custom_percent, custom_amount, currency_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, bill_id, name, custom_percent, custom_amount, currency_id, created_at
	`

	participants := make([]*Participant, 0, len(inputs))
	for _, in := range inputs {
		p := &Participant{}
		err := tx.QueryRowContext(ctx, query,
			billID,
			in.Name,
			in.CustomPercent,
			in.CustomAmount,
			in.CurrencyID,
		).Scan(
			&p.ID,
			&p.BillID,
			&p.Name,
			&p.CustomPercent,
			&p.CustomAmount,
			&p.CurrencyID,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create participant: %w", err)
		}
		participants = append(participants, p)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit participants: %w", err)
	}

	return participants, nil
}
