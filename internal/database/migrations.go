package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema creates the tables on startup. Currencies come first because bills and participants reference them.
const schema = `
CREATE TABLE IF NOT EXISTS currencies (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    symbol VARCHAR(10) NOT NULL UNIQUE,
    exchange_rate DOUBLE PRECISION NOT NULL CHECK (exchange_rate > 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS bills (
    id BIGSERIAL PRIMARY KEY,
    amount DOUBLE PRECISION NOT NULL CHECK (amount >= 0),
    tip_percent DOUBLE PRECISION CHECK (tip_percent >= 0 AND tip_percent <= 1),
    currency_id BIGINT NOT NULL REFERENCES currencies(id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS participants (
    id BIGSERIAL PRIMARY KEY,
    bill_id BIGINT NOT NULL REFERENCES bills(id) ON DELETE CASCADE,
    name VARCHAR(255) NOT NULL,
    custom_percent DOUBLE PRECISION CHECK (custom_percent >= 0 AND custom_percent <= 1),
    custom_amount DOUBLE PRECISION CHECK (custom_amount >= 0),
    currency_id BIGINT REFERENCES currencies(id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_bills_currency_id ON bills(currency_id);
CREATE INDEX IF NOT EXISTS idx_participants_bill_id ON participants(bill_id);
`

// The base currency every exchange rate is relative to
const seedBaseCurrency = `
INSERT INTO currencies (name, symbol, exchange_rate)
SELECT 'Euro', 'EUR', 1
WHERE NOT EXISTS (SELECT 1 FROM currencies)
`

// Migrate creates the schema if needed and seeds the base currency into an empty directory
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, seedBaseCurrency); err != nil {
		return fmt.Errorf("failed to seed currencies: %w", err)
	}
	return nil
}
