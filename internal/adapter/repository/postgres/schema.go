package postgres

import (
	"context"
	"fmt"
)

// schema is the idempotent DDL bootstrap. Amounts are DECIMAL columns;
// they are scanned through strings, never through float64.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS condominiums (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		address VARCHAR(200) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS blocks (
		id UUID PRIMARY KEY,
		condominium_id UUID NOT NULL REFERENCES condominiums(id),
		code VARCHAR(4) NOT NULL,
		description VARCHAR(30) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS units (
		id UUID PRIMARY KEY,
		block_id UUID NOT NULL REFERENCES blocks(id),
		code VARCHAR(10) NOT NULL,
		kind VARCHAR(20) NOT NULL,
		area DOUBLE PRECISION NOT NULL DEFAULT 0,
		ideal_fraction DOUBLE PRECISION NOT NULL DEFAULT 0,
		registry VARCHAR(30) NOT NULL DEFAULT '',
		spaces INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY,
		condominium_id UUID NOT NULL REFERENCES condominiums(id),
		kind VARCHAR(10) NOT NULL,
		description VARCHAR(50) NOT NULL,
		level INTEGER NOT NULL,
		ordinal VARCHAR(20) NOT NULL,
		parent_id UUID REFERENCES categories(id)
	)`,
	`CREATE TABLE IF NOT EXISTS accounts (
		id UUID PRIMARY KEY,
		condominium_id UUID NOT NULL REFERENCES condominiums(id),
		code VARCHAR(2) NOT NULL,
		description VARCHAR(30) NOT NULL DEFAULT '',
		kind VARCHAR(20) NOT NULL,
		initial_balance DECIMAL(14,2) NOT NULL DEFAULT 0,
		current_balance DECIMAL(14,2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS movements (
		id UUID PRIMARY KEY,
		account_id UUID NOT NULL REFERENCES accounts(id),
		amount DECIMAL(14,2) NOT NULL,
		description VARCHAR(100) NOT NULL DEFAULT '',
		category_id UUID REFERENCES categories(id),
		occurred_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transfers (
		id UUID PRIMARY KEY,
		source_account_id UUID NOT NULL REFERENCES accounts(id),
		destination_account_id UUID NOT NULL REFERENCES accounts(id),
		amount DECIMAL(14,2) NOT NULL,
		description VARCHAR(100) NOT NULL DEFAULT '',
		occurred_at TIMESTAMPTZ NOT NULL,
		debit_movement_id UUID NOT NULL REFERENCES movements(id),
		credit_movement_id UUID NOT NULL REFERENCES movements(id)
	)`,
	`CREATE TABLE IF NOT EXISTS people (
		id UUID PRIMARY KEY,
		unit_id UUID NOT NULL REFERENCES units(id),
		name VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL DEFAULT '',
		phone VARCHAR(20) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS charges (
		id UUID PRIMARY KEY,
		unit_id UUID NOT NULL REFERENCES units(id),
		account_id UUID REFERENCES accounts(id) ON DELETE SET NULL,
		number INTEGER NOT NULL,
		installment INTEGER NOT NULL,
		amount DECIMAL(14,2) NOT NULL,
		due_date DATE NOT NULL,
		status VARCHAR(10) NOT NULL,
		paid_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_account_occurred
		ON movements (account_id, occurred_at, id)`,
	`CREATE INDEX IF NOT EXISTS idx_charges_unit_number
		ON charges (unit_id, number, installment)`,
	`CREATE INDEX IF NOT EXISTS idx_people_unit
		ON people (unit_id, name)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_condominium_code
		ON accounts (condominium_id, code)`,
}

// Migrate creates all tables and indexes if they do not exist yet
func (db *DB) Migrate(ctx context.Context) error {
	for _, statement := range schema {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	return nil
}
