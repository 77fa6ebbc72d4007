package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/condoledger-backend/internal/domain"
)

// accountRepository implements domain.AccountRepository
type accountRepository struct {
	db *DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *DB) domain.AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `id, condominium_id, code, description, kind, initial_balance, current_balance`

func scanAccount(row interface{ Scan(...interface{}) error }) (*domain.Account, error) {
	var account domain.Account
	var initialStr, currentStr string

	err := row.Scan(
		&account.ID,
		&account.CondominiumID,
		&account.Code,
		&account.Description,
		&account.Kind,
		&initialStr,
		&currentStr,
	)
	if err != nil {
		return nil, err
	}

	initial, err := decimal.NewFromString(initialStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse initial_balance: %w", err)
	}
	current, err := decimal.NewFromString(currentStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse current_balance: %w", err)
	}

	account.InitialBalance = initial
	account.CurrentBalance = current

	return &account, nil
}

// Create creates a new account
func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (id, condominium_id, code, description, kind, initial_balance, current_balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.CondominiumID,
		account.Code,
		account.Description,
		string(account.Kind),
		account.InitialBalance.String(),
		account.CurrentBalance.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetByID retrieves an account by its ID
func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", id, domain.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to get account by ID: %w", err)
	}

	return account, nil
}

// Update persists changes to an account's descriptive fields.
// Balance columns are deliberately excluded: only movements, transfers
// and UpdateBalance touch them.
func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	query := `
		UPDATE accounts
		SET code = $2, description = $3, kind = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.Code,
		account.Description,
		string(account.Kind),
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("account %s: %w", account.ID, domain.ErrAccountNotFound)
	}

	return nil
}

// UpdateBalance persists a recomputed cached balance
func (r *accountRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	query := `UPDATE accounts SET current_balance = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, balance.String())
	if err != nil {
		return fmt.Errorf("failed to update account balance: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("account %s: %w", id, domain.ErrAccountNotFound)
	}

	return nil
}

// Delete removes an account that has no dependent records
func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("account %s: %w", id, domain.ErrAccountNotFound)
	}

	return nil
}

// DeleteCascade removes an account together with its dependent records
// in one database transaction. Transfers touching the account are
// removed with both of their movement legs, so the two-movements-per-
// transfer invariant holds for the records that remain, and surviving
// counterpart accounts get their cached balances adjusted for the legs
// they lose.
func (r *accountRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer dbTx.Rollback()

	// Counterpart legs on surviving accounts are about to disappear
	// from their ledgers, so back their amounts out of the cached
	// balances before the legs are deleted
	adjustCounterparts := `
		UPDATE accounts a
		SET current_balance = a.current_balance - legs.delta
		FROM (
			SELECT mv.account_id, SUM(mv.amount) AS delta
			FROM movements mv
			WHERE mv.account_id <> $1 AND mv.id IN (
				SELECT debit_movement_id FROM transfers
				WHERE source_account_id = $1 OR destination_account_id = $1
				UNION
				SELECT credit_movement_id FROM transfers
				WHERE source_account_id = $1 OR destination_account_id = $1
			)
			GROUP BY mv.account_id
		) legs
		WHERE a.id = legs.account_id
	`

	// Transfers go next because they reference their movement legs;
	// the CTE removes each transfer and both of its legs together
	deleteTransfers := `
		WITH removed AS (
			DELETE FROM transfers
			WHERE source_account_id = $1 OR destination_account_id = $1
			RETURNING debit_movement_id, credit_movement_id
		)
		DELETE FROM movements WHERE id IN (
			SELECT debit_movement_id FROM removed
			UNION
			SELECT credit_movement_id FROM removed
		)
	`

	statements := []string{
		adjustCounterparts,
		deleteTransfers,
		`DELETE FROM movements WHERE account_id = $1`,
		`DELETE FROM accounts WHERE id = $1`,
	}

	for _, statement := range statements {
		if _, err := dbTx.ExecContext(ctx, statement, id); err != nil {
			return fmt.Errorf("failed to cascade delete account: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrStoreUnavailable, err)
	}

	return nil
}

// ListByCondominium retrieves the condominium's accounts ordered by code
func (r *accountRepository) ListByCondominium(ctx context.Context, condominiumID uuid.UUID) ([]*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE condominium_id = $1 ORDER BY code`

	rows, err := r.db.QueryContext(ctx, query, condominiumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}
