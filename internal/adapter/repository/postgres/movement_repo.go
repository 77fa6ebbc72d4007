package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/condoledger-backend/internal/domain"
)

// movementRepository implements domain.MovementRepository
type movementRepository struct {
	db *DB
}

// NewMovementRepository creates a new movement repository
func NewMovementRepository(db *DB) domain.MovementRepository {
	return &movementRepository{db: db}
}

// Create appends a movement and adjusts the owning account's cached
// balance in one database transaction
func (r *movementRepository) Create(ctx context.Context, movement *domain.Movement) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer dbTx.Rollback()

	if err := insertMovement(ctx, dbTx, movement); err != nil {
		return err
	}

	if err := adjustBalance(ctx, dbTx, movement.AccountID, movement.Amount); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrStoreUnavailable, err)
	}

	return nil
}

// ListByAccount retrieves the account's ledger ordered by occurrence
// time ascending, ties broken by identifier ascending
func (r *movementRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Movement, error) {
	query := `
		SELECT id, account_id, amount, description, category_id, occurred_at
		FROM movements
		WHERE account_id = $1
		ORDER BY occurred_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	defer rows.Close()

	movements := make([]*domain.Movement, 0)
	for rows.Next() {
		var movement domain.Movement
		var amountStr string
		var categoryID sql.NullString

		err := rows.Scan(
			&movement.ID,
			&movement.AccountID,
			&amountStr,
			&movement.Description,
			&categoryID,
			&movement.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse movement amount: %w", err)
		}
		movement.Amount = amount

		if categoryID.Valid {
			parsed, err := uuid.Parse(categoryID.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse category_id: %w", err)
			}
			movement.CategoryID = &parsed
		}

		movements = append(movements, &movement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movements: %w", err)
	}

	return movements, nil
}

// CountByAccount returns the number of movements on the account
func (r *movementRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM movements WHERE account_id = $1`, accountID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count movements: %w", err)
	}

	return count, nil
}

// insertMovement writes one movement row inside an open transaction
func insertMovement(ctx context.Context, dbTx *sql.Tx, movement *domain.Movement) error {
	query := `
		INSERT INTO movements (id, account_id, amount, description, category_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	var categoryID interface{}
	if movement.CategoryID != nil {
		categoryID = *movement.CategoryID
	}

	_, err := dbTx.ExecContext(ctx, query,
		movement.ID,
		movement.AccountID,
		movement.Amount.String(),
		movement.Description,
		categoryID,
		movement.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert movement: %w", err)
	}

	return nil
}

// adjustBalance shifts an account's cached balance inside an open
// transaction, keeping the cache consistent with the ledger it covers
func adjustBalance(ctx context.Context, dbTx *sql.Tx, accountID uuid.UUID, delta decimal.Decimal) error {
	query := `UPDATE accounts SET current_balance = current_balance + $2 WHERE id = $1`

	result, err := dbTx.ExecContext(ctx, query, accountID, delta.String())
	if err != nil {
		return fmt.Errorf("failed to adjust account balance: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("account %s: %w", accountID, domain.ErrAccountNotFound)
	}

	return nil
}
