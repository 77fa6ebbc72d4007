package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/condoledger-backend/internal/domain"
)

// transferRepository implements domain.TransferRepository
type transferRepository struct {
	db *DB
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *DB) domain.TransferRepository {
	return &transferRepository{db: db}
}

// Create persists the transfer, both movement legs and both cached
// balance adjustments in one database transaction. If any statement
// fails the deferred rollback discards everything, so no partial leg is
// ever visible to other readers.
func (r *transferRepository) Create(ctx context.Context, transfer *domain.Transfer, debit, credit *domain.Movement) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer dbTx.Rollback()

	if err := insertMovement(ctx, dbTx, debit); err != nil {
		return err
	}
	if err := insertMovement(ctx, dbTx, credit); err != nil {
		return err
	}

	query := `
		INSERT INTO transfers (id, source_account_id, destination_account_id, amount,
			description, occurred_at, debit_movement_id, credit_movement_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = dbTx.ExecContext(ctx, query,
		transfer.ID,
		transfer.SourceAccountID,
		transfer.DestinationAccountID,
		transfer.Amount.String(),
		transfer.Description,
		transfer.OccurredAt,
		debit.ID,
		credit.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transfer: %w", err)
	}

	if err := adjustBalance(ctx, dbTx, debit.AccountID, debit.Amount); err != nil {
		return err
	}
	if err := adjustBalance(ctx, dbTx, credit.AccountID, credit.Amount); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrStoreUnavailable, err)
	}

	return nil
}

// CountByAccount returns the number of transfers touching the account
func (r *transferRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transfers WHERE source_account_id = $1 OR destination_account_id = $1`,
		accountID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transfers: %w", err)
	}

	return count, nil
}

// ListByAccount retrieves transfers touching the account ordered by
// occurrence time ascending
func (r *transferRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Transfer, error) {
	query := `
		SELECT id, source_account_id, destination_account_id, amount, description, occurred_at
		FROM transfers
		WHERE source_account_id = $1 OR destination_account_id = $1
		ORDER BY occurred_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	defer rows.Close()

	transfers := make([]*domain.Transfer, 0)
	for rows.Next() {
		var transfer domain.Transfer
		var amountStr string

		err := rows.Scan(
			&transfer.ID,
			&transfer.SourceAccountID,
			&transfer.DestinationAccountID,
			&amountStr,
			&transfer.Description,
			&transfer.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transfer amount: %w", err)
		}
		transfer.Amount = amount

		transfers = append(transfers, &transfer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transfers: %w", err)
	}

	return transfers, nil
}
