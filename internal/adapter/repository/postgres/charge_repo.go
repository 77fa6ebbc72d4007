package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/condoledger-backend/internal/domain"
)

// chargeRepository implements domain.ChargeRepository
type chargeRepository struct {
	db *DB
}

// NewChargeRepository creates a new charge repository
func NewChargeRepository(db *DB) domain.ChargeRepository {
	return &chargeRepository{db: db}
}

const chargeColumns = `id, unit_id, account_id, number, installment, amount, due_date, status, paid_at`

func scanCharge(row interface{ Scan(...interface{}) error }) (*domain.Charge, error) {
	var charge domain.Charge
	var accountID sql.NullString
	var amountStr string
	var paidAt sql.NullTime

	err := row.Scan(
		&charge.ID,
		&charge.UnitID,
		&accountID,
		&charge.Number,
		&charge.Installment,
		&amountStr,
		&charge.DueDate,
		&charge.Status,
		&paidAt,
	)
	if err != nil {
		return nil, err
	}

	if accountID.Valid {
		parsed, err := uuid.Parse(accountID.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse account_id: %w", err)
		}
		charge.AccountID = &parsed
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse charge amount: %w", err)
	}
	charge.Amount = amount

	if paidAt.Valid {
		charge.PaidAt = &paidAt.Time
	}

	return &charge, nil
}

// CreateSeries persists an installment series in one database
// transaction. A failure on any installment rolls back the ones
// already written, so a series is never stored partially.
func (r *chargeRepository) CreateSeries(ctx context.Context, charges []*domain.Charge) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer dbTx.Rollback()

	for _, charge := range charges {
		if err := insertCharge(ctx, dbTx, charge); err != nil {
			return err
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrStoreUnavailable, err)
	}

	return nil
}

// insertCharge writes one charge row inside an open transaction
func insertCharge(ctx context.Context, dbTx *sql.Tx, charge *domain.Charge) error {
	query := `
		INSERT INTO charges (id, unit_id, account_id, number, installment, amount, due_date, status, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	var accountID interface{}
	if charge.AccountID != nil {
		accountID = *charge.AccountID
	}
	var paidAt interface{}
	if charge.PaidAt != nil {
		paidAt = *charge.PaidAt
	}

	_, err := dbTx.ExecContext(ctx, query,
		charge.ID,
		charge.UnitID,
		accountID,
		charge.Number,
		charge.Installment,
		charge.Amount.String(),
		charge.DueDate,
		string(charge.Status),
		paidAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert charge: %w", err)
	}

	return nil
}

// GetByID retrieves a charge by its ID
func (r *chargeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE id = $1`

	charge, err := scanCharge(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("charge %s: %w", id, domain.ErrChargeNotFound)
		}
		return nil, fmt.Errorf("failed to get charge by ID: %w", err)
	}

	return charge, nil
}

// ListByUnit retrieves the unit's charges ordered by (number, installment)
func (r *chargeRepository) ListByUnit(ctx context.Context, unitID uuid.UUID) ([]*domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE unit_id = $1 ORDER BY number, installment`

	return r.queryCharges(ctx, query, unitID)
}

// ListOverdue retrieves open charges past due at the given instant
func (r *chargeRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]*domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges
		WHERE status = $1 AND due_date < $2
		ORDER BY due_date ASC`

	return r.queryCharges(ctx, query, string(domain.ChargeStatusOpen), asOf)
}

// Settle marks the charge paid and appends the matching credit movement
// (adjusting the receiving account's cached balance) in one database
// transaction. The status predicate guards against a concurrent settle:
// if another transaction already closed the charge, this one writes
// nothing and reports ErrChargeClosed.
func (r *chargeRepository) Settle(ctx context.Context, charge *domain.Charge, movement *domain.Movement) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer dbTx.Rollback()

	query := `
		UPDATE charges
		SET status = $2, paid_at = $3, account_id = $4
		WHERE id = $1 AND status = $5
	`

	result, err := dbTx.ExecContext(ctx, query,
		charge.ID,
		string(charge.Status),
		charge.PaidAt,
		charge.AccountID,
		string(domain.ChargeStatusOpen),
	)
	if err != nil {
		return fmt.Errorf("failed to settle charge: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("charge %s: %w", charge.ID, domain.ErrChargeClosed)
	}

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

func (r *chargeRepository) queryCharges(ctx context.Context, query string, args ...interface{}) ([]*domain.Charge, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list charges: %w", err)
	}
	defer rows.Close()

	charges := make([]*domain.Charge, 0)
	for rows.Next() {
		charge, err := scanCharge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan charge: %w", err)
		}
		charges = append(charges, charge)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate charges: %w", err)
	}

	return charges, nil
}
