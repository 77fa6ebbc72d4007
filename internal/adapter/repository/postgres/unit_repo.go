package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/condoledger-backend/internal/domain"
)

// unitRepository implements domain.UnitRepository
type unitRepository struct {
	db *DB
}

// NewUnitRepository creates a new unit repository
func NewUnitRepository(db *DB) domain.UnitRepository {
	return &unitRepository{db: db}
}

const unitColumns = `id, block_id, code, kind, area, ideal_fraction, registry, spaces`

func scanUnit(row interface{ Scan(...interface{}) error }) (*domain.Unit, error) {
	var unit domain.Unit
	err := row.Scan(
		&unit.ID,
		&unit.BlockID,
		&unit.Code,
		&unit.Kind,
		&unit.Area,
		&unit.IdealFraction,
		&unit.Registry,
		&unit.Spaces,
	)
	if err != nil {
		return nil, err
	}

	return &unit, nil
}

// Create creates a new unit
func (r *unitRepository) Create(ctx context.Context, unit *domain.Unit) error {
	query := `
		INSERT INTO units (id, block_id, code, kind, area, ideal_fraction, registry, spaces)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		unit.ID,
		unit.BlockID,
		unit.Code,
		string(unit.Kind),
		unit.Area,
		unit.IdealFraction,
		unit.Registry,
		unit.Spaces,
	)
	if err != nil {
		return fmt.Errorf("failed to create unit: %w", err)
	}

	return nil
}

// GetByID retrieves a unit by its ID
func (r *unitRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = $1`

	unit, err := scanUnit(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("unit %s: %w", id, domain.ErrUnitNotFound)
		}
		return nil, fmt.Errorf("failed to get unit by ID: %w", err)
	}

	return unit, nil
}

// ListByBlock retrieves the block's units ordered by code
func (r *unitRepository) ListByBlock(ctx context.Context, blockID uuid.UUID) ([]*domain.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE block_id = $1 ORDER BY code`

	rows, err := r.db.QueryContext(ctx, query, blockID)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	defer rows.Close()

	units := make([]*domain.Unit, 0)
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		units = append(units, unit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate units: %w", err)
	}

	return units, nil
}
