package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/condoledger-backend/internal/domain"
)

// condominiumRepository implements domain.CondominiumRepository
type condominiumRepository struct {
	db *DB
}

// NewCondominiumRepository creates a new condominium repository
func NewCondominiumRepository(db *DB) domain.CondominiumRepository {
	return &condominiumRepository{db: db}
}

// Create creates a new condominium
func (r *condominiumRepository) Create(ctx context.Context, condominium *domain.Condominium) error {
	query := `INSERT INTO condominiums (id, name, address) VALUES ($1, $2, $3)`

	_, err := r.db.ExecContext(ctx, query, condominium.ID, condominium.Name, condominium.Address)
	if err != nil {
		return fmt.Errorf("failed to create condominium: %w", err)
	}

	return nil
}

// GetByID retrieves a condominium by its ID
func (r *condominiumRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Condominium, error) {
	query := `SELECT id, name, address FROM condominiums WHERE id = $1`

	var condominium domain.Condominium
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&condominium.ID,
		&condominium.Name,
		&condominium.Address,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("condominium %s: %w", id, domain.ErrCondominiumNotFound)
		}
		return nil, fmt.Errorf("failed to get condominium by ID: %w", err)
	}

	return &condominium, nil
}
