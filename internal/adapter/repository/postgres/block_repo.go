package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/condoledger-backend/internal/domain"
)

// blockRepository implements domain.BlockRepository
type blockRepository struct {
	db *DB
}

// NewBlockRepository creates a new block repository
func NewBlockRepository(db *DB) domain.BlockRepository {
	return &blockRepository{db: db}
}

// Create creates a new block
func (r *blockRepository) Create(ctx context.Context, block *domain.Block) error {
	query := `INSERT INTO blocks (id, condominium_id, code, description) VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query,
		block.ID,
		block.CondominiumID,
		block.Code,
		block.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create block: %w", err)
	}

	return nil
}

// GetByID retrieves a block by its ID
func (r *blockRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Block, error) {
	query := `SELECT id, condominium_id, code, description FROM blocks WHERE id = $1`

	var block domain.Block
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&block.ID,
		&block.CondominiumID,
		&block.Code,
		&block.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("block %s: %w", id, domain.ErrBlockNotFound)
		}
		return nil, fmt.Errorf("failed to get block by ID: %w", err)
	}

	return &block, nil
}

// ListByCondominium retrieves the condominium's blocks ordered by code
func (r *blockRepository) ListByCondominium(ctx context.Context, condominiumID uuid.UUID) ([]*domain.Block, error) {
	query := `SELECT id, condominium_id, code, description FROM blocks WHERE condominium_id = $1 ORDER BY code`

	rows, err := r.db.QueryContext(ctx, query, condominiumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}
	defer rows.Close()

	blocks := make([]*domain.Block, 0)
	for rows.Next() {
		var block domain.Block
		err := rows.Scan(&block.ID, &block.CondominiumID, &block.Code, &block.Description)
		if err != nil {
			return nil, fmt.Errorf("failed to scan block: %w", err)
		}
		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate blocks: %w", err)
	}

	return blocks, nil
}
