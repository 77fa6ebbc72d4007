package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/condoledger-backend/internal/domain"
)

// categoryRepository implements domain.CategoryRepository
type categoryRepository struct {
	db *DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *DB) domain.CategoryRepository {
	return &categoryRepository{db: db}
}

const categoryColumns = `id, condominium_id, kind, description, level, ordinal, parent_id`

func scanCategory(row interface{ Scan(...interface{}) error }) (*domain.Category, error) {
	var category domain.Category
	var parentID sql.NullString

	err := row.Scan(
		&category.ID,
		&category.CondominiumID,
		&category.Kind,
		&category.Description,
		&category.Level,
		&category.Ordinal,
		&parentID,
	)
	if err != nil {
		return nil, err
	}

	if parentID.Valid {
		parsed, err := uuid.Parse(parentID.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse parent_id: %w", err)
		}
		category.ParentID = &parsed
	}

	return &category, nil
}

// Create creates a new category
func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (id, condominium_id, kind, description, level, ordinal, parent_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	var parentID interface{}
	if category.ParentID != nil {
		parentID = *category.ParentID
	}

	_, err := r.db.ExecContext(ctx, query,
		category.ID,
		category.CondominiumID,
		string(category.Kind),
		category.Description,
		category.Level,
		category.Ordinal,
		parentID,
	)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// GetByID retrieves a category by its ID
func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category %s: %w", id, domain.ErrCategoryNotFound)
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return category, nil
}

// ListByCondominium retrieves the condominium's chart ordered by ordinal
func (r *categoryRepository) ListByCondominium(ctx context.Context, condominiumID uuid.UUID) ([]*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE condominium_id = $1 ORDER BY ordinal`

	rows, err := r.db.QueryContext(ctx, query, condominiumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}
