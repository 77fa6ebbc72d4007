package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/condoledger-backend/internal/domain"
)

// personRepository implements domain.PersonRepository
type personRepository struct {
	db *DB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *DB) domain.PersonRepository {
	return &personRepository{db: db}
}

const personColumns = `id, unit_id, name, email, phone`

func scanPerson(row interface{ Scan(...interface{}) error }) (*domain.Person, error) {
	var person domain.Person
	err := row.Scan(
		&person.ID,
		&person.UnitID,
		&person.Name,
		&person.Email,
		&person.Phone,
	)
	if err != nil {
		return nil, err
	}

	return &person, nil
}

// Create creates a new person
func (r *personRepository) Create(ctx context.Context, person *domain.Person) error {
	query := `
		INSERT INTO people (id, unit_id, name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		person.ID,
		person.UnitID,
		person.Name,
		person.Email,
		person.Phone,
	)
	if err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}

	return nil
}

// GetByID retrieves a person by their ID
func (r *personRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE id = $1`

	person, err := scanPerson(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("person %s: %w", id, domain.ErrPersonNotFound)
		}
		return nil, fmt.Errorf("failed to get person by ID: %w", err)
	}

	return person, nil
}

// Update persists changes to an existing person's contact data
func (r *personRepository) Update(ctx context.Context, person *domain.Person) error {
	query := `UPDATE people SET name = $2, email = $3, phone = $4 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		person.ID,
		person.Name,
		person.Email,
		person.Phone,
	)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("person %s: %w", person.ID, domain.ErrPersonNotFound)
	}

	return nil
}

// Delete removes a person
func (r *personRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM people WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("person %s: %w", id, domain.ErrPersonNotFound)
	}

	return nil
}

// ListByUnit retrieves the unit's residents ordered by name
func (r *personRepository) ListByUnit(ctx context.Context, unitID uuid.UUID) ([]*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE unit_id = $1 ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, unitID)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	people := make([]*domain.Person, 0)
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, person)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}

	return people, nil
}
