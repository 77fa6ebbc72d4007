package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Person is a resident or owner registered against a unit. Charges are
// billed to the unit, so a person carries contact data only.
type Person struct {
	ID     uuid.UUID
	UnitID uuid.UUID
	Name   string // required, up to 100 characters
	Email  string // up to 100 characters
	Phone  string // up to 20 characters
}

// Validate ensures the person adheres to domain rules
func (p *Person) Validate() error {
	if p.Name == "" {
		return errors.New("person name cannot be empty")
	}

	if len(p.Name) > 100 {
		return errors.New("person name must be at most 100 characters")
	}

	if len(p.Email) > 100 {
		return errors.New("person email must be at most 100 characters")
	}

	if len(p.Phone) > 20 {
		return errors.New("person phone must be at most 20 characters")
	}

	if p.UnitID == uuid.Nil {
		return errors.New("person must be registered against a unit")
	}

	return nil
}
