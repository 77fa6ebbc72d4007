package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Condominium is the top-level aggregate: accounts, categories and
// blocks all hang off one condominium.
type Condominium struct {
	ID      uuid.UUID
	Name    string // required, up to 100 characters
	Address string // up to 200 characters
}

// Validate ensures the condominium adheres to domain rules
func (c *Condominium) Validate() error {
	if c.Name == "" {
		return errors.New("condominium name cannot be empty")
	}

	if len(c.Name) > 100 {
		return errors.New("condominium name must be at most 100 characters")
	}

	if len(c.Address) > 200 {
		return errors.New("condominium address must be at most 200 characters")
	}

	return nil
}

// Block groups units inside a condominium ("Tower A", "Block 2")
type Block struct {
	ID            uuid.UUID
	CondominiumID uuid.UUID
	Code          string // 1-4 characters
	Description   string // up to 30 characters
}

// Validate ensures the block adheres to domain rules
func (b *Block) Validate() error {
	if len(b.Code) < 1 || len(b.Code) > 4 {
		return errors.New("block code must be 1 to 4 characters")
	}

	if len(b.Description) > 30 {
		return errors.New("block description must be at most 30 characters")
	}

	if b.CondominiumID == uuid.Nil {
		return errors.New("block must belong to a condominium")
	}

	return nil
}

// UnitKind represents the type of dwelling
type UnitKind string

const (
	UnitKindApartment UnitKind = "APARTMENT"
	UnitKindHouse     UnitKind = "HOUSE"
	UnitKindShop      UnitKind = "SHOP"
	UnitKindLot       UnitKind = "LOT"
)

// Unit is a billable dwelling inside a block. IdealFraction is the
// unit's share of common expenses as registered in the deed.
type Unit struct {
	ID            uuid.UUID
	BlockID       uuid.UUID
	Code          string // 1-10 characters, e.g. "101", "A-12"
	Kind          UnitKind
	Area          float64
	IdealFraction float64
	Registry      string // land-registry number
	Spaces        int    // parking spaces
}

// Validate ensures the unit adheres to domain rules
func (u *Unit) Validate() error {
	if len(u.Code) < 1 || len(u.Code) > 10 {
		return errors.New("unit code must be 1 to 10 characters")
	}

	switch u.Kind {
	case UnitKindApartment, UnitKindHouse, UnitKindShop, UnitKindLot:
	default:
		return errors.New("unit kind must be APARTMENT, HOUSE, SHOP or LOT")
	}

	if u.IdealFraction < 0 || u.IdealFraction > 1 {
		return errors.New("unit ideal fraction must be between 0 and 1")
	}

	if u.BlockID == uuid.Nil {
		return errors.New("unit must belong to a block")
	}

	return nil
}
