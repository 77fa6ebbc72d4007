package domain

import (
	"errors"

	"github.com/google/uuid"
)

// CategoryKind represents the side of the chart a category belongs to
type CategoryKind string

const (
	CategoryKindIncome  CategoryKind = "INCOME"
	CategoryKindExpense CategoryKind = "EXPENSE"
)

// Category classifies movements into a per-condominium chart, up to four
// levels deep. Ordinal is a dotted sort key ("1", "1.2", "1.2.3") that
// keeps listings in chart order without walking the tree.
type Category struct {
	ID            uuid.UUID
	CondominiumID uuid.UUID
	Kind          CategoryKind
	Description   string // 1-50 characters
	Level         int    // 1-4; root categories are level 1
	Ordinal       string
	ParentID      *uuid.UUID // nil for root categories
}

// Validate ensures the category adheres to domain rules
func (c *Category) Validate() error {
	if c.Kind != CategoryKindIncome && c.Kind != CategoryKindExpense {
		return errors.New("category kind must be INCOME or EXPENSE")
	}

	if len(c.Description) < 1 || len(c.Description) > 50 {
		return errors.New("category description must be 1 to 50 characters")
	}

	if c.Level < 1 || c.Level > 4 {
		return errors.New("category level must be between 1 and 4")
	}

	if c.Level == 1 && c.ParentID != nil {
		return errors.New("root category cannot have a parent")
	}

	if c.Level > 1 && c.ParentID == nil {
		return errors.New("non-root category must have a parent")
	}

	if c.CondominiumID == uuid.Nil {
		return errors.New("category must belong to a condominium")
	}

	return nil
}
