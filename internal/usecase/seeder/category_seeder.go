package seeder

import (
	"context"

	"github.com/google/uuid"
	"github.com/simaogato/condoledger-backend/internal/domain"
)

// defaultCategory defines one entry of the default chart seeded for
// every new condominium. Children reference their parent by ordinal.
type defaultCategory struct {
	Kind          domain.CategoryKind
	Description   string
	Ordinal       string
	ParentOrdinal string // empty for roots
}

// The default chart: two roots with the classification every
// condominium needs on day one. Administrators extend it per condo.
var defaultChart = []defaultCategory{
	{Kind: domain.CategoryKindIncome, Description: "Income", Ordinal: "1"},
	{Kind: domain.CategoryKindIncome, Description: "Condo fees", Ordinal: "1.1", ParentOrdinal: "1"},
	{Kind: domain.CategoryKindIncome, Description: "Reserve fund", Ordinal: "1.2", ParentOrdinal: "1"},
	{Kind: domain.CategoryKindIncome, Description: "Other income", Ordinal: "1.3", ParentOrdinal: "1"},
	{Kind: domain.CategoryKindExpense, Description: "Expenses", Ordinal: "2"},
	{Kind: domain.CategoryKindExpense, Description: "Maintenance", Ordinal: "2.1", ParentOrdinal: "2"},
	{Kind: domain.CategoryKindExpense, Description: "Utilities", Ordinal: "2.2", ParentOrdinal: "2"},
	{Kind: domain.CategoryKindExpense, Description: "Staff", Ordinal: "2.3", ParentOrdinal: "2"},
	{Kind: domain.CategoryKindExpense, Description: "Other expenses", Ordinal: "2.4", ParentOrdinal: "2"},
}

// CategorySeeder seeds the default category chart for a condominium
type CategorySeeder struct {
	repo domain.CategoryRepository
}

// NewCategorySeeder creates a new CategorySeeder instance
func NewCategorySeeder(repo domain.CategoryRepository) *CategorySeeder {
	return &CategorySeeder{
		repo: repo,
	}
}

// Seed ensures the condominium has the default chart. Existing ordinals
// are left untouched, so re-running is safe and creates no duplicates.
func (s *CategorySeeder) Seed(ctx context.Context, condominiumID uuid.UUID) error {
	return s.seedChart(ctx, condominiumID, defaultChart)
}

func (s *CategorySeeder) seedChart(ctx context.Context, condominiumID uuid.UUID, chart []defaultCategory) error {
	existing, err := s.repo.ListByCondominium(ctx, condominiumID)
	if err != nil {
		return err
	}

	byOrdinal := make(map[string]*domain.Category, len(existing))
	for _, category := range existing {
		byOrdinal[category.Ordinal] = category
	}

	for _, entry := range chart {
		if _, ok := byOrdinal[entry.Ordinal]; ok {
			continue
		}

		level := 1
		var parentID *uuid.UUID
		if entry.ParentOrdinal != "" {
			parent, ok := byOrdinal[entry.ParentOrdinal]
			if !ok {
				// the chart lists parents before children, so the
				// parent was either pre-existing or just created
				continue
			}
			parentID = &parent.ID
			level = parent.Level + 1
		}

		category := &domain.Category{
			ID:            uuid.New(),
			CondominiumID: condominiumID,
			Kind:          entry.Kind,
			Description:   entry.Description,
			Level:         level,
			Ordinal:       entry.Ordinal,
			ParentID:      parentID,
		}

		if err := category.Validate(); err != nil {
			return err
		}

		if err := s.repo.Create(ctx, category); err != nil {
			return err
		}

		byOrdinal[entry.Ordinal] = category
	}

	return nil
}
