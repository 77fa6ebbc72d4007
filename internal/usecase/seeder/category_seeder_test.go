package seeder

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/simaogato/condoledger-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListByCondominium(ctx context.Context, condominiumID uuid.UUID) ([]*domain.Category, error) {
	args := m.Called(ctx, condominiumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func TestCategorySeeder_Seed_EmptyChart(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCategoryRepository)
	seeder := NewCategorySeeder(mockRepo)

	condominiumID := uuid.New()

	mockRepo.On("ListByCondominium", ctx, condominiumID).Return([]*domain.Category{}, nil)

	created := make([]*domain.Category, 0)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Category")).
		Run(func(args mock.Arguments) {
			created = append(created, args.Get(1).(*domain.Category))
		}).
		Return(nil)

	err := seeder.Seed(ctx, condominiumID)

	assert.NoError(t, err)
	assert.Len(t, created, len(defaultChart))

	byOrdinal := make(map[string]*domain.Category)
	for _, category := range created {
		assert.Equal(t, condominiumID, category.CondominiumID)
		byOrdinal[category.Ordinal] = category
	}

	// Roots at level 1, children at level 2 pointing at their root
	assert.Equal(t, 1, byOrdinal["1"].Level)
	assert.Nil(t, byOrdinal["1"].ParentID)
	assert.Equal(t, 2, byOrdinal["1.1"].Level)
	assert.Equal(t, byOrdinal["1"].ID, *byOrdinal["1.1"].ParentID)
	assert.Equal(t, domain.CategoryKindExpense, byOrdinal["2.2"].Kind)
}

func TestCategorySeeder_Seed_DerivesLevelFromParent(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCategoryRepository)
	seeder := NewCategorySeeder(mockRepo)

	condominiumID := uuid.New()

	// Three levels deep: each child's level must come from its parent,
	// not from a fixed depth
	chart := []defaultCategory{
		{Kind: domain.CategoryKindIncome, Description: "Income", Ordinal: "1"},
		{Kind: domain.CategoryKindIncome, Description: "Condo fees", Ordinal: "1.1", ParentOrdinal: "1"},
		{Kind: domain.CategoryKindIncome, Description: "Late fees", Ordinal: "1.1.1", ParentOrdinal: "1.1"},
	}

	mockRepo.On("ListByCondominium", ctx, condominiumID).Return([]*domain.Category{}, nil)

	created := make([]*domain.Category, 0)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Category")).
		Run(func(args mock.Arguments) {
			created = append(created, args.Get(1).(*domain.Category))
		}).
		Return(nil)

	err := seeder.seedChart(ctx, condominiumID, chart)

	assert.NoError(t, err)
	assert.Len(t, created, 3)

	byOrdinal := make(map[string]*domain.Category)
	for _, category := range created {
		byOrdinal[category.Ordinal] = category
	}

	assert.Equal(t, 1, byOrdinal["1"].Level)
	assert.Equal(t, 2, byOrdinal["1.1"].Level)
	assert.Equal(t, 3, byOrdinal["1.1.1"].Level)
	assert.Equal(t, byOrdinal["1.1"].ID, *byOrdinal["1.1.1"].ParentID)
}

func TestCategorySeeder_Seed_AlreadySeeded(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCategoryRepository)
	seeder := NewCategorySeeder(mockRepo)

	condominiumID := uuid.New()

	existing := make([]*domain.Category, 0, len(defaultChart))
	for _, entry := range defaultChart {
		existing = append(existing, &domain.Category{
			ID:            uuid.New(),
			CondominiumID: condominiumID,
			Kind:          entry.Kind,
			Description:   entry.Description,
			Ordinal:       entry.Ordinal,
		})
	}

	mockRepo.On("ListByCondominium", ctx, condominiumID).Return(existing, nil)

	err := seeder.Seed(ctx, condominiumID)

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCategorySeeder_Seed_PartialChart(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCategoryRepository)
	seeder := NewCategorySeeder(mockRepo)

	condominiumID := uuid.New()
	incomeRootID := uuid.New()

	// Only the income root exists; everything else is missing
	mockRepo.On("ListByCondominium", ctx, condominiumID).Return([]*domain.Category{
		{
			ID:            incomeRootID,
			CondominiumID: condominiumID,
			Kind:          domain.CategoryKindIncome,
			Description:   "Income",
			Level:         1,
			Ordinal:       "1",
		},
	}, nil)

	created := make([]*domain.Category, 0)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Category")).
		Run(func(args mock.Arguments) {
			created = append(created, args.Get(1).(*domain.Category))
		}).
		Return(nil)

	err := seeder.Seed(ctx, condominiumID)

	assert.NoError(t, err)
	assert.Len(t, created, len(defaultChart)-1)

	// New children of the pre-existing root point at its ID
	for _, category := range created {
		assert.NotEqual(t, "1", category.Ordinal)
		if category.Ordinal == "1.1" {
			assert.Equal(t, incomeRootID, *category.ParentID)
		}
	}
}
