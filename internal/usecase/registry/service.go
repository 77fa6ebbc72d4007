package registry

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/condoledger-backend/internal/domain"
)

// CategorySeeder seeds the default chart for a newly created condominium
type CategorySeeder interface {
	Seed(ctx context.Context, condominiumID uuid.UUID) error
}

// RegistryService handles condominium, block, unit and category bookkeeping
type RegistryService struct {
	CondominiumRepo domain.CondominiumRepository
	BlockRepo       domain.BlockRepository
	UnitRepo        domain.UnitRepository
	CategoryRepo    domain.CategoryRepository
	PersonRepo      domain.PersonRepository
	Seeder          CategorySeeder // optional; nil skips chart seeding
}

// NewRegistryService creates a new RegistryService instance
func NewRegistryService(
	condominiumRepo domain.CondominiumRepository,
	blockRepo domain.BlockRepository,
	unitRepo domain.UnitRepository,
	categoryRepo domain.CategoryRepository,
	personRepo domain.PersonRepository,
	seeder CategorySeeder,
) *RegistryService {
	return &RegistryService{
		CondominiumRepo: condominiumRepo,
		BlockRepo:       blockRepo,
		UnitRepo:        unitRepo,
		CategoryRepo:    categoryRepo,
		PersonRepo:      personRepo,
		Seeder:          seeder,
	}
}

// CreateCondominium creates a condominium and seeds its default
// income/expense chart
func (s *RegistryService) CreateCondominium(ctx context.Context, name, address string) (*domain.Condominium, error) {
	condominium := &domain.Condominium{
		ID:      uuid.New(),
		Name:    name,
		Address: address,
	}

	if err := condominium.Validate(); err != nil {
		return nil, err
	}

	if err := s.CondominiumRepo.Create(ctx, condominium); err != nil {
		return nil, err
	}

	if s.Seeder != nil {
		if err := s.Seeder.Seed(ctx, condominium.ID); err != nil {
			return nil, fmt.Errorf("seeding categories: %w", err)
		}
	}

	return condominium, nil
}

// GetCondominium retrieves a condominium by ID
func (s *RegistryService) GetCondominium(ctx context.Context, id uuid.UUID) (*domain.Condominium, error) {
	return s.CondominiumRepo.GetByID(ctx, id)
}

// CreateBlock creates a block inside an existing condominium
func (s *RegistryService) CreateBlock(ctx context.Context, condominiumID uuid.UUID, code, description string) (*domain.Block, error) {
	if _, err := s.CondominiumRepo.GetByID(ctx, condominiumID); err != nil {
		return nil, err
	}

	block := &domain.Block{
		ID:            uuid.New(),
		CondominiumID: condominiumID,
		Code:          code,
		Description:   description,
	}

	if err := block.Validate(); err != nil {
		return nil, err
	}

	if err := s.BlockRepo.Create(ctx, block); err != nil {
		return nil, err
	}

	return block, nil
}

// CreateUnitInput represents the input for registering a unit
type CreateUnitInput struct {
	BlockID       uuid.UUID
	Code          string
	Kind          domain.UnitKind
	Area          float64
	IdealFraction float64
	Registry      string
	Spaces        int
}

// CreateUnit registers a unit inside an existing block
func (s *RegistryService) CreateUnit(ctx context.Context, input CreateUnitInput) (*domain.Unit, error) {
	if _, err := s.BlockRepo.GetByID(ctx, input.BlockID); err != nil {
		return nil, err
	}

	unit := &domain.Unit{
		ID:            uuid.New(),
		BlockID:       input.BlockID,
		Code:          input.Code,
		Kind:          input.Kind,
		Area:          input.Area,
		IdealFraction: input.IdealFraction,
		Registry:      input.Registry,
		Spaces:        input.Spaces,
	}

	if err := unit.Validate(); err != nil {
		return nil, err
	}

	if err := s.UnitRepo.Create(ctx, unit); err != nil {
		return nil, err
	}

	return unit, nil
}

// ListUnits retrieves the units of a block ordered by code
func (s *RegistryService) ListUnits(ctx context.Context, blockID uuid.UUID) ([]*domain.Unit, error) {
	if _, err := s.BlockRepo.GetByID(ctx, blockID); err != nil {
		return nil, err
	}

	return s.UnitRepo.ListByBlock(ctx, blockID)
}

// RegisterPersonInput represents the input for registering a resident
type RegisterPersonInput struct {
	UnitID uuid.UUID
	Name   string
	Email  string
	Phone  string
}

// RegisterPerson registers a resident against an existing unit
func (s *RegistryService) RegisterPerson(ctx context.Context, input RegisterPersonInput) (*domain.Person, error) {
	if _, err := s.UnitRepo.GetByID(ctx, input.UnitID); err != nil {
		return nil, err
	}

	person := &domain.Person{
		ID:     uuid.New(),
		UnitID: input.UnitID,
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
	}

	if err := person.Validate(); err != nil {
		return nil, err
	}

	if err := s.PersonRepo.Create(ctx, person); err != nil {
		return nil, err
	}

	return person, nil
}

// UpdatePerson persists changes to a resident's contact data
func (s *RegistryService) UpdatePerson(ctx context.Context, person *domain.Person) error {
	if err := person.Validate(); err != nil {
		return err
	}

	return s.PersonRepo.Update(ctx, person)
}

// RemovePerson removes a resident from the register
func (s *RegistryService) RemovePerson(ctx context.Context, id uuid.UUID) error {
	if _, err := s.PersonRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.PersonRepo.Delete(ctx, id)
}

// ListResidents retrieves the unit's residents ordered by name
func (s *RegistryService) ListResidents(ctx context.Context, unitID uuid.UUID) ([]*domain.Person, error) {
	if _, err := s.UnitRepo.GetByID(ctx, unitID); err != nil {
		return nil, err
	}

	return s.PersonRepo.ListByUnit(ctx, unitID)
}

// CreateCategoryInput represents the input for adding a chart category
type CreateCategoryInput struct {
	CondominiumID uuid.UUID
	Kind          domain.CategoryKind
	Description   string
	Ordinal       string
	ParentID      *uuid.UUID
}

// CreateCategory adds a category to the condominium's chart. The level
// is derived from the parent: children sit one level below it, roots at
// level 1, never deeper than four levels.
func (s *RegistryService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if _, err := s.CondominiumRepo.GetByID(ctx, input.CondominiumID); err != nil {
		return nil, err
	}

	level := 1
	if input.ParentID != nil {
		parent, err := s.CategoryRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.Kind != input.Kind {
			return nil, fmt.Errorf("category kind must match its parent (%s)", parent.Kind)
		}
		level = parent.Level + 1
	}

	category := &domain.Category{
		ID:            uuid.New(),
		CondominiumID: input.CondominiumID,
		Kind:          input.Kind,
		Description:   input.Description,
		Level:         level,
		Ordinal:       input.Ordinal,
		ParentID:      input.ParentID,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.CategoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// ListCategories retrieves the condominium's chart ordered by ordinal
func (s *RegistryService) ListCategories(ctx context.Context, condominiumID uuid.UUID) ([]*domain.Category, error) {
	if _, err := s.CondominiumRepo.GetByID(ctx, condominiumID); err != nil {
		return nil, err
	}

	return s.CategoryRepo.ListByCondominium(ctx, condominiumID)
}
