package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/condoledger-backend/internal/domain"
)

// CreateAccountInput represents the input for creating an account
type CreateAccountInput struct {
	CondominiumID  uuid.UUID
	Code           string
	Description    string
	Kind           domain.AccountKind
	InitialBalance decimal.Decimal
}

// AccountService handles administrative account operations.
// Balances are never mutated here: only movements and transfers change
// them, which is what keeps the ledger auditable.
type AccountService struct {
	AccountRepo     domain.AccountRepository
	MovementRepo    domain.MovementRepository
	TransferRepo    domain.TransferRepository
	CondominiumRepo domain.CondominiumRepository
}

// NewAccountService creates a new AccountService instance
func NewAccountService(
	accountRepo domain.AccountRepository,
	movementRepo domain.MovementRepository,
	transferRepo domain.TransferRepository,
	condominiumRepo domain.CondominiumRepository,
) *AccountService {
	return &AccountService{
		AccountRepo:     accountRepo,
		MovementRepo:    movementRepo,
		TransferRepo:    transferRepo,
		CondominiumRepo: condominiumRepo,
	}
}

// Create creates a new account. The cached current balance starts equal
// to the initial balance, since a fresh account has an empty ledger.
func (s *AccountService) Create(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if _, err := s.CondominiumRepo.GetByID(ctx, input.CondominiumID); err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:             uuid.New(),
		CondominiumID:  input.CondominiumID,
		Code:           input.Code,
		Description:    input.Description,
		Kind:           input.Kind,
		InitialBalance: input.InitialBalance,
		CurrentBalance: input.InitialBalance,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	if err := s.AccountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Get retrieves an account by ID
func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return s.AccountRepo.GetByID(ctx, id)
}

// Update persists changes to an account's descriptive fields (code,
// description, kind). Balance fields are ignored by the repository.
func (s *AccountService) Update(ctx context.Context, account *domain.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	if _, err := s.AccountRepo.GetByID(ctx, account.ID); err != nil {
		return err
	}

	return s.AccountRepo.Update(ctx, account)
}

// Delete removes an account. While movements or transfers still
// reference it the delete fails with ErrHasDependents, unless cascade
// is requested, in which case the account is removed together with its
// dependents in one atomic scope.
func (s *AccountService) Delete(ctx context.Context, id uuid.UUID, cascade bool) error {
	if _, err := s.AccountRepo.GetByID(ctx, id); err != nil {
		return err
	}

	movements, err := s.MovementRepo.CountByAccount(ctx, id)
	if err != nil {
		return fmt.Errorf("counting movements: %w", err)
	}

	transfers, err := s.TransferRepo.CountByAccount(ctx, id)
	if err != nil {
		return fmt.Errorf("counting transfers: %w", err)
	}

	if movements == 0 && transfers == 0 {
		return s.AccountRepo.Delete(ctx, id)
	}

	if !cascade {
		return fmt.Errorf("%w: %d movements, %d transfers", domain.ErrHasDependents, movements, transfers)
	}

	return s.AccountRepo.DeleteCascade(ctx, id)
}

// ListByCondominium retrieves a condominium's accounts ordered by code
func (s *AccountService) ListByCondominium(ctx context.Context, condominiumID uuid.UUID) ([]*domain.Account, error) {
	if _, err := s.CondominiumRepo.GetByID(ctx, condominiumID); err != nil {
		return nil, err
	}

	return s.AccountRepo.ListByCondominium(ctx, condominiumID)
}
