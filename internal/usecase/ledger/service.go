package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/condoledger-backend/internal/domain"
)

// PostMovementInput represents the input for posting a movement directly
type PostMovementInput struct {
	AccountID   uuid.UUID
	Amount      decimal.Decimal // signed; positive = credit, negative = debit
	Description string
	CategoryID  *uuid.UUID // optional
}

// TransferInput represents the input for a transfer between two accounts
type TransferInput struct {
	SourceAccountID      uuid.UUID
	DestinationAccountID uuid.UUID
	Amount               decimal.Decimal // strictly positive
	Description          string
}

// LedgerService handles movement posting and transfers between accounts
type LedgerService struct {
	AccountRepo  domain.AccountRepository
	MovementRepo domain.MovementRepository
	TransferRepo domain.TransferRepository
	CategoryRepo domain.CategoryRepository
}

// NewLedgerService creates a new LedgerService instance
func NewLedgerService(
	accountRepo domain.AccountRepository,
	movementRepo domain.MovementRepository,
	transferRepo domain.TransferRepository,
	categoryRepo domain.CategoryRepository,
) *LedgerService {
	return &LedgerService{
		AccountRepo:  accountRepo,
		MovementRepo: movementRepo,
		TransferRepo: transferRepo,
		CategoryRepo: categoryRepo,
	}
}

// PostMovement appends a signed movement to an account's ledger.
// Zero amounts are rejected: they carry no information and would
// corrupt the audit trail. The movement and the cached balance
// adjustment are written in one atomic scope by the repository.
func (s *LedgerService) PostMovement(ctx context.Context, input PostMovementInput) (*domain.Movement, error) {
	if input.Amount.IsZero() {
		return nil, fmt.Errorf("%w: movement amount must be non-zero", domain.ErrInvalidAmount)
	}

	// Ensure the account exists before appending
	if _, err := s.AccountRepo.GetByID(ctx, input.AccountID); err != nil {
		return nil, err
	}

	// Ensure the optional category exists
	if input.CategoryID != nil {
		if _, err := s.CategoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	movement := &domain.Movement{
		ID:          uuid.New(),
		AccountID:   input.AccountID,
		Amount:      input.Amount,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		OccurredAt:  time.Now(),
	}

	if err := movement.Validate(); err != nil {
		return nil, err
	}

	if err := s.MovementRepo.Create(ctx, movement); err != nil {
		return nil, err
	}

	return movement, nil
}

// ListMovements retrieves an account's ledger ordered by occurrence time
// ascending, ties broken by identifier ascending
func (s *LedgerService) ListMovements(ctx context.Context, accountID uuid.UUID) ([]*domain.Movement, error) {
	if _, err := s.AccountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	return s.MovementRepo.ListByAccount(ctx, accountID)
}

// Transfer moves value between two accounts.
// Logic:
//  1. Reject same-account transfers and non-positive amounts
//  2. Ensure both accounts exist
//  3. Build the transfer and its matched debit/credit legs
//  4. Persist all three records in one atomic scope via TransferRepo
//
// No solvency check is performed: the source account may go negative.
// Callers wanting an overdraft guard should consult
// balance.HasSufficientBalance first and treat the answer as advisory.
func (s *LedgerService) Transfer(ctx context.Context, input TransferInput) (*domain.Transfer, error) {
	if input.SourceAccountID == input.DestinationAccountID {
		return nil, fmt.Errorf("%w: source and destination are the same account", domain.ErrInvalidTransfer)
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transfer amount must be positive", domain.ErrInvalidAmount)
	}

	if _, err := s.AccountRepo.GetByID(ctx, input.SourceAccountID); err != nil {
		return nil, fmt.Errorf("source account: %w", err)
	}
	if _, err := s.AccountRepo.GetByID(ctx, input.DestinationAccountID); err != nil {
		return nil, fmt.Errorf("destination account: %w", err)
	}

	transfer := &domain.Transfer{
		ID:                   uuid.New(),
		SourceAccountID:      input.SourceAccountID,
		DestinationAccountID: input.DestinationAccountID,
		Amount:               input.Amount,
		Description:          input.Description,
		OccurredAt:           time.Now(),
	}

	if err := transfer.Validate(); err != nil {
		return nil, err
	}

	debit, credit := transfer.Legs()

	if err := s.TransferRepo.Create(ctx, transfer, debit, credit); err != nil {
		return nil, err
	}

	return transfer, nil
}

// ListTransfers retrieves the transfers touching an account
func (s *LedgerService) ListTransfers(ctx context.Context, accountID uuid.UUID) ([]*domain.Transfer, error) {
	if _, err := s.AccountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	return s.TransferRepo.ListByAccount(ctx, accountID)
}
