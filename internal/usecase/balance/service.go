package balance

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/condoledger-backend/internal/domain"
)

// BalanceService derives account balances from the ledger
type BalanceService struct {
	AccountRepo  domain.AccountRepository
	MovementRepo domain.MovementRepository
}

// NewBalanceService creates a new BalanceService instance
func NewBalanceService(accountRepo domain.AccountRepository, movementRepo domain.MovementRepository) *BalanceService {
	return &BalanceService{
		AccountRepo:  accountRepo,
		MovementRepo: movementRepo,
	}
}

// CurrentBalance computes the account's balance as its initial balance
// plus the sum of all its movements, folded in ledger order with exact
// decimal arithmetic. Cost is linear in the account's movement count.
func (s *BalanceService) CurrentBalance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	account, err := s.AccountRepo.GetByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	movements, err := s.MovementRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	return account.ComputeBalance(movements), nil
}

// HasSufficientBalance reports whether the account's current balance
// covers the given amount. The answer is advisory only: no lock is held
// between this check and any subsequent transfer, so the balance may
// change in between. Transfers intentionally do not enforce solvency.
func (s *BalanceService) HasSufficientBalance(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (bool, error) {
	balance, err := s.CurrentBalance(ctx, accountID)
	if err != nil {
		return false, err
	}

	return balance.GreaterThanOrEqual(amount), nil
}

// Recalculate recomputes the account's balance from the ledger and
// persists it as the cached current balance, repairing any drift.
func (s *BalanceService) Recalculate(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	balance, err := s.CurrentBalance(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	if err := s.AccountRepo.UpdateBalance(ctx, accountID, balance); err != nil {
		return decimal.Zero, err
	}

	return balance, nil
}
