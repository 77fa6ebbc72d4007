package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/condoledger-backend/internal/domain"
)

// IssueChargesInput represents the input for issuing an installment series
type IssueChargesInput struct {
	UnitID       uuid.UUID
	Number       int // series number, e.g. 202601 for the January 2026 billing run
	Installments int // how many monthly installments to issue
	Amount       decimal.Decimal
	FirstDueDate time.Time
}

// BillingService handles the charge lifecycle: issuing installment
// series against units and settling them into the ledger.
type BillingService struct {
	ChargeRepo  domain.ChargeRepository
	UnitRepo    domain.UnitRepository
	AccountRepo domain.AccountRepository
}

// NewBillingService creates a new BillingService instance
func NewBillingService(
	chargeRepo domain.ChargeRepository,
	unitRepo domain.UnitRepository,
	accountRepo domain.AccountRepository,
) *BillingService {
	return &BillingService{
		ChargeRepo:  chargeRepo,
		UnitRepo:    unitRepo,
		AccountRepo: accountRepo,
	}
}

// IssueCharges creates an installment series for a unit: Installments
// charges sharing Number, with 1-based installment positions and due
// dates one month apart starting at FirstDueDate. The series is written
// in one atomic scope by the repository.
func (s *BillingService) IssueCharges(ctx context.Context, input IssueChargesInput) ([]*domain.Charge, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: charge amount must be positive", domain.ErrInvalidAmount)
	}

	if input.Installments < 1 {
		return nil, fmt.Errorf("%w: at least one installment", domain.ErrInvalidAmount)
	}

	if _, err := s.UnitRepo.GetByID(ctx, input.UnitID); err != nil {
		return nil, err
	}

	charges := make([]*domain.Charge, 0, input.Installments)
	for i := 0; i < input.Installments; i++ {
		charge := &domain.Charge{
			ID:          uuid.New(),
			UnitID:      input.UnitID,
			Number:      input.Number,
			Installment: i + 1,
			Amount:      input.Amount,
			DueDate:     input.FirstDueDate.AddDate(0, i, 0),
			Status:      domain.ChargeStatusOpen,
		}

		if err := charge.Validate(); err != nil {
			return nil, err
		}

		charges = append(charges, charge)
	}

	// One atomic write for the whole series: a failed run leaves no
	// partial installments behind.
	if err := s.ChargeRepo.CreateSeries(ctx, charges); err != nil {
		return nil, err
	}

	return charges, nil
}

// SettleCharge marks an open charge as paid and credits its amount to
// the receiving account. The status flip, the credit movement and the
// cached balance adjustment are written in one atomic scope by the
// repository; a closed charge fails with ErrChargeClosed and writes
// nothing.
func (s *BillingService) SettleCharge(ctx context.Context, chargeID, accountID uuid.UUID) (*domain.Movement, error) {
	charge, err := s.ChargeRepo.GetByID(ctx, chargeID)
	if err != nil {
		return nil, err
	}

	if !charge.Open() {
		return nil, fmt.Errorf("%w: charge is %s", domain.ErrChargeClosed, charge.Status)
	}

	if _, err := s.AccountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	now := time.Now()
	charge.Status = domain.ChargeStatusPaid
	charge.PaidAt = &now
	charge.AccountID = &accountID

	movement := &domain.Movement{
		ID:          uuid.New(),
		AccountID:   accountID,
		Amount:      charge.Amount,
		Description: fmt.Sprintf("charge %d/%d settled", charge.Number, charge.Installment),
		OccurredAt:  now,
	}

	if err := s.ChargeRepo.Settle(ctx, charge, movement); err != nil {
		return nil, err
	}

	return movement, nil
}

// ListCharges retrieves a unit's charges ordered by (number, installment)
func (s *BillingService) ListCharges(ctx context.Context, unitID uuid.UUID) ([]*domain.Charge, error) {
	if _, err := s.UnitRepo.GetByID(ctx, unitID); err != nil {
		return nil, err
	}

	return s.ChargeRepo.ListByUnit(ctx, unitID)
}

// ListOpenCharges retrieves the unit's charges still awaiting payment
func (s *BillingService) ListOpenCharges(ctx context.Context, unitID uuid.UUID) ([]*domain.Charge, error) {
	charges, err := s.ListCharges(ctx, unitID)
	if err != nil {
		return nil, err
	}

	open := make([]*domain.Charge, 0, len(charges))
	for _, charge := range charges {
		if charge.Open() {
			open = append(open, charge)
		}
	}

	return open, nil
}

// OverdueCharges retrieves all open charges past due at the given instant
func (s *BillingService) OverdueCharges(ctx context.Context, asOf time.Time) ([]*domain.Charge, error) {
	return s.ChargeRepo.ListOverdue(ctx, asOf)
}
