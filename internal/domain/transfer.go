package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer represents a paired debit/credit across two accounts.
// A committed transfer always has exactly two movements of equal
// magnitude and opposite sign, one per account, written in the same
// atomic scope as the transfer itself.
type Transfer struct {
	ID                   uuid.UUID
	SourceAccountID      uuid.UUID
	DestinationAccountID uuid.UUID
	Amount               decimal.Decimal // strictly positive
	Description          string
	OccurredAt           time.Time
}

// Validate ensures the transfer adheres to domain rules
func (t *Transfer) Validate() error {
	if t.SourceAccountID == uuid.Nil || t.DestinationAccountID == uuid.Nil {
		return errors.New("transfer must reference a source and a destination account")
	}

	if t.SourceAccountID == t.DestinationAccountID {
		return errors.New("transfer source and destination must differ")
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("transfer amount must be positive")
	}

	return nil
}

// Legs builds the matched movement pair for this transfer: a debit of
// -Amount on the source account and a credit of +Amount on the
// destination. Both legs share the transfer's timestamp so the ledger
// orders them together.
func (t *Transfer) Legs() (debit, credit *Movement) {
	debit = &Movement{
		ID:          uuid.New(),
		AccountID:   t.SourceAccountID,
		Amount:      t.Amount.Neg(),
		Description: fmt.Sprintf("transfer out: %s", t.Description),
		OccurredAt:  t.OccurredAt,
	}

	credit = &Movement{
		ID:          uuid.New(),
		AccountID:   t.DestinationAccountID,
		Amount:      t.Amount,
		Description: fmt.Sprintf("transfer in: %s", t.Description),
		OccurredAt:  t.OccurredAt,
	}

	return debit, credit
}
