package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Movement represents a single signed ledger entry against one account.
// Positive amounts are credits, negative amounts are debits. Movements
// are append-only: corrections are made by appending a compensating
// entry, never by editing history.
type Movement struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Description string
	CategoryID  *uuid.UUID // optional income/expense classification
	OccurredAt  time.Time
}

// Validate ensures the movement adheres to domain rules.
// Zero-amount movements are rejected: they carry no information and
// would pollute the audit trail.
func (m *Movement) Validate() error {
	if m.AccountID == uuid.Nil {
		return errors.New("movement must reference an account")
	}

	if m.Amount.IsZero() {
		return errors.New("movement amount must be non-zero")
	}

	return nil
}
