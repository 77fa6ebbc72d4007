package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeStatus represents the lifecycle state of a charge
type ChargeStatus string

const (
	ChargeStatusOpen     ChargeStatus = "OPEN"
	ChargeStatusPaid     ChargeStatus = "PAID"
	ChargeStatusCanceled ChargeStatus = "CANCELED"
)

// Charge is a billable amount owed by a unit. Charges are issued in
// installment series sharing a Number; listings order by
// (Number, Installment). Settling a charge credits the receiving
// account and records it in AccountID.
type Charge struct {
	ID          uuid.UUID
	UnitID      uuid.UUID
	AccountID   *uuid.UUID // receiving account, set on settlement
	Number      int
	Installment int // 1-based position inside the series
	Amount      decimal.Decimal
	DueDate     time.Time
	Status      ChargeStatus
	PaidAt      *time.Time
}

// Validate ensures the charge adheres to domain rules
func (c *Charge) Validate() error {
	if c.UnitID == uuid.Nil {
		return errors.New("charge must reference a unit")
	}

	if c.Number < 1 {
		return errors.New("charge number must be positive")
	}

	if c.Installment < 1 {
		return errors.New("charge installment must be positive")
	}

	if c.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("charge amount must be positive")
	}

	switch c.Status {
	case ChargeStatusOpen, ChargeStatusPaid, ChargeStatusCanceled:
	default:
		return errors.New("charge status must be OPEN, PAID or CANCELED")
	}

	return nil
}

// Open reports whether the charge can still be settled
func (c *Charge) Open() bool {
	return c.Status == ChargeStatusOpen
}

// Overdue reports whether the charge is open and past due at the given instant
func (c *Charge) Overdue(asOf time.Time) bool {
	return c.Open() && c.DueDate.Before(asOf)
}
