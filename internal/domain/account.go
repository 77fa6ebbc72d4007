package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountKind represents the variant of an account.
// The legacy system modelled these as subclasses of a common account
// entity; here a single record type carries a kind tag instead.
type AccountKind string

const (
	AccountKindChecking AccountKind = "CHECKING"
	AccountKindSavings  AccountKind = "SAVINGS"
	AccountKindCash     AccountKind = "CASH"
	AccountKindFund     AccountKind = "FUND"
)

// Account represents a condominium account in the domain layer.
// CurrentBalance is a cached value: the authoritative balance is always
// InitialBalance plus the sum of the account's movements.
type Account struct {
	ID             uuid.UUID
	CondominiumID  uuid.UUID
	Code           string // short mnemonic, 1-2 characters
	Description    string // optional, up to 30 characters
	Kind           AccountKind
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
}

// Validate ensures the account adheres to domain rules
func (a *Account) Validate() error {
	if len(a.Code) < 1 || len(a.Code) > 2 {
		return errors.New("account code must be 1 to 2 characters")
	}

	if len(a.Description) > 30 {
		return errors.New("account description must be at most 30 characters")
	}

	switch a.Kind {
	case AccountKindChecking, AccountKindSavings, AccountKindCash, AccountKindFund:
	default:
		return errors.New("account kind must be CHECKING, SAVINGS, CASH or FUND")
	}

	if a.CondominiumID == uuid.Nil {
		return errors.New("account must belong to a condominium")
	}

	return nil
}

// ComputeBalance folds the given movements over the initial balance.
// Movements are expected to be this account's full ledger; passing a
// partial slice yields a partial balance.
func (a *Account) ComputeBalance(movements []*Movement) decimal.Decimal {
	balance := a.InitialBalance
	for _, m := range movements {
		balance = balance.Add(m.Amount)
	}
	return balance
}

// HasBalance reports whether the cached balance covers the given amount.
// This is an advisory check only: nothing prevents the balance from
// changing between this call and a subsequent transfer.
func (a *Account) HasBalance(amount decimal.Decimal) bool {
	return a.CurrentBalance.GreaterThanOrEqual(amount)
}
