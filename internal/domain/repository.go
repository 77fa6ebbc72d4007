package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepository defines the interface for account persistence operations
type AccountRepository interface {
	// Create creates a new account
	Create(ctx context.Context, account *Account) error

	// GetByID retrieves an account by its ID
	// Returns ErrAccountNotFound if no such account exists
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// Update persists changes to an existing account's descriptive fields
	Update(ctx context.Context, account *Account) error

	// UpdateBalance persists a recomputed cached balance
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error

	// Delete removes an account that has no dependent records
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteCascade removes an account together with its movements and
	// its transfers (both directions, including counterpart legs) in one
	// atomic scope; surviving counterpart accounts keep their cached
	// balances consistent with the legs they lose
	DeleteCascade(ctx context.Context, id uuid.UUID) error

	// ListByCondominium retrieves the condominium's accounts ordered by code
	ListByCondominium(ctx context.Context, condominiumID uuid.UUID) ([]*Account, error)
}

// MovementRepository defines the interface for ledger entry persistence
type MovementRepository interface {
	// Create appends a movement and adjusts the owning account's cached
	// balance in the same atomic scope
	Create(ctx context.Context, movement *Movement) error

	// ListByAccount retrieves the account's ledger ordered by occurrence
	// time ascending, ties broken by identifier ascending
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*Movement, error)

	// CountByAccount returns the number of movements on the account
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int, error)
}

// TransferRepository defines the interface for transfer persistence
type TransferRepository interface {
	// Create persists the transfer, both movement legs and both cached
	// balance adjustments in one atomic scope; on error nothing is
	// written
	Create(ctx context.Context, transfer *Transfer, debit, credit *Movement) error

	// CountByAccount returns the number of transfers touching the
	// account as source or destination
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int, error)

	// ListByAccount retrieves transfers touching the account, ordered by
	// occurrence time ascending
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*Transfer, error)
}

// CondominiumRepository defines the interface for condominium persistence
type CondominiumRepository interface {
	Create(ctx context.Context, condominium *Condominium) error

	// GetByID returns ErrCondominiumNotFound if no such condominium exists
	GetByID(ctx context.Context, id uuid.UUID) (*Condominium, error)
}

// BlockRepository defines the interface for block persistence
type BlockRepository interface {
	Create(ctx context.Context, block *Block) error

	// GetByID returns ErrBlockNotFound if no such block exists
	GetByID(ctx context.Context, id uuid.UUID) (*Block, error)

	// ListByCondominium retrieves the condominium's blocks ordered by code
	ListByCondominium(ctx context.Context, condominiumID uuid.UUID) ([]*Block, error)
}

// UnitRepository defines the interface for unit persistence
type UnitRepository interface {
	Create(ctx context.Context, unit *Unit) error

	// GetByID returns ErrUnitNotFound if no such unit exists
	GetByID(ctx context.Context, id uuid.UUID) (*Unit, error)

	// ListByBlock retrieves the block's units ordered by code
	ListByBlock(ctx context.Context, blockID uuid.UUID) ([]*Unit, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error

	// GetByID returns ErrCategoryNotFound if no such category exists
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// ListByCondominium retrieves the condominium's chart ordered by ordinal
	ListByCondominium(ctx context.Context, condominiumID uuid.UUID) ([]*Category, error)
}

// PersonRepository defines the interface for person persistence
type PersonRepository interface {
	Create(ctx context.Context, person *Person) error

	// GetByID returns ErrPersonNotFound if no such person exists
	GetByID(ctx context.Context, id uuid.UUID) (*Person, error)

	// Update persists changes to an existing person's contact data
	Update(ctx context.Context, person *Person) error

	// Delete removes a person
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByUnit retrieves the unit's residents ordered by name
	ListByUnit(ctx context.Context, unitID uuid.UUID) ([]*Person, error)
}

// ChargeRepository defines the interface for charge persistence
type ChargeRepository interface {
	// CreateSeries persists an installment series in one atomic scope;
	// on error no installment is written
	CreateSeries(ctx context.Context, charges []*Charge) error

	// GetByID returns ErrChargeNotFound if no such charge exists
	GetByID(ctx context.Context, id uuid.UUID) (*Charge, error)

	// ListByUnit retrieves the unit's charges ordered by (number, installment)
	ListByUnit(ctx context.Context, unitID uuid.UUID) ([]*Charge, error)

	// ListOverdue retrieves open charges past due at the given instant,
	// across all units, ordered by due date ascending
	ListOverdue(ctx context.Context, asOf time.Time) ([]*Charge, error)

	// Settle marks the charge paid and appends the matching credit
	// movement (adjusting the receiving account's cached balance) in one
	// atomic scope; on error nothing is written
	Settle(ctx context.Context, charge *Charge, movement *Movement) error
}
