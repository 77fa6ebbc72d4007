package domain

import "errors"

// Error kinds surfaced by the ledger. Callers distinguish outcomes with
// errors.Is; repositories and services wrap these with context but never
// swallow them.
var (
	// ErrAccountNotFound indicates the referenced account does not exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAmount indicates a zero amount, or a non-positive amount
	// where a positive one is required
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidTransfer indicates a transfer whose source and
	// destination are the same account
	ErrInvalidTransfer = errors.New("invalid transfer")

	// ErrHasDependents indicates a delete blocked by existing movements
	// or transfers
	ErrHasDependents = errors.New("account has dependent records")

	// ErrStoreUnavailable indicates a backing-store transaction failure;
	// the operation rolled back and may be retried by the caller
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrCondominiumNotFound indicates the referenced condominium does not exist
	ErrCondominiumNotFound = errors.New("condominium not found")

	// ErrBlockNotFound indicates the referenced block does not exist
	ErrBlockNotFound = errors.New("block not found")

	// ErrUnitNotFound indicates the referenced unit does not exist
	ErrUnitNotFound = errors.New("unit not found")

	// ErrCategoryNotFound indicates the referenced category does not exist
	ErrCategoryNotFound = errors.New("category not found")

	// ErrPersonNotFound indicates the referenced person does not exist
	ErrPersonNotFound = errors.New("person not found")

	// ErrChargeNotFound indicates the referenced charge does not exist
	ErrChargeNotFound = errors.New("charge not found")

	// ErrChargeClosed indicates an attempt to settle a charge that is
	// already paid or canceled
	ErrChargeClosed = errors.New("charge already closed")
)
